package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ethantsaox/jobflow/internal/mode"
)

var modeCmd = &cobra.Command{
	Use:   "mode [local|authenticated]",
	Short: "Show or switch the active data mode",
	Long: `Show or switch the active data mode.

In local mode every operation uses the on-device store. In authenticated
mode operations go to the remote service first and fall back locally on
failure. Switching to authenticated mode requires a saved credential
(see 'jobflow login').`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMode,
}

func runMode(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if len(args) == 0 {
		fmt.Printf("Mode: %s\n", e.modes.Current())
		return nil
	}

	switch mode.Mode(args[0]) {
	case mode.Local:
		if err := e.modes.Set(mode.Local); err != nil {
			return fmt.Errorf("set mode: %w", err)
		}
	case mode.Authenticated:
		if !e.creds.Valid() {
			return fmt.Errorf("no valid credential; run 'jobflow login' first")
		}
		if err := e.modes.Set(mode.Authenticated); err != nil {
			return fmt.Errorf("set mode: %w", err)
		}
	default:
		return fmt.Errorf("unknown mode %q (local or authenticated)", args[0])
	}

	fmt.Printf("Mode set to %s.\n", e.modes.Current())
	return nil
}
