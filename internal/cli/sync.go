package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push local applications to the account",
	Long: `Push every locally stored application to the remote account.

Uploads run one at a time; a failed item is skipped and the rest continue.
Requires authenticated mode (see 'jobflow login').

Sync does not track what has already been pushed: running it twice
duplicates applications on the account.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	result, err := e.mgr.SyncLocalToServer(cmd.Context())
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	if result.Success {
		fmt.Printf("Synced %s applications to the account.\n", result.Message)
	} else {
		fmt.Printf("Nothing synced (%s).\n", result.Message)
	}
	return nil
}
