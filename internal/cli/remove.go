package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var removeForce bool

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete an application permanently",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeForce, "force", "f", false, "skip confirmation")
}

func runRemove(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	app, err := e.mgr.GetApplication(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get application: %w", err)
	}

	if !removeForce {
		fmt.Printf("Delete %q at %s? This cannot be undone. [y/N] ", app.Title, app.CompanyName())
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := e.mgr.DeleteApplication(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	fmt.Println("Deleted.")
	return nil
}
