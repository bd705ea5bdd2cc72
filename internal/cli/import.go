package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ethantsaox/jobflow/internal/store"
)

var importForce bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a JSON export",
	Long: `Import a JSON export produced by the export command.

Imported collections replace the local data wholesale, so this
is destructive. The document is validated before anything is
touched.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&importForce, "force", "f", false, "skip confirmation")
}

func runImport(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if !importForce {
		fmt.Print("This replaces all local data. Continue? [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	doc, err := store.ReadExportDocument(f)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}
	if err := e.store.Import(doc); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	fmt.Printf("Imported %d applications, %d companies, %d streaks, %d achievements\n",
		len(doc.Applications), len(doc.Companies), len(doc.Streaks), len(doc.Achievements))
	return nil
}
