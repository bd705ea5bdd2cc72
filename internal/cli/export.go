package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

var exportFlags struct {
	out string
	csv bool
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all local data to a file",
	Long: `Export all local data as a single JSON document, or the
application list as CSV with --csv.

Without --out, files land in ~/.jobflow/exports.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlags.out, "out", "o", "", "output file path")
	exportCmd.Flags().BoolVar(&exportFlags.csv, "csv", false, "export applications as CSV instead of the full JSON document")
}

func runExport(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	out := exportFlags.out
	if out == "" {
		ext := "json"
		if exportFlags.csv {
			ext = "csv"
		}
		name := fmt.Sprintf("jobflow_%s.%s", time.Now().Format("20060102"), ext)
		out = filepath.Join(e.paths.Exports, name)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if exportFlags.csv {
		if err := e.store.ExportCSV(f); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
	} else {
		doc, err := e.store.Export()
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := doc.WriteJSON(f); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
	}

	fmt.Printf("Exported to %s\n", out)
	return nil
}
