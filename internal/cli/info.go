package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <id>",
	Short: "Show detailed information about an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	app, err := e.mgr.GetApplication(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get application: %w", err)
	}

	fmt.Printf("Title: %s\n", app.Title)
	fmt.Printf("Company: %s\n", app.CompanyName())
	fmt.Printf("Status: %s\n", app.Status)
	fmt.Printf("Applied: %s\n", app.AppliedDate.Format("2006-01-02"))
	if app.Location != "" {
		fmt.Printf("Location: %s\n", app.Location)
	}
	if app.SalaryMin > 0 || app.SalaryMax > 0 {
		fmt.Printf("Salary: %.0f – %.0f\n", app.SalaryMin, app.SalaryMax)
	}
	if app.SourceURL != "" {
		fmt.Printf("URL: %s\n", app.SourceURL)
	}
	if app.SourcePlatform != "" {
		fmt.Printf("Platform: %s\n", app.SourcePlatform)
	}
	if app.Notes != "" {
		fmt.Printf("\nNotes:\n  %s\n", app.Notes)
	}
	return nil
}
