package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ethantsaox/jobflow/internal/models"
	"github.com/ethantsaox/jobflow/internal/store"
)

var updateFlags struct {
	title    string
	company  string
	status   string
	date     string
	location string
	salMin   float64
	salMax   float64
	notes    string
	url      string
	platform string
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit an existing application",
	Long: `Edit fields of an existing application. Only the provided flags
change; everything else stays as is.

Examples:
  jobflow update 4f2c... --status interview
  jobflow update 4f2c... --notes "phone screen went well"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&updateFlags.title, "title", "t", "", "job title")
	updateCmd.Flags().StringVarP(&updateFlags.company, "company", "c", "", "company name")
	updateCmd.Flags().StringVarP(&updateFlags.status, "status", "s", "", "application status")
	updateCmd.Flags().StringVarP(&updateFlags.date, "date", "d", "", "applied date (YYYY-MM-DD)")
	updateCmd.Flags().StringVarP(&updateFlags.location, "location", "l", "", "job location")
	updateCmd.Flags().Float64Var(&updateFlags.salMin, "salary-min", 0, "salary range lower bound")
	updateCmd.Flags().Float64Var(&updateFlags.salMax, "salary-max", 0, "salary range upper bound")
	updateCmd.Flags().StringVarP(&updateFlags.notes, "notes", "n", "", "free-form notes")
	updateCmd.Flags().StringVar(&updateFlags.url, "url", "", "posting URL")
	updateCmd.Flags().StringVar(&updateFlags.platform, "platform", "", "source platform")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if updateFlags.status != "" && !models.IsValidStatus(updateFlags.status) {
		return fmt.Errorf("invalid status %q (one of: %v)", updateFlags.status, models.ValidStatuses())
	}

	var applied time.Time
	if updateFlags.date != "" {
		d, err := time.ParseInLocation("2006-01-02", updateFlags.date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", updateFlags.date)
		}
		applied = d
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	app, err := e.mgr.UpdateApplication(cmd.Context(), args[0], store.ApplicationInput{
		Title:          updateFlags.title,
		CompanyName:    updateFlags.company,
		Status:         updateFlags.status,
		AppliedDate:    applied,
		Location:       updateFlags.location,
		SalaryMin:      updateFlags.salMin,
		SalaryMax:      updateFlags.salMax,
		Notes:          updateFlags.notes,
		SourceURL:      updateFlags.url,
		SourcePlatform: updateFlags.platform,
	})
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}

	fmt.Printf("Updated %q at %s [%s]\n", app.Title, app.CompanyName(), app.Status)
	return nil
}
