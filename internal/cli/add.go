package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ethantsaox/jobflow/internal/models"
	"github.com/ethantsaox/jobflow/internal/store"
)

var addFlags struct {
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

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Log a new job application",
	Long: `Log a new job application.

The company is created on first use; names match case-insensitively, so
"Acme" and "ACME" are the same company.

Examples:
  jobflow add "Backend Engineer" --company Acme
  jobflow add "SRE" --company "Initech" --status screening --date 2026-08-28`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addFlags.company, "company", "c", "", "company name (required)")
	addCmd.Flags().StringVarP(&addFlags.status, "status", "s", models.StatusApplied, "application status")
	addCmd.Flags().StringVarP(&addFlags.date, "date", "d", "", "applied date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVarP(&addFlags.location, "location", "l", "", "job location")
	addCmd.Flags().Float64Var(&addFlags.salMin, "salary-min", 0, "salary range lower bound")
	addCmd.Flags().Float64Var(&addFlags.salMax, "salary-max", 0, "salary range upper bound")
	addCmd.Flags().StringVarP(&addFlags.notes, "notes", "n", "", "free-form notes")
	addCmd.Flags().StringVar(&addFlags.url, "url", "", "posting URL")
	addCmd.Flags().StringVar(&addFlags.platform, "platform", "", "source platform (linkedin, indeed, ...)")
	_ = addCmd.MarkFlagRequired("company")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if !models.IsValidStatus(addFlags.status) {
		return fmt.Errorf("invalid status %q (one of: %v)", addFlags.status, models.ValidStatuses())
	}

	var applied time.Time
	if addFlags.date != "" {
		d, err := time.ParseInLocation("2006-01-02", addFlags.date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", addFlags.date)
		}
		applied = d
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	app, unlocked, err := e.mgr.CreateApplication(cmd.Context(), store.ApplicationInput{
		Title:          args[0],
		CompanyName:    addFlags.company,
		Status:         addFlags.status,
		AppliedDate:    applied,
		Location:       addFlags.location,
		SalaryMin:      addFlags.salMin,
		SalaryMax:      addFlags.salMax,
		Notes:          addFlags.notes,
		SourceURL:      addFlags.url,
		SourcePlatform: addFlags.platform,
	})
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}

	fmt.Printf("Logged %q at %s (%s)\n", app.Title, app.CompanyName(), app.AppliedDate.Format("2006-01-02"))
	fmt.Printf("ID: %s\n", app.ID)

	if streak, err := e.store.CurrentStreak(); err == nil && streak > 1 {
		fmt.Printf("\n🔥 %d-day streak!\n", streak)
	}
	for _, a := range unlocked {
		fmt.Printf("\n%s Achievement unlocked: %s — %s\n", a.Icon, a.Title, a.Description)
	}
	return nil
}
