package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var timelineDays int

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show per-day application counts",
	RunE:  runTimeline,
}

func init() {
	timelineCmd.Flags().IntVar(&timelineDays, "days", 30, "trailing window in days")
}

func runTimeline(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	points, err := e.mgr.Timeline(cmd.Context(), timelineDays)
	if err != nil {
		return fmt.Errorf("analytics timeline: %w", err)
	}

	var total int64
	for _, p := range points {
		total += p.Applications
	}
	fmt.Printf("TIMELINE (last %d days, %d applications)\n", timelineDays, total)
	fmt.Println("──────────────────────────────────────────────────")
	for _, p := range points {
		bar := strings.Repeat("█", int(p.Applications))
		fmt.Printf("  %s  %2d %s\n", p.Date.Format("2006-01-02"), p.Applications, bar)
	}
	return nil
}
