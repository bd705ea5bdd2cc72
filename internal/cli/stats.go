package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ethantsaox/jobflow/internal/models"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show analytics summary and goal progress",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	s, err := e.mgr.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("analytics summary: %w", err)
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	fmt.Println(headerStyle.Render("SUMMARY"))
	fmt.Println("──────────────────────────────────────────────────")
	fmt.Printf("Total applications: %d\n", s.TotalApplications)
	fmt.Printf("Today: %d   This week: %d\n", s.ApplicationsToday, s.ApplicationsThisWeek)
	fmt.Printf("Interview rate: %.1f%%\n", s.InterviewRate)
	fmt.Printf("Streak: %d (longest %d)\n", s.CurrentStreak, s.LongestStreak)

	fmt.Println()
	fmt.Println(headerStyle.Render("GOALS"))
	fmt.Printf("Daily: %.0f%% of %d   Weekly: %.0f%% of %d\n",
		s.GoalProgressDay, s.DailyGoal, s.GoalProgressWeek, s.WeeklyGoal)

	if len(s.StatusDistribution) > 0 {
		fmt.Println()
		fmt.Println(headerStyle.Render("BY STATUS"))
		for _, status := range models.ValidStatuses() {
			if count, ok := s.StatusDistribution[status]; ok {
				fmt.Printf("  %-10s %d\n", status, count)
			}
		}
	}
	return nil
}
