package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var goalsFlags struct {
	daily  int
	weekly int
}

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show or set daily and weekly application goals",
	Long: `Show or set daily and weekly application goals.

Examples:
  jobflow goals
  jobflow goals --daily 5 --weekly 25`,
	RunE: runGoals,
}

func init() {
	goalsCmd.Flags().IntVar(&goalsFlags.daily, "daily", 0, "applications per day")
	goalsCmd.Flags().IntVar(&goalsFlags.weekly, "weekly", 0, "applications per week")
}

func runGoals(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if goalsFlags.daily > 0 || goalsFlags.weekly > 0 {
		user, err := e.mgr.UpdateGoals(cmd.Context(), goalsFlags.daily, goalsFlags.weekly)
		if err != nil {
			return fmt.Errorf("update goals: %w", err)
		}
		fmt.Printf("Goals updated: %d/day, %d/week\n", user.DailyGoal, user.WeeklyGoal)
		return nil
	}

	user, err := e.mgr.GetUser(cmd.Context())
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	fmt.Printf("Daily goal: %d\nWeekly goal: %d\n", user.DailyGoal, user.WeeklyGoal)
	return nil
}
