package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show current and past streaks",
	RunE:  runStreak,
}

func runStreak(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	current, err := e.store.CurrentStreak()
	if err != nil {
		return fmt.Errorf("current streak: %w", err)
	}
	longest, err := e.store.LongestStreak()
	if err != nil {
		return fmt.Errorf("longest streak: %w", err)
	}

	if current > 0 {
		fmt.Printf("🔥 Current streak: %d day(s)\n", current)
	} else {
		fmt.Println("No active streak. Log an application today to start one.")
	}
	fmt.Printf("Longest streak: %d day(s)\n", longest)

	streaks, err := e.store.ListStreaks()
	if err != nil {
		return fmt.Errorf("list streaks: %w", err)
	}
	if len(streaks) > 1 {
		fmt.Println("\nHistory:")
		for _, st := range streaks {
			end := "ongoing"
			if st.EndDate != nil {
				end = st.EndDate.Format("2006-01-02")
			}
			fmt.Printf("  %s → %s  (%d days)\n", st.StartDate.Format("2006-01-02"), end, st.Count)
		}
	}
	return nil
}
