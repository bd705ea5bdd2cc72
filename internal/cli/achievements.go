package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var achievementsAll bool

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show unlocked achievements and progress",
	RunE:  runAchievements,
}

func init() {
	achievementsCmd.Flags().BoolVarP(&achievementsAll, "all", "a", false, "include locked achievements")
}

func runAchievements(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	achievements, err := e.mgr.ListAchievements(cmd.Context())
	if err != nil {
		return fmt.Errorf("list achievements: %w", err)
	}

	unlockedStyle := lipgloss.NewStyle().Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	unlocked := 0
	for _, a := range achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	fmt.Printf("ACHIEVEMENTS (%d/%d unlocked)\n", unlocked, len(achievements))
	fmt.Println("──────────────────────────────────────────────────")

	for _, a := range achievements {
		switch {
		case a.Unlocked:
			when := ""
			if a.UnlockedAt != nil {
				when = a.UnlockedAt.Format("2006-01-02")
			}
			fmt.Printf("  %s %s [%s] — %s  (%s)\n", a.Icon, unlockedStyle.Render(a.Title), a.Rarity, a.Description, when)
		case achievementsAll:
			fmt.Printf("  %s\n", mutedStyle.Render(
				fmt.Sprintf("🔒 %s [%s] — %s  (%d/%d)", a.Title, a.Rarity, a.Description, a.Progress, a.Target)))
		}
	}
	return nil
}
