package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ethantsaox/jobflow/internal/store"
)

var listFlags struct {
	status string
	search string
	sortBy string
	asc    bool
	offset int
	limit  int
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List job applications",
	Long: `List job applications with optional filtering and sorting.

Examples:
  jobflow list
  jobflow list --status interview
  jobflow list --search acme --sort company --asc
  jobflow list --limit 10 --offset 20`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFlags.status, "status", "s", "", "filter by status")
	listCmd.Flags().StringVarP(&listFlags.search, "search", "q", "", "free-text search over title, company, location")
	listCmd.Flags().StringVar(&listFlags.sortBy, "sort", store.SortByDate, "sort key: date, company, title, status")
	listCmd.Flags().BoolVar(&listFlags.asc, "asc", false, "sort ascending")
	listCmd.Flags().IntVar(&listFlags.offset, "offset", 0, "skip the first N results")
	listCmd.Flags().IntVar(&listFlags.limit, "limit", 0, "return at most N results")
}

var statusStyles = map[string]lipgloss.Style{
	"applied":   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	"screening": lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	"interview": lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	"offer":     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	"rejected":  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	"withdrawn": lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

func runList(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	apps, err := e.mgr.ListApplications(cmd.Context(), store.ListQuery{
		Status:    listFlags.status,
		Search:    listFlags.search,
		SortBy:    listFlags.sortBy,
		Ascending: listFlags.asc,
		Offset:    listFlags.offset,
		Limit:     listFlags.limit,
	})
	if err != nil {
		return fmt.Errorf("list applications: %w", err)
	}

	if len(apps) == 0 {
		fmt.Println("No applications found.")
		fmt.Println("\nUse 'jobflow add <title> --company <name>' to log one.")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	fmt.Printf("%s (%d)\n", headerStyle.Render("APPLICATIONS"), len(apps))
	fmt.Println("──────────────────────────────────────────────────")

	for _, app := range apps {
		status := app.Status
		if style, ok := statusStyles[status]; ok {
			status = style.Render(status)
		}
		fmt.Printf("  %s  %s @ %s [%s]\n", app.AppliedDate.Format("2006-01-02"), app.Title, app.CompanyName(), status)
		fmt.Printf("    id: %s\n", app.ID)
	}
	return nil
}
