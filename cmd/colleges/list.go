package colleges

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/rosterwatch/cmd/common"
	"github.com/jonesrussell/rosterwatch/internal/domain"
)

var listConference string

// listCommand returns the colleges list subcommand.
func listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked colleges in a table",
		RunE:  runList,
	}

	cmd.Flags().StringVar(&listConference, "conference", "", "filter to one conference")

	return cmd
}

// runList executes the list subcommand.
func runList(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	repos, err := common.OpenRepositories(deps)
	if err != nil {
		return err
	}
	defer repos.Close()

	colleges, err := repos.Colleges.List(cmd.Context(), listConference)
	if err != nil {
		return fmt.Errorf("failed to list colleges: %w", err)
	}

	renderTable(colleges)
	return nil
}

// renderTable formats and displays the colleges in a table.
func renderTable(colleges []*domain.College) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"ID", "Name", "Conference", "Team Name", "Last Update"})

	for _, college := range colleges {
		teamName := ""
		if college.TeamName != nil {
			teamName = *college.TeamName
		}
		lastUpdate := "never"
		if college.LastUpdate != nil {
			lastUpdate = college.LastUpdate.Format("2006-01-02 15:04")
		}
		t.AppendRow(table.Row{
			college.CollegeID,
			college.Name,
			college.Conference,
			teamName,
			lastUpdate,
		})
	}

	t.Render()
}
