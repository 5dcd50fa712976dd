// Package refresh implements the refresh command that runs one ingestion
// pass over the college catalog.
package refresh

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/rosterwatch/cmd/common"
	"github.com/jonesrussell/rosterwatch/internal/refresh"
)

var (
	conference string
	collegeID  string
	full       bool
)

// Command returns the refresh command.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Run one refresh pass over the college catalog",
		Long: `Scrapes signee and transfer listings for every tracked college and
reconciles the results into the store. With --full the roster listing is
scraped as well, populating colleges from scratch.`,
		RunE: runRefresh,
	}

	cmd.Flags().StringVar(&conference, "conference", "", "restrict the run to one conference")
	cmd.Flags().StringVar(&collegeID, "college", "", "restrict the run to a single college id")
	cmd.Flags().BoolVar(&full, "full", false, "run the full pass including rosters")

	return cmd
}

// runRefresh executes the refresh command.
func runRefresh(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	repos, err := common.OpenRepositories(deps)
	if err != nil {
		return err
	}
	defer repos.Close()

	refresher, closeBrowser, err := common.BuildRefresher(deps, repos)
	if err != nil {
		return err
	}
	defer closeBrowser()

	mode := refresh.ModeUpdate
	if full {
		mode = refresh.ModeFull
	}

	// An interrupt stops the college loop cleanly; the failure manifest is
	// still written.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := refresher.Run(ctx, refresh.Options{
		Mode:       mode,
		Conference: conference,
		CollegeID:  collegeID,
	})
	if err != nil {
		return fmt.Errorf("refresh run failed: %w", err)
	}

	if len(result.Failures) > 0 {
		deps.Logger.Warn("Run finished with failures",
			"failed", len(result.Failures),
			"manifest", refresh.ManifestPath(deps.Config.Refresh.ManifestDir, mode),
		)
	}

	return nil
}
