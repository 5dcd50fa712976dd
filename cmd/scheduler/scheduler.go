// Package scheduler implements the scheduler command that runs the update
// refresh pass on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/rosterwatch/cmd/common"
	"github.com/jonesrussell/rosterwatch/internal/refresh"
)

// Command returns the scheduler command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "scheduler",
		Short: "Run the update refresh pass on a schedule",
		Long: `Starts a scheduler that runs the update refresh pass on the configured
cron schedule. The scheduler runs until interrupted with Ctrl+C.`,
		RunE: runScheduler,
	}
}

// runScheduler executes the scheduler command.
func runScheduler(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	repos, err := common.OpenRepositories(deps)
	if err != nil {
		return err
	}
	defer repos.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Standard 5-field cron format (minute hour day month weekday).
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	c := cron.New(cron.WithParser(parser), cron.WithChain(cron.Recover(cron.DefaultLogger)))

	// Runs must not overlap: the store assumes single-writer semantics.
	var runMu sync.Mutex

	schedule := deps.Config.Refresh.Schedule
	_, err = c.AddFunc(schedule, func() {
		if !runMu.TryLock() {
			deps.Logger.Warn("Previous refresh run still in progress, skipping tick")
			return
		}
		defer runMu.Unlock()

		runScheduledRefresh(ctx, deps, repos)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule refresh: %w", err)
	}

	deps.Logger.Info("Scheduler started", "schedule", schedule)
	c.Start()

	<-ctx.Done()
	deps.Logger.Info("Shutdown signal received")

	// Wait for a running cron job to finish.
	stopCtx := c.Stop()
	<-stopCtx.Done()

	return nil
}

// runScheduledRefresh performs one scheduled update pass. A fresh browser
// session is started per tick so a crashed browser cannot poison later runs.
func runScheduledRefresh(ctx context.Context, deps *common.CommandDeps, repos *common.Repositories) {
	refresher, closeBrowser, err := common.BuildRefresher(deps, repos)
	if err != nil {
		deps.Logger.Error("Failed to build refresher", "error", err)
		return
	}
	defer closeBrowser()

	result, err := refresher.Run(ctx, refresh.Options{Mode: refresh.ModeUpdate})
	if err != nil {
		deps.Logger.Error("Scheduled refresh failed", "error", err)
		return
	}

	deps.Logger.Info("Scheduled refresh complete",
		"processed", result.Processed,
		"skipped", result.Skipped,
		"failed", len(result.Failures),
	)
}
