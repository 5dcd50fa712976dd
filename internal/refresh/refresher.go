// Package refresh orchestrates the ingestion pipeline: it iterates the
// college catalog, applies the staleness gate, drives the extractors, and
// feeds their records through reconciliation into the store.
package refresh

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonesrussell/rosterwatch/internal/database"
	"github.com/jonesrussell/rosterwatch/internal/domain"
	"github.com/jonesrussell/rosterwatch/internal/logger"
	"github.com/jonesrussell/rosterwatch/internal/reconcile"
	"github.com/jonesrussell/rosterwatch/internal/scrape"
)

// populatedThreshold is the full-mode shortcut: a college already related
// to more players than this was populated by an earlier run and is skipped.
const populatedThreshold = 9

// CollegeStore is the college catalog surface the orchestrator consumes.
type CollegeStore interface {
	List(ctx context.Context, conference string) ([]*domain.College, error)
	GetByID(ctx context.Context, collegeID string) (*domain.College, error)
	TouchLastUpdate(ctx context.Context, collegeID string, at time.Time) error
}

// PlayerStore is the player persistence surface the orchestrator consumes.
type PlayerStore interface {
	GetByPlayerID(ctx context.Context, playerID string) (*domain.Player, error)
	Insert(ctx context.Context, player *domain.Player) error
	Update(ctx context.Context, player *domain.Player) error
	CountByCollege(ctx context.Context, collegeID string) (int, error)
}

// PageFunc opens a fresh browser page and returns it with its cleanup.
type PageFunc func() (scrape.Page, func())

// Failure records one college that failed during a run.
type Failure struct {
	College *domain.College
	Err     error
}

// Result summarizes a refresh run.
type Result struct {
	RunID     string
	Processed int
	Skipped   int
	Failures  []Failure
}

// Refresher runs the ingestion pipeline over the college catalog.
type Refresher struct {
	colleges    CollegeStore
	players     PlayerStore
	extractors  []scrape.Extractor
	newPage     PageFunc
	manifestDir string
	logger      logger.Interface
	metrics     *Metrics
	now         func() time.Time
}

// NewRefresher creates a new refresher. The extractors must be passed in
// the fixed pipeline order: roster, signees, transfers. Update-mode runs
// skip any extractor named "roster".
func NewRefresher(
	colleges CollegeStore,
	players PlayerStore,
	extractors []scrape.Extractor,
	newPage PageFunc,
	manifestDir string,
	log logger.Interface,
) *Refresher {
	return &Refresher{
		colleges:    colleges,
		players:     players,
		extractors:  extractors,
		newPage:     newPage,
		manifestDir: manifestDir,
		logger:      log.WithComponent("refresh"),
		metrics:     NewMetrics(),
		now:         time.Now,
	}
}

// GetMetrics returns the refresher's metrics tracker.
func (r *Refresher) GetMetrics() *Metrics {
	return r.metrics
}

// Run executes one refresh pass. Per-college failures are accumulated, not
// fatal: the run continues with the next college and the failures are
// written to the run's manifest at the end. A canceled context stops the
// college loop but the manifest is still written.
func (r *Refresher) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.NewString()}
	log := r.logger.With("run_id", result.RunID, "mode", string(opts.Mode))

	colleges, err := r.selectColleges(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(colleges) == 0 {
		log.Info("No colleges found", "conference", opts.Conference)
		return result, nil
	}

	log.Info("Starting refresh run", "colleges", len(colleges))

	for i, college := range colleges {
		if ctxErr := ctx.Err(); ctxErr != nil {
			log.Warn("Run canceled", "remaining", len(colleges)-i)
			break
		}

		skip, skipErr := r.shouldSkip(ctx, college, opts.Mode)
		if skipErr != nil {
			result.Failures = append(result.Failures, Failure{College: college, Err: skipErr})
			continue
		}
		if skip {
			result.Skipped++
			continue
		}

		log.Info("Processing college", "college", college.CollegeID, "progress", fmt.Sprintf("%d/%d", i+1, len(colleges)))

		if processErr := r.processCollege(ctx, college, opts.Mode); processErr != nil {
			log.Error("College failed", "college", college.CollegeID, "error", processErr)
			r.metrics.IncrementError()
			result.Failures = append(result.Failures, Failure{College: college, Err: processErr})
			continue
		}

		// Only a fully successful pass marks the college fresh; a failed
		// college is retried on the next run regardless of the gate.
		if stampErr := r.colleges.TouchLastUpdate(ctx, college.CollegeID, r.now()); stampErr != nil {
			log.Error("Failed to stamp last update", "college", college.CollegeID, "error", stampErr)
			result.Failures = append(result.Failures, Failure{College: college, Err: stampErr})
			continue
		}
		result.Processed++
	}

	if manifestErr := r.writeManifest(opts.Mode, result.Failures); manifestErr != nil {
		log.Error("Failed to write failure manifest", "error", manifestErr)
	}

	log.Info("Refresh run complete",
		"processed", result.Processed,
		"skipped", result.Skipped,
		"failed", len(result.Failures),
		"records", r.metrics.GetProcessedCount(),
		"duration", r.metrics.GetProcessingDuration(),
	)

	return result, nil
}

// selectColleges resolves the run's college set from the options.
func (r *Refresher) selectColleges(ctx context.Context, opts Options) ([]*domain.College, error) {
	if opts.CollegeID != "" {
		college, err := r.colleges.GetByID(ctx, opts.CollegeID)
		if err != nil {
			return nil, err
		}
		return []*domain.College{college}, nil
	}
	return r.colleges.List(ctx, opts.Conference)
}

// shouldSkip applies the staleness gate (update mode) or the
// already-populated shortcut (full mode).
func (r *Refresher) shouldSkip(ctx context.Context, college *domain.College, mode Mode) (bool, error) {
	switch mode {
	case ModeUpdate:
		if refreshedToday(college.LastUpdate, r.now()) {
			r.logger.Debug("College already refreshed today", "college", college.CollegeID)
			return true, nil
		}
	case ModeFull:
		count, err := r.players.CountByCollege(ctx, college.CollegeID)
		if err != nil {
			return false, err
		}
		if count > populatedThreshold {
			r.logger.Debug("College already populated", "college", college.CollegeID, "players", count)
			return true, nil
		}
	}
	return false, nil
}

// processCollege runs the mode's extractor passes for one college and
// reconciles every yielded record. Any error crosses the college boundary
// and fails the college as a whole; records persisted before the error
// stay persisted.
func (r *Refresher) processCollege(ctx context.Context, college *domain.College, mode Mode) error {
	page, closePage := r.newPage()
	defer closePage()

	for _, extractor := range r.extractors {
		if mode == ModeUpdate && extractor.Name() == "roster" {
			continue
		}

		records, err := extractor.Extract(ctx, college, page)
		if err != nil {
			return fmt.Errorf("%s: %w", extractor.Name(), err)
		}

		for _, record := range records {
			if err := r.reconcileRecord(ctx, college, record); err != nil {
				return fmt.Errorf("%s: %w", extractor.Name(), err)
			}
		}
	}

	return nil
}

// reconcileRecord merges one candidate into the store.
func (r *Refresher) reconcileRecord(ctx context.Context, college *domain.College, record *domain.Player) error {
	existing, err := r.players.GetByPlayerID(ctx, record.PlayerID)
	if err != nil && !errors.Is(err, database.ErrPlayerNotFound) {
		return err
	}

	decision := reconcile.Reconcile(record, existing)
	switch decision.Action {
	case reconcile.ActionInsert:
		r.logger.Info("Inserting player", "player", record.Name, "college", college.CollegeID)
		if err := r.players.Insert(ctx, decision.Player); err != nil {
			return err
		}
	case reconcile.ActionUpdate:
		r.logger.Info("Updating player", "player", record.Name, "college", college.CollegeID)
		if err := r.players.Update(ctx, decision.Player); err != nil {
			return err
		}
	case reconcile.ActionNoOp:
		r.logger.Debug("Player unchanged", "player", record.Name)
	}

	r.metrics.IncrementProcessed()
	return nil
}

// writeManifest persists the run's failed colleges.
func (r *Refresher) writeManifest(mode Mode, failures []Failure) error {
	failed := make([]*domain.College, 0, len(failures))
	for _, f := range failures {
		failed = append(failed, f.College)
	}
	return WriteManifest(r.manifestDir, mode, failed)
}
