package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/rosterwatch/internal/domain"
)

// collegeColumns is the column list returned by college SELECT queries.
const collegeColumns = `id, college_id, name, logo, conference, full_conference, team_name, last_update`

// CollegeRepository handles database operations for colleges.
type CollegeRepository struct {
	db *sqlx.DB
}

// NewCollegeRepository creates a new college repository.
func NewCollegeRepository(db *sqlx.DB) *CollegeRepository {
	return &CollegeRepository{db: db}
}

// Insert adds a college to the catalog.
func (r *CollegeRepository) Insert(ctx context.Context, college *domain.College) error {
	query := `
		INSERT INTO colleges (college_id, name, logo, conference, full_conference)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		college.CollegeID,
		college.Name,
		college.Logo,
		college.Conference,
		college.FullConference,
	).Scan(&college.ID)
	if err != nil {
		return fmt.Errorf("failed to insert college: %w", err)
	}

	return nil
}

// GetByID retrieves a college by its stable slug.
func (r *CollegeRepository) GetByID(ctx context.Context, collegeID string) (*domain.College, error) {
	var college domain.College
	query := `SELECT ` + collegeColumns + ` FROM colleges WHERE college_id = $1`

	err := r.db.GetContext(ctx, &college, query, collegeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrCollegeNotFound, collegeID)
		}
		return nil, fmt.Errorf("failed to get college: %w", err)
	}

	return &college, nil
}

// GetByName retrieves a college by its exact display name.
func (r *CollegeRepository) GetByName(ctx context.Context, name string) (*domain.College, error) {
	var college domain.College
	query := `SELECT ` + collegeColumns + ` FROM colleges WHERE name = $1`

	err := r.db.GetContext(ctx, &college, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrCollegeNotFound, name)
		}
		return nil, fmt.Errorf("failed to get college by name: %w", err)
	}

	return &college, nil
}

// List retrieves the college catalog, optionally filtered to one conference.
func (r *CollegeRepository) List(ctx context.Context, conference string) ([]*domain.College, error) {
	var colleges []*domain.College
	var query string
	var args []any

	if conference != "" {
		query = `SELECT ` + collegeColumns + ` FROM colleges WHERE conference = $1 ORDER BY name`
		args = []any{conference}
	} else {
		query = `SELECT ` + collegeColumns + ` FROM colleges ORDER BY name`
	}

	err := r.db.SelectContext(ctx, &colleges, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list colleges: %w", err)
	}

	return colleges, nil
}

// UpdateTeamName sets the canonical team display name for a college.
func (r *CollegeRepository) UpdateTeamName(ctx context.Context, collegeID, teamName string) error {
	query := `UPDATE colleges SET team_name = $1 WHERE college_id = $2`

	result, err := r.db.ExecContext(ctx, query, teamName, collegeID)
	if wrapErr := execRequireRows(result, err, ErrCollegeNotFound); wrapErr != nil {
		return fmt.Errorf("failed to update team name: %w", wrapErr)
	}

	return nil
}

// TouchLastUpdate stamps the college's last refresh timestamp.
func (r *CollegeRepository) TouchLastUpdate(ctx context.Context, collegeID string, at time.Time) error {
	query := `UPDATE colleges SET last_update = $1 WHERE college_id = $2`

	result, err := r.db.ExecContext(ctx, query, at, collegeID)
	if wrapErr := execRequireRows(result, err, ErrCollegeNotFound); wrapErr != nil {
		return fmt.Errorf("failed to stamp last update: %w", wrapErr)
	}

	return nil
}
