package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/rosterwatch/internal/domain"
)

// playerColumns is the column list returned by player SELECT queries.
const playerColumns = `id, player_id, name, image, position, status, star_rating,
	national_rating, high_school, player_page, current_college_id,
	previous_college_id, new_college_id`

// PlayerRepository handles database operations for players.
type PlayerRepository struct {
	db *sqlx.DB
}

// NewPlayerRepository creates a new player repository.
func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetByPlayerID retrieves a player by its stable identifier.
func (r *PlayerRepository) GetByPlayerID(ctx context.Context, playerID string) (*domain.Player, error) {
	var player domain.Player
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1`

	err := r.db.GetContext(ctx, &player, query, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return &player, nil
}

// Insert adds a new player record.
func (r *PlayerRepository) Insert(ctx context.Context, player *domain.Player) error {
	query := `
		INSERT INTO players (player_id, name, image, position, status, star_rating,
			national_rating, high_school, player_page, current_college_id,
			previous_college_id, new_college_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		player.PlayerID,
		player.Name,
		player.Image,
		player.Position,
		player.Status,
		player.StarRating,
		player.NationalRating,
		player.HighSchool,
		player.PlayerPage,
		player.CurrentCollegeID,
		player.PreviousCollegeID,
		player.NewCollegeID,
	).Scan(&player.ID)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}

	return nil
}

// Update writes the full player record keyed by the stable identifier.
func (r *PlayerRepository) Update(ctx context.Context, player *domain.Player) error {
	query := `
		UPDATE players
		SET name = $1, image = $2, position = $3, status = $4, star_rating = $5,
			national_rating = $6, high_school = $7, player_page = $8,
			current_college_id = $9, previous_college_id = $10, new_college_id = $11
		WHERE player_id = $12
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		player.Name,
		player.Image,
		player.Position,
		player.Status,
		player.StarRating,
		player.NationalRating,
		player.HighSchool,
		player.PlayerPage,
		player.CurrentCollegeID,
		player.PreviousCollegeID,
		player.NewCollegeID,
		player.PlayerID,
	)
	if wrapErr := execRequireRows(result, err, ErrPlayerNotFound); wrapErr != nil {
		return fmt.Errorf("failed to update player: %w", wrapErr)
	}

	return nil
}

// CountByCollege returns how many players are related to a college through
// any of the three college relationships.
func (r *PlayerRepository) CountByCollege(ctx context.Context, collegeID string) (int, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM players
		WHERE current_college_id = $1 OR previous_college_id = $1 OR new_college_id = $1
	`

	err := r.db.GetContext(ctx, &count, query, collegeID)
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}

	return count, nil
}
