// Package domain provides domain models used across the application.
package domain

import (
	"time"
)

// College represents a tracked sports program, keyed by a stable slug.
type College struct {
	ID             int64      `db:"id"              json:"-"`
	CollegeID      string     `db:"college_id"      json:"college_id"`
	Name           string     `db:"name"            json:"name"`
	Logo           *string    `db:"logo"            json:"logo,omitempty"`
	Conference     string     `db:"conference"      json:"conference"`
	FullConference *string    `db:"full_conference" json:"full_conference,omitempty"`
	TeamName       *string    `db:"team_name"       json:"team_name,omitempty"`
	LastUpdate     *time.Time `db:"last_update"     json:"last_update,omitempty"`
}
