// Package reconcile decides how a freshly scraped candidate record merges
// into previously stored state: insert, update, or no-op.
package reconcile

import (
	"github.com/jonesrussell/rosterwatch/internal/domain"
)

// Action is the outcome of reconciling a candidate against stored state.
type Action string

const (
	// ActionInsert means no stored record exists for the identity.
	ActionInsert Action = "insert"
	// ActionUpdate means the merged record differs from the stored one.
	ActionUpdate Action = "update"
	// ActionNoOp means the merged record equals the stored one.
	ActionNoOp Action = "noop"
)

// Decision is the reconciliation outcome. Player is the record to persist
// for Insert and Update; it is the existing record for NoOp.
type Decision struct {
	Action Action
	Player *domain.Player
}

// Reconcile merges an incoming candidate with the stored record for the
// same identity. Incoming values win, except a nil never overwrites a
// known value: known facts propagate forward, a rescrape cannot erase
// them. Pass nil existing for a first observation.
func Reconcile(incoming, existing *domain.Player) Decision {
	if existing == nil {
		return Decision{Action: ActionInsert, Player: incoming}
	}

	merged := merge(incoming, existing)
	if merged.Equal(existing) {
		return Decision{Action: ActionNoOp, Player: existing}
	}
	return Decision{Action: ActionUpdate, Player: merged}
}

// merge copies the incoming record and backfills every nil field from the
// existing record. The identifier is immutable once assigned; the
// surrogate row id follows the stored record.
func merge(incoming, existing *domain.Player) *domain.Player {
	merged := *incoming
	merged.ID = existing.ID
	merged.PlayerID = existing.PlayerID

	if merged.Name == "" {
		merged.Name = existing.Name
	}
	if merged.Image == nil {
		merged.Image = existing.Image
	}
	if merged.Position == nil {
		merged.Position = existing.Position
	}
	if merged.Status == nil {
		merged.Status = existing.Status
	}
	if merged.StarRating == nil {
		merged.StarRating = existing.StarRating
	}
	if merged.NationalRating == nil {
		merged.NationalRating = existing.NationalRating
	}
	if merged.HighSchool == nil {
		merged.HighSchool = existing.HighSchool
	}
	if merged.PlayerPage == nil {
		merged.PlayerPage = existing.PlayerPage
	}
	if merged.CurrentCollegeID == nil {
		merged.CurrentCollegeID = existing.CurrentCollegeID
	}
	if merged.PreviousCollegeID == nil {
		merged.PreviousCollegeID = existing.PreviousCollegeID
	}
	if merged.NewCollegeID == nil {
		merged.NewCollegeID = existing.NewCollegeID
	}

	return &merged
}
