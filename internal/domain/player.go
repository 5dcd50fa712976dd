package domain

// Player status values produced by the extractors. The source also emits
// free-text statuses (commit dates, "entered on ..." captions), so Status is
// not restricted to these.
const (
	StatusSigned    = "Signed"
	StatusCommitted = "Committed"
	StatusEntered   = "Entered"
	StatusDraft     = "Draft"
)

// Player represents an athlete record tied to up to three college
// relationships: the roster they are currently on, the college they left,
// and the destination once a transfer or commit resolves.
type Player struct {
	ID                int64   `db:"id"                  json:"-"`
	PlayerID          string  `db:"player_id"           json:"player_id"`
	Name              string  `db:"name"                json:"name"`
	Image             *string `db:"image"               json:"image,omitempty"`
	Position          *string `db:"position"            json:"position,omitempty"`
	Status            *string `db:"status"              json:"status,omitempty"`
	StarRating        *int    `db:"star_rating"         json:"star_rating,omitempty"`
	NationalRating    *int    `db:"national_rating"     json:"national_rating,omitempty"`
	HighSchool        *string `db:"high_school"         json:"high_school,omitempty"`
	PlayerPage        *string `db:"player_page"         json:"player_page,omitempty"`
	CurrentCollegeID  *string `db:"current_college_id"  json:"current_college_id,omitempty"`
	PreviousCollegeID *string `db:"previous_college_id" json:"previous_college_id,omitempty"`
	NewCollegeID      *string `db:"new_college_id"      json:"new_college_id,omitempty"`
}

// Equal reports whether two players carry the same data, field by field.
// The surrogate row id is ignored; identity is the PlayerID.
func (p *Player) Equal(other *Player) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.PlayerID == other.PlayerID &&
		p.Name == other.Name &&
		strPtrEqual(p.Image, other.Image) &&
		strPtrEqual(p.Position, other.Position) &&
		strPtrEqual(p.Status, other.Status) &&
		intPtrEqual(p.StarRating, other.StarRating) &&
		intPtrEqual(p.NationalRating, other.NationalRating) &&
		strPtrEqual(p.HighSchool, other.HighSchool) &&
		strPtrEqual(p.PlayerPage, other.PlayerPage) &&
		strPtrEqual(p.CurrentCollegeID, other.CurrentCollegeID) &&
		strPtrEqual(p.PreviousCollegeID, other.PreviousCollegeID) &&
		strPtrEqual(p.NewCollegeID, other.NewCollegeID)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// StrPtr returns a pointer to s. Helper for building optional fields.
func StrPtr(s string) *string { return &s }

// IntPtr returns a pointer to n. Helper for building optional fields.
func IntPtr(n int) *int { return &n }
