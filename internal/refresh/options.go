package refresh

import "fmt"

// Mode selects which extractor passes a run performs. The mode string also
// names the failure manifest for the run.
type Mode string

const (
	// ModeFull runs roster, signees, and transfers for each college. Used
	// to populate colleges from scratch.
	ModeFull Mode = "inserting"
	// ModeUpdate runs the lighter nightly pass: signees and transfers only.
	ModeUpdate Mode = "updating"
)

// Options control a refresh run.
type Options struct {
	// Mode selects the full or update pass.
	Mode Mode
	// Conference, when set, restricts the run to one conference.
	Conference string
	// CollegeID, when set, restricts the run to a single college.
	CollegeID string
}

// Validate checks the options.
func (o *Options) Validate() error {
	if o.Mode != ModeFull && o.Mode != ModeUpdate {
		return fmt.Errorf("%w: %q", ErrUnknownMode, o.Mode)
	}
	return nil
}
