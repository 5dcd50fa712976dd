package scrape

import "errors"

// Error types for the scrape package.
var (
	// ErrMissingField is returned when an expected DOM element is absent
	// from a row being scraped.
	ErrMissingField = errors.New("missing expected element")

	// ErrImageNotLoaded is returned when an image URL never materializes
	// within the bounded scroll-retry budget.
	ErrImageNotLoaded = errors.New("image did not load")

	// ErrMissingTransferGroups is returned when the transfer portal page
	// does not expose both the incoming and outgoing groups.
	ErrMissingTransferGroups = errors.New("missing transfer groups")

	// ErrUnresolvedDestination is returned when an outgoing transfer row
	// carries a predicted destination that matches no cataloged college.
	ErrUnresolvedDestination = errors.New("unresolved destination college")

	// ErrCollegeLinkNotFound is returned when the roster hub navigation
	// has no entry for the college being scraped.
	ErrCollegeLinkNotFound = errors.New("college link not found in team nav")
)
