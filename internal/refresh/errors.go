package refresh

import "errors"

// Error types for the refresh package.
var (
	// ErrUnknownMode is returned when the run mode is not recognized.
	ErrUnknownMode = errors.New("unknown run mode")
)
