package browser

import "errors"

// Error types for the browser package.
var (
	// ErrElementNotFound is returned when a selector matches nothing on the page.
	ErrElementNotFound = errors.New("element not found")
)
