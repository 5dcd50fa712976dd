package config

import "errors"

// Error types for the config package.
var (
	// ErrMissingHost is returned when the database host is empty.
	ErrMissingHost = errors.New("missing database host")

	// ErrMissingDBName is returned when the database name is empty.
	ErrMissingDBName = errors.New("missing database name")

	// ErrMissingBaseURL is returned when the refresh base URL is empty.
	ErrMissingBaseURL = errors.New("missing base URL")

	// ErrMissingSeason is returned when the refresh season is empty.
	ErrMissingSeason = errors.New("missing season")

	// ErrInvalidNavTimeout is returned when the navigation timeout is not positive.
	ErrInvalidNavTimeout = errors.New("navigation timeout must be positive")
)
