package common

import "errors"

// Error types for the common command package.
var (
	// ErrLoggerRequired is returned when the logger dependency is missing.
	ErrLoggerRequired = errors.New("logger is required")

	// ErrConfigRequired is returned when the config dependency is missing.
	ErrConfigRequired = errors.New("config is required")
)
