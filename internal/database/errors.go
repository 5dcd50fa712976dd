package database

import "errors"

// Error types for the database package.
var (
	// ErrCollegeNotFound is returned when the requested college does not exist.
	ErrCollegeNotFound = errors.New("college not found")

	// ErrPlayerNotFound is returned when the requested player does not exist.
	ErrPlayerNotFound = errors.New("player not found")
)
