// services/errors.go - Sentinel errors mapped to HTTP statuses by handlers
package services

import "errors"

var (
	// ErrTeamNotFound is returned when a team id does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrPerformanceNotFound is returned when a performance id does not exist.
	ErrPerformanceNotFound = errors.New("performance not found")
	// ErrInvalidInput signals failed input validation.
	ErrInvalidInput = errors.New("invalid input")
)
