// Package domain defines the core value types and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrBlankComparison is returned when both call numbers of a comparison
	// have every field empty. Comparing them is legal but meaningless, so
	// interactive callers reject the request instead.
	ErrBlankComparison = errors.New("both call numbers are blank")

	// ErrInvalidID is returned when a quiz item ID is missing or malformed.
	ErrInvalidID = errors.New("invalid ID")
)
