// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Specific validation errors wrap this sentinel so callers can match
	// the whole class with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is malformed or non-positive.
	ErrInvalidID = errors.New("invalid ID")
)
