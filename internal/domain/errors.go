package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidPosition is returned when a spread position is not one of
	// the defined values.
	ErrInvalidPosition = errors.New("invalid spread position")
)
