package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrInvalidCardCount is returned when a spread does not supply exactly
	// one card per reading position
	ErrInvalidCardCount = errors.New("interpretation requires exactly one card per spread position")

	// ErrCatalogNotReady is returned when the meaning catalog has not loaded
	// a complete set of card meanings
	ErrCatalogNotReady = errors.New("card meaning catalog is not ready")
)
