package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/arcana-api/internal/catalog"
	"github.com/phrazzld/arcana-api/internal/deck"
	"github.com/phrazzld/arcana-api/internal/generation"
	"github.com/phrazzld/arcana-api/internal/service/session"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, session.ErrInvalidReadingCount),
		errors.Is(err, generation.ErrInvalidCardCount),
		errors.Is(err, deck.ErrNegativeDrawCount):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, session.ErrReadingNotFound),
		errors.Is(err, catalog.ErrCardNotFound):
		return http.StatusNotFound

	// State conflict errors
	case errors.Is(err, session.ErrNotReady),
		errors.Is(err, session.ErrShutdown),
		errors.Is(err, session.ErrCatalogNotReady),
		errors.Is(err, generation.ErrCatalogNotReady):
		return http.StatusConflict

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	// Handle nil error
	if err == nil {
		return "An unexpected error occurred"
	}

	// Map specific error types to user-friendly messages
	switch {
	// Bad request errors
	case errors.Is(err, session.ErrInvalidReadingCount):
		return "Invalid reading count"

	case errors.Is(err, generation.ErrInvalidCardCount):
		return "Invalid card count"

	case errors.Is(err, deck.ErrNegativeDrawCount):
		return "Invalid draw count"

	// Not found errors
	case errors.Is(err, session.ErrReadingNotFound):
		return "Reading not found"

	case errors.Is(err, catalog.ErrCardNotFound):
		return "Card not found"

	// State conflict errors
	case errors.Is(err, session.ErrNotReady):
		return "Session is not ready"

	case errors.Is(err, session.ErrShutdown):
		return "Session has been shut down"

	case errors.Is(err, session.ErrCatalogNotReady),
		errors.Is(err, generation.ErrCatalogNotReady):
		return "Interpretation catalog is not ready"

	// Default case for unknown errors
	default:
		// Check if we're in a reading context by looking at the error string
		if strings.Contains(err.Error(), "perform reading") {
			return "Failed to perform reading"
		} else if strings.Contains(err.Error(), "generate interpretation") {
			return "Failed to generate interpretation"
		}
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Extract the field name and validation tag
		// Example format: "Key: 'PerformReadingRequest.Count' Error:Field validation for 'Count' failed on the 'gte' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			// Further split to get just the field validation part
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				// Create a cleaner error message
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "gte":
		return "value too small"
	case "lte":
		return "value too large"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
