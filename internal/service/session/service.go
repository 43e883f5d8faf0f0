package session

import (
	"context"
	"errors"

	"github.com/phrazzld/arcana-api/internal/domain"
)

// Service orchestrates the complete tarot reading workflow. It owns one deck
// and one reading history, coordinates the interpretation catalog and the
// reading generator, and tracks a small state machine for readiness and
// error recovery.
//
// All methods are safe for concurrent use: a single mutex serializes every
// operation, so callers arriving over the network observe the same strictly
// sequential behavior a single interactive caller would.
type Service interface {
	// PerformReading draws a three-card spread from the session deck,
	// applies random reversals, generates an interpretation, and records
	// the completed reading in the session history.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can include a request-scoped logger
	//
	// Returns:
	//   - (Result, nil): Successful result carrying the completed reading
	//   - (Result, ErrNotReady): If the session is not in the Ready state;
	//     the Result message names the current state
	//   - (Result, ErrShutdown): If the session has been shut down
	//   - (Result, error): Any generation failure; the session transitions
	//     to the Error state and records the failure as its last error
	//
	// Error Handling:
	//   - Failures never panic; they are captured as a failure Result plus
	//     a wrapped error, and the session stays in Error until recovered
	PerformReading(ctx context.Context) (Result, error)

	// PerformMultipleReadings performs count readings back to back,
	// returning one Result per completed attempt. It stops at the first
	// failure, so the returned slice may be shorter than count.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can include a request-scoped logger
	//   - count: Number of readings to perform; must be at least 1
	//
	// Returns:
	//   - (results, nil): All count readings completed successfully
	//   - (nil, ErrInvalidReadingCount): If count is less than 1
	//   - (results, error): The results up to and including the failed
	//     attempt, plus the error that stopped the run
	PerformMultipleReadings(ctx context.Context, count int) ([]Result, error)

	// ResetDeck rebuilds the session deck to all 22 upright cards and
	// shuffles. Clears the Error state if set. Counts toward DeckResets.
	ResetDeck(ctx context.Context) (Result, error)

	// CreateNewDeck replaces the session deck with a brand-new instance.
	// Clears the Error state if set. Counts toward DeckResets.
	CreateNewDeck(ctx context.Context) (Result, error)

	// ClearHistory removes all readings from the session history. Lifetime
	// counters (TotalReadings, DeckResets) are unaffected.
	ClearHistory(ctx context.Context) (Result, error)

	// RecoverFromError attempts to return an errored session to Ready by
	// creating a fresh deck and re-verifying the catalog. Succeeds
	// trivially when the session is not in the Error state.
	RecoverFromError(ctx context.Context) (Result, error)

	// Shutdown moves the session to its terminal state. After shutdown,
	// mutating operations fail with ErrShutdown; accessors keep working so
	// callers can still inspect the final session state.
	Shutdown(ctx context.Context)

	// SessionID returns the unique identifier assigned to this session at
	// construction.
	SessionID() string

	// SessionReadings returns a copy of the session history in completion
	// order.
	SessionReadings() []domain.Reading

	// Reading returns the reading at the given zero-based history index,
	// or ErrReadingNotFound if the index is out of range.
	Reading(index int) (domain.Reading, error)

	// LastReading returns the most recent reading, or ErrReadingNotFound
	// if the history is empty.
	LastReading() (domain.Reading, error)

	// Stats returns a snapshot of the session statistics.
	Stats() Stats

	// State returns the current session state.
	State() State

	// Ready reports whether the session can perform a reading.
	Ready() bool

	// HasError reports whether the session is in the Error state.
	HasError() bool

	// LastError returns the most recent error message, or the empty string
	// when the session is healthy.
	LastError() string

	// DeckStatus returns the deck's availability line.
	DeckStatus() string

	// DeckInfo returns a snapshot of the deck's counts and availability.
	DeckInfo() DeckInfo

	// QuickStatus returns a one-line summary of state, deck, and readings.
	QuickStatus() string

	// StatusReport returns a multi-section status block covering state,
	// statistics, deck, catalog, and the last error when present.
	StatusReport() string
}

// Common error types for the session service
var (
	// ErrNotReady indicates the session cannot perform a reading in its
	// current state.
	ErrNotReady = errors.New("session is not ready for readings")

	// ErrShutdown indicates the session has been shut down and rejects
	// further mutating operations.
	ErrShutdown = errors.New("session has been shut down")

	// ErrInvalidReadingCount indicates a reading count below 1.
	ErrInvalidReadingCount = errors.New("reading count must be at least 1")

	// ErrReadingNotFound indicates no reading exists at the requested
	// history position.
	ErrReadingNotFound = errors.New("reading not found")

	// ErrInvalidProbability indicates a reversal probability outside the
	// inclusive range 0 to 1.
	ErrInvalidProbability = errors.New("reversal probability must be between 0 and 1")

	// ErrCatalogNotReady indicates the interpretation catalog has not
	// loaded a complete set of card meanings.
	ErrCatalogNotReady = errors.New("interpretation catalog is not ready")
)
