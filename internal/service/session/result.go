package session

import "github.com/phrazzld/arcana-api/internal/domain"

// Result reports the outcome of a session operation. Failed operations also
// return an error alongside the Result; the Result carries the caller-facing
// message while the error carries the wrapped cause.
type Result struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Reading *domain.Reading `json:"reading,omitempty"`
}

// HasReading reports whether the result carries a completed reading.
func (r Result) HasReading() bool {
	return r.Reading != nil
}

func successResult(message string) Result {
	return Result{Success: true, Message: message}
}

func readingResult(message string, reading *domain.Reading) Result {
	return Result{Success: true, Message: message, Reading: reading}
}

func failureResult(message string) Result {
	return Result{Success: false, Message: message}
}
