package session

import "strings"

// State represents the lifecycle phase of a tarot session.
type State string

// Possible session states
const (
	StateInitializing      State = "initializing"
	StateReady             State = "ready"
	StatePerformingReading State = "performing_reading"
	StateError             State = "error"
	StateShutdown          State = "shutdown"
)

// Description returns the human-readable summary shown in status reports.
func (s State) Description() string {
	switch s {
	case StateInitializing:
		return "Initializing services..."
	case StateReady:
		return "Ready for readings"
	case StatePerformingReading:
		return "Performing reading..."
	case StateError:
		return "Error occurred"
	case StateShutdown:
		return "Session shutdown"
	default:
		return "Unknown state"
	}
}

// Display returns the state in the uppercase form used by status text.
func (s State) Display() string {
	return strings.ToUpper(string(s))
}
