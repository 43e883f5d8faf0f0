package session

import (
	"fmt"
	"time"
)

// readingIDGenerator produces session-unique reading IDs from a timestamp
// source and a monotonic counter. Each orchestrator owns its own generator,
// so IDs never depend on cross-instance shared state.
type readingIDGenerator struct {
	clock   func() time.Time
	counter int
}

// next returns the next reading ID in the form R<yyyyMMdd-HHmmss>-<seq>,
// where seq is a zero-padded per-session sequence number starting at 001.
func (g *readingIDGenerator) next() string {
	g.counter++
	return fmt.Sprintf("R%s-%03d", g.clock().Format("20060102-150405"), g.counter)
}
