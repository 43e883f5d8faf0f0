// Package session contains the application-level orchestration for a tarot
// reading session. It coordinates the deck, the interpretation generator, and
// the reading history to fulfill session operations, and tracks the session
// lifecycle through an explicit state machine.
//
// The session service implements the application layer between the HTTP
// delivery mechanism and the domain: it owns the mutable state (deck
// contents, accumulated readings, current lifecycle state), applies the
// reshuffle policy before each draw, and translates failures into an error
// state that callers recover from explicitly. Dependencies arrive through
// constructor injection, and all mutating operations are safe for concurrent
// use.
package session
