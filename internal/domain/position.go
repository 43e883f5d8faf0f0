package domain

import "strings"

// SpreadSize is the number of cards in a past/present/future reading.
const SpreadSize = 3

// Position identifies the contextual slot a card's interpretation applies
// to. General is the position-free meaning used outside a spread; Past,
// Present, and Future are the three slots of a reading, in that order.
type Position string

const (
	// PositionGeneral is the position-independent context.
	PositionGeneral Position = "general"

	// PositionPast is the first slot of a three-card spread.
	PositionPast Position = "past"

	// PositionPresent is the second slot of a three-card spread.
	PositionPresent Position = "present"

	// PositionFuture is the third slot of a three-card spread.
	PositionFuture Position = "future"
)

// SpreadPositions returns the three reading positions in spread order.
func SpreadPositions() [SpreadSize]Position {
	return [SpreadSize]Position{PositionPast, PositionPresent, PositionFuture}
}

// IsValid reports whether the position is one of the defined values.
func (p Position) IsValid() bool {
	switch p {
	case PositionGeneral, PositionPast, PositionPresent, PositionFuture:
		return true
	default:
		return false
	}
}

// Label returns the position's display label ("Past", "Present", ...).
func (p Position) Label() string {
	if !p.IsValid() {
		return "Unknown"
	}
	return strings.ToUpper(string(p[0])) + string(p[1:])
}

// SpreadIndex returns the position's slot in a spread's card array.
// Returns ErrInvalidPosition for positions outside the spread, General
// included.
func (p Position) SpreadIndex() (int, error) {
	switch p {
	case PositionPast:
		return 0, nil
	case PositionPresent:
		return 1, nil
	case PositionFuture:
		return 2, nil
	default:
		return 0, ErrInvalidPosition
	}
}
