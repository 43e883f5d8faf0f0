package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Reading-specific validation errors
var (
	// ErrReadingIDEmpty is returned when a reading ID is empty.
	ErrReadingIDEmpty = errors.New("reading ID cannot be empty")

	// ErrReadingTimestampZero is returned when a reading timestamp is the
	// zero time.
	ErrReadingTimestampZero = errors.New("reading timestamp cannot be zero")

	// ErrInterpretationIncomplete is returned when an interpretation is
	// missing a card name, a positional meaning, or the overall narrative.
	ErrInterpretationIncomplete = errors.New("interpretation is incomplete")
)

// Timestamp layouts for reading display.
const (
	readingTimestampLayout = "January 2, 2006 at 3:04 PM"
	shortTimestampLayout   = "01/02/2006 15:04"
	readingBorder          = "═══════════════════════════════════════"
)

// Interpretation holds the generated text for a three-card reading: the
// display name and position-aware meaning of each card, plus the overall
// narrative that ties the spread together. Slots follow spread order
// (past, present, future).
type Interpretation struct {
	CardNames [SpreadSize]string `json:"card_names"`
	Meanings  [SpreadSize]string `json:"meanings"`
	Overall   string             `json:"overall"`
}

// Validate checks that every slot of the interpretation is populated.
func (i Interpretation) Validate() error {
	for idx := 0; idx < SpreadSize; idx++ {
		if i.CardNames[idx] == "" || i.Meanings[idx] == "" {
			return ErrInterpretationIncomplete
		}
	}
	if i.Overall == "" {
		return ErrInterpretationIncomplete
	}
	return nil
}

// MeaningAt returns the positional meaning for one of the three spread
// positions. Returns ErrInvalidPosition for General or unknown positions.
func (i Interpretation) MeaningAt(position Position) (string, error) {
	idx, err := position.SpreadIndex()
	if err != nil {
		return "", err
	}
	return i.Meanings[idx], nil
}

// String renders the interpretation as plain text, one block per position
// followed by the overall narrative.
func (i Interpretation) String() string {
	var sb strings.Builder
	for idx, position := range SpreadPositions() {
		sb.WriteString(strings.ToUpper(position.Label()))
		sb.WriteString(": ")
		sb.WriteString(i.CardNames[idx])
		sb.WriteString("\n")
		sb.WriteString(i.Meanings[idx])
		sb.WriteString("\n\n")
	}
	sb.WriteString(i.Overall)
	return sb.String()
}

// Reading is an immutable record of one completed past/present/future
// draw: the three cards exactly as they were drawn, the generated
// interpretation, a unique ID, and the time the reading was performed.
// Reading is a value type holding value-type cards, so a stored reading
// never changes when the deck's cards are reshuffled or flipped later.
type Reading struct {
	ID             string           `json:"id"`
	Timestamp      time.Time        `json:"timestamp"`
	Cards          [SpreadSize]Card `json:"cards"`
	Interpretation Interpretation   `json:"interpretation"`
}

// NewReading creates a Reading from its parts. Returns an error if the ID
// is empty, the timestamp is zero, any card is invalid, or the
// interpretation is incomplete.
func NewReading(id string, timestamp time.Time, cards [SpreadSize]Card, interpretation Interpretation) (Reading, error) {
	reading := Reading{
		ID:             id,
		Timestamp:      timestamp,
		Cards:          cards,
		Interpretation: interpretation,
	}

	if err := reading.Validate(); err != nil {
		return Reading{}, err
	}

	return reading, nil
}

// Validate checks if the Reading has valid data.
// Returns an error if any field fails validation.
func (r Reading) Validate() error {
	if r.ID == "" {
		return ErrReadingIDEmpty
	}

	if r.Timestamp.IsZero() {
		return ErrReadingTimestampZero
	}

	for _, card := range r.Cards {
		if err := card.Validate(); err != nil {
			return err
		}
	}

	return r.Interpretation.Validate()
}

// CardAt returns the card occupying one of the three spread positions.
// Returns ErrInvalidPosition for General or unknown positions.
func (r Reading) CardAt(position Position) (Card, error) {
	idx, err := position.SpreadIndex()
	if err != nil {
		return Card{}, err
	}
	return r.Cards[idx], nil
}

// PastCard returns the card in the past position.
func (r Reading) PastCard() Card { return r.Cards[0] }

// PresentCard returns the card in the present position.
func (r Reading) PresentCard() Card { return r.Cards[1] }

// FutureCard returns the card in the future position.
func (r Reading) FutureCard() Card { return r.Cards[2] }

// FormattedTimestamp returns the reading time as a long-form date, e.g.
// "January 2, 2006 at 3:04 PM".
func (r Reading) FormattedTimestamp() string {
	return r.Timestamp.Format(readingTimestampLayout)
}

// ShortTimestamp returns a compact timestamp for history lists, e.g.
// "01/02/2006 15:04".
func (r Reading) ShortTimestamp() string {
	return r.Timestamp.Format(shortTimestampLayout)
}

// Summary returns a one-line description of the spread:
// "Past: <card> | Present: <card> | Future: <card>".
func (r Reading) Summary() string {
	var sb strings.Builder
	for idx, position := range SpreadPositions() {
		if idx > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(position.Label())
		sb.WriteString(": ")
		sb.WriteString(r.Cards[idx].DisplayName())
	}
	return sb.String()
}

// Formatted renders the complete reading as bordered plain text: a header
// with the reading's ID and date, one block per position with the card and
// its meaning, and the overall narrative.
func (r Reading) Formatted() string {
	var sb strings.Builder

	sb.WriteString(readingBorder + "\n")
	sb.WriteString("           TAROT READING\n")
	sb.WriteString(readingBorder + "\n")
	sb.WriteString("Reading ID: " + r.ID + "\n")
	sb.WriteString("Date: " + r.FormattedTimestamp() + "\n")
	sb.WriteString(readingBorder + "\n\n")

	for idx, position := range SpreadPositions() {
		sb.WriteString("【 " + strings.ToUpper(position.Label()) + " 】\n")
		sb.WriteString("Card: " + r.Cards[idx].DisplayName() + "\n")
		sb.WriteString(r.Interpretation.Meanings[idx] + "\n\n")
	}

	sb.WriteString(readingBorder + "\n")
	sb.WriteString(r.Interpretation.Overall + "\n")
	sb.WriteString(readingBorder + "\n")

	return sb.String()
}

// String returns a compact description of the reading for logs and lists.
func (r Reading) String() string {
	return fmt.Sprintf("Reading[%s] - %s", r.ID, r.Summary())
}
