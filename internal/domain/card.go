package domain

import (
	"errors"
	"fmt"
)

// Card-specific validation errors
var (
	// ErrCardNumberOutOfRange is returned when a card's arcana number falls
	// outside the Major Arcana range of 0-21.
	ErrCardNumberOutOfRange = errors.New("card number must be between 0 and 21")

	// ErrCardNameEmpty is returned when a card's name is empty.
	ErrCardNameEmpty = errors.New("card name cannot be empty")

	// ErrCardMeaningEmpty is returned when a card's upright or reversed
	// meaning is empty.
	ErrCardMeaningEmpty = errors.New("card meaning cannot be empty")
)

// reversedSuffix marks a reversed card in display names and summaries.
const reversedSuffix = " (Reversed)"

// DefaultReversalProbability is the chance that a freshly drawn card lands
// reversed when no explicit probability is configured.
const DefaultReversalProbability = 0.3

// Card represents a single Major Arcana card together with its orientation.
// The identity (number, name, meanings) never changes once created; only the
// orientation is mutable. Card is a value type, so copying one yields an
// independent card. Recorded readings stay frozen even when the deck's own
// cards are later flipped or reshuffled.
type Card struct {
	Number          int    `json:"number"`
	Name            string `json:"name"`
	UprightMeaning  string `json:"upright_meaning"`
	ReversedMeaning string `json:"reversed_meaning"`
	Reversed        bool   `json:"reversed"`
}

// NewCard creates an upright Card with the given identity and meanings.
// Returns an error if validation fails.
func NewCard(number int, name, uprightMeaning, reversedMeaning string) (Card, error) {
	card := Card{
		Number:          number,
		Name:            name,
		UprightMeaning:  uprightMeaning,
		ReversedMeaning: reversedMeaning,
	}

	if err := card.Validate(); err != nil {
		return Card{}, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c Card) Validate() error {
	if c.Number < 0 || c.Number >= ArcanaCount {
		return ErrCardNumberOutOfRange
	}

	if c.Name == "" {
		return ErrCardNameEmpty
	}

	if c.UprightMeaning == "" || c.ReversedMeaning == "" {
		return ErrCardMeaningEmpty
	}

	return nil
}

// CurrentMeaning returns the meaning matching the card's orientation.
func (c Card) CurrentMeaning() string {
	if c.Reversed {
		return c.ReversedMeaning
	}
	return c.UprightMeaning
}

// DisplayName returns the card's name, with a " (Reversed)" suffix when the
// card is reversed.
func (c Card) DisplayName() string {
	if c.Reversed {
		return c.Name + reversedSuffix
	}
	return c.Name
}

// SetReversed sets the card's orientation explicitly.
func (c *Card) SetReversed(reversed bool) {
	c.Reversed = reversed
}

// Flip toggles the card's current orientation.
func (c *Card) Flip() {
	c.Reversed = !c.Reversed
}

// ResetOrientation returns the card to upright.
func (c *Card) ResetOrientation() {
	c.Reversed = false
}

// Equal reports whether two cards share the same arcana number. Orientation
// is deliberately ignored: The Fool reversed is still The Fool.
func (c Card) Equal(other Card) bool {
	return c.Number == other.Number
}

// String returns a compact description of the card for logs and debugging.
func (c Card) String() string {
	suffix := ""
	if c.Reversed {
		suffix = reversedSuffix
	}
	return fmt.Sprintf("Card{%d: %s%s}", c.Number, c.Name, suffix)
}

// DetailedString returns the display name followed by the current meaning on
// a second line.
func (c Card) DetailedString() string {
	return c.DisplayName() + "\n" + c.CurrentMeaning()
}
