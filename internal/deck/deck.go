// Package deck manages the pool of Major Arcana cards that readings
// draw from. Cards are consumed as they are drawn, and the deck
// replenishes itself automatically when it runs too low to serve a
// standard three-card spread.
package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/phrazzld/arcana-api/internal/domain"
)

// MinimumCardsForReading is the number of available cards below which
// the deck resets and reshuffles itself before the next draw.
const MinimumCardsForReading = domain.SpreadSize

// ErrNegativeDrawCount indicates that a caller asked to draw a
// negative number of cards.
var ErrNegativeDrawCount = errors.New("cannot draw a negative number of cards")

// Deck holds the Major Arcana cards currently available for drawing.
//
// Every card starts upright; orientation is assigned later by the
// reading flow, not by the deck. When fewer than
// MinimumCardsForReading cards remain before a draw, the deck resets
// to a full shuffled state so a draw always succeeds.
//
// Deck is not safe for concurrent use. Callers sharing a Deck across
// goroutines must provide their own synchronization.
type Deck struct {
	available []domain.Card
	rng       *rand.Rand
}

// New creates a fully populated, shuffled deck seeded from the
// current time.
func New() *Deck {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithSeed creates a fully populated, shuffled deck whose shuffle
// order is determined by seed. Two decks created with the same seed
// draw identical card sequences, which makes seeded decks useful in
// tests.
func NewWithSeed(seed int64) *Deck {
	return NewWithRand(rand.New(rand.NewSource(seed)))
}

// NewWithRand creates a fully populated, shuffled deck that uses rng
// for all shuffling.
func NewWithRand(rng *rand.Rand) *Deck {
	if rng == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("rng cannot be nil for Deck")
	}

	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// Draw removes and returns the next card from the deck.
//
// If fewer than MinimumCardsForReading cards remain, the deck resets
// to a full shuffled state before drawing, so Draw never fails.
func (d *Deck) Draw() domain.Card {
	if len(d.available) < MinimumCardsForReading {
		d.Reset()
	}

	// Draw from the end of the slice for O(1) removal.
	card := d.available[len(d.available)-1]
	d.available = d.available[:len(d.available)-1]
	return card
}

// DrawMany removes and returns count cards in the order they were
// drawn. A count of zero returns an empty slice. Each individual draw
// may trigger an automatic reset, so count may exceed the number of
// cards currently available.
func (d *Deck) DrawMany(count int) ([]domain.Card, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDrawCount, count)
	}

	cards := make([]domain.Card, 0, count)
	for i := 0; i < count; i++ {
		cards = append(cards, d.Draw())
	}
	return cards, nil
}

// Shuffle randomizes the order of the currently available cards using
// the Fisher-Yates algorithm. Drawn cards are not returned to the
// deck; use Reset for that.
func (d *Deck) Shuffle() {
	for i := len(d.available) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.available[i], d.available[j] = d.available[j], d.available[i]
	}
}

// Reset restores the deck to its full complement of upright cards and
// shuffles it.
func (d *Deck) Reset() {
	d.available = domain.FullArcana()
	d.Shuffle()
}

// Peek returns the card the next Draw would produce without removing
// it. The second return value is false when the deck is empty.
func (d *Deck) Peek() (domain.Card, bool) {
	if len(d.available) == 0 {
		return domain.Card{}, false
	}
	return d.available[len(d.available)-1], true
}

// Size returns the number of cards currently available for drawing.
func (d *Deck) Size() int {
	return len(d.available)
}

// Capacity returns the total number of cards in a complete deck.
func (d *Deck) Capacity() int {
	return domain.ArcanaCount
}

// DrawnCount returns the number of cards drawn since the last reset.
func (d *Deck) DrawnCount() int {
	return d.Capacity() - d.Size()
}

// IsEmpty reports whether no cards remain available for drawing.
func (d *Deck) IsEmpty() bool {
	return len(d.available) == 0
}

// HasEnoughForReading reports whether the deck can serve a standard
// three-card spread without resetting.
func (d *Deck) HasEnoughForReading() bool {
	return len(d.available) >= MinimumCardsForReading
}

// AvailableCards returns a copy of the cards currently available, in
// draw order from bottom to top. Mutating the returned slice does not
// affect the deck.
func (d *Deck) AvailableCards() []domain.Card {
	cards := make([]domain.Card, len(d.available))
	copy(cards, d.available)
	return cards
}

// Status returns a human-readable summary of the deck's state.
func (d *Deck) Status() string {
	return fmt.Sprintf("Deck Status: %d/%d cards available (%d drawn)",
		d.Size(), d.Capacity(), d.DrawnCount())
}

// String implements the Stringer interface for logging and debugging.
func (d *Deck) String() string {
	return fmt.Sprintf("Deck[%d/%d cards available]", d.Size(), d.Capacity())
}
