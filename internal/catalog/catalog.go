package catalog

import (
	"fmt"

	"github.com/phrazzld/arcana-api/internal/domain"
)

// OrientationMeaning holds the interpretation data for one orientation of a
// card: its keywords, the general meaning, and the three position-aware
// context meanings.
type OrientationMeaning struct {
	Keywords       []string `json:"keywords" yaml:"keywords" validate:"required,min=1,dive,required"`
	General        string   `json:"general" yaml:"general" validate:"required"`
	PastContext    string   `json:"pastContext" yaml:"pastContext" validate:"required"`
	PresentContext string   `json:"presentContext" yaml:"presentContext" validate:"required"`
	FutureContext  string   `json:"futureContext" yaml:"futureContext" validate:"required"`
}

// MeaningFor returns the meaning text for the given position.
func (m OrientationMeaning) MeaningFor(position domain.Position) (string, error) {
	switch position {
	case domain.PositionPast:
		return m.PastContext, nil
	case domain.PositionPresent:
		return m.PresentContext, nil
	case domain.PositionFuture:
		return m.FutureContext, nil
	case domain.PositionGeneral:
		return m.General, nil
	default:
		return "", domain.ErrInvalidPosition
	}
}

// Entry is the full meaning record for one Major Arcana card, covering
// both orientations.
type Entry struct {
	ID       int                `json:"id" yaml:"id" validate:"gte=0,lte=21"`
	Name     string             `json:"name" yaml:"name" validate:"required"`
	Upright  OrientationMeaning `json:"upright" yaml:"upright" validate:"required"`
	Reversed OrientationMeaning `json:"reversed" yaml:"reversed" validate:"required"`
}

// Orientation returns the meaning block matching the orientation flag.
func (e Entry) Orientation(reversed bool) OrientationMeaning {
	if reversed {
		return e.Reversed
	}
	return e.Upright
}

// Catalog serves card meanings by arcana number. A Catalog is immutable
// after construction and safe for concurrent readers.
type Catalog struct {
	entries map[int]Entry
	source  string
}

// Entry returns the full meaning record for the given arcana number.
// Returns ErrCardNotFound if the catalog holds no entry for it.
func (c *Catalog) Entry(number int) (Entry, error) {
	entry, ok := c.entries[number]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %d", ErrCardNotFound, number)
	}
	return entry, nil
}

// MeaningFor returns the meaning text for one card, orientation, and
// position.
func (c *Catalog) MeaningFor(number int, reversed bool, position domain.Position) (string, error) {
	entry, err := c.Entry(number)
	if err != nil {
		return "", err
	}
	return entry.Orientation(reversed).MeaningFor(position)
}

// KeywordsFor returns a copy of the keywords for one card and orientation.
func (c *Catalog) KeywordsFor(number int, reversed bool) ([]string, error) {
	entry, err := c.Entry(number)
	if err != nil {
		return nil, err
	}
	keywords := entry.Orientation(reversed).Keywords
	out := make([]string, len(keywords))
	copy(out, keywords)
	return out, nil
}

// NameFor returns the card name recorded for the given arcana number.
func (c *Catalog) NameFor(number int) (string, error) {
	entry, err := c.Entry(number)
	if err != nil {
		return "", err
	}
	return entry.Name, nil
}

// CardFor builds a fresh upright Card whose meanings are the general
// meanings recorded for the given arcana number.
func (c *Catalog) CardFor(number int) (domain.Card, error) {
	entry, err := c.Entry(number)
	if err != nil {
		return domain.Card{}, err
	}
	return domain.NewCard(entry.ID, entry.Name, entry.Upright.General, entry.Reversed.General)
}

// Cards builds fresh upright cards for every catalog entry in arcana
// order.
func (c *Catalog) Cards() ([]domain.Card, error) {
	cards := make([]domain.Card, 0, len(c.entries))
	for number := 0; number < domain.ArcanaCount; number++ {
		card, err := c.CardFor(number)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Size returns the number of loaded meaning entries.
func (c *Catalog) Size() int {
	return len(c.entries)
}

// Ready reports whether the catalog holds a complete set of meanings for
// all 22 Major Arcana.
func (c *Catalog) Ready() bool {
	return len(c.entries) == domain.ArcanaCount
}

// Source describes where the catalog's meanings were loaded from: the
// string "embedded" or an external file path.
func (c *Catalog) Source() string {
	return c.source
}

// Status returns a one-line summary of the catalog for logs and status
// reports.
func (c *Catalog) Status() string {
	return fmt.Sprintf("InterpretationService: %d cards loaded, Ready: %t", c.Size(), c.Ready())
}
