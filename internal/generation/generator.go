package generation

import (
	"github.com/phrazzld/arcana-api/internal/domain"
)

// Generator defines the interface for producing interpretations from drawn
// cards. This interface serves as a boundary between the session flow and
// the interpretation source, so alternative generators can be swapped in
// without touching the orchestration code.
type Generator interface {
	// Generate builds a complete interpretation for a three-card spread.
	// Cards are taken in spread order: past, present, future. Orientation
	// is read from each card, so a reversed card receives its reversed
	// meanings.
	//
	// Parameters:
	//   - cards: The drawn cards, exactly one per spread position
	//
	// Returns:
	//   - A domain.Interpretation with one meaning per position and an
	//     overall narrative
	//   - An error if the spread is malformed or a card has no catalog
	//     entry (see errors.go for specific types)
	Generate(cards []domain.Card) (domain.Interpretation, error)
}
