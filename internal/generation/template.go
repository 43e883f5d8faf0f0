package generation

import (
	"fmt"

	"github.com/phrazzld/arcana-api/internal/catalog"
	"github.com/phrazzld/arcana-api/internal/domain"
	"github.com/phrazzld/arcana-api/internal/domain/narrative"
)

// TemplateGenerator produces interpretations from the card meaning
// catalog. Positional meanings come straight from the catalog's
// authored templates; the overall narrative is composed from the
// spread's themes and intensity.
type TemplateGenerator struct {
	catalog *catalog.Catalog
}

// Ensure TemplateGenerator implements the Generator interface.
var _ Generator = (*TemplateGenerator)(nil)

// NewTemplateGenerator creates a generator backed by the given catalog.
func NewTemplateGenerator(cat *catalog.Catalog) *TemplateGenerator {
	if cat == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("catalog cannot be nil for TemplateGenerator")
	}

	return &TemplateGenerator{catalog: cat}
}

// Generate implements the Generator interface.
func (g *TemplateGenerator) Generate(cards []domain.Card) (domain.Interpretation, error) {
	if len(cards) != domain.SpreadSize {
		return domain.Interpretation{}, fmt.Errorf("%w: got %d", ErrInvalidCardCount, len(cards))
	}
	if !g.catalog.Ready() {
		return domain.Interpretation{}, ErrCatalogNotReady
	}

	var spread [domain.SpreadSize]domain.Card
	copy(spread[:], cards)

	var interp domain.Interpretation
	for i, position := range domain.SpreadPositions() {
		card := spread[i]

		meaning, err := g.catalog.MeaningFor(card.Number, card.Reversed, position)
		if err != nil {
			return domain.Interpretation{}, fmt.Errorf("meaning for %s position: %w", position, err)
		}

		interp.CardNames[i] = card.DisplayName()
		interp.Meanings[i] = meaning
	}

	interp.Overall = narrative.ComposeOverall(spread)
	return interp, nil
}
