package narrative

import (
	"strings"

	"github.com/phrazzld/arcana-api/internal/domain"
)

// ComposeOverall builds the overall narrative for a completed three-card
// spread.
//
// The narrative weaves the three cards into a single arc rather than
// listing them: the past clause flows through an intensity-scaled
// connector into the present clause, the present links back to the past
// when the two cards share a theme, the future clause sets the outlook,
// and the text closes with the spread's dominant-theme conclusion and an
// intensity-matched final line.
//
// Parameters:
//   - cards: The spread in position order (past, present, future), with
//     orientations already applied
//
// Returns:
//   - The overall narrative text, always naming all three cards by their
//     display names
//
// Algorithm behavior:
//   - Clause, connector, and conclusion text come from fixed lookup
//     tables, so the function is a pure function of card identities and
//     orientations: composing the same spread twice yields byte-identical
//     text
//   - The shared-theme continuation sentence appears only when the past
//     and present cards carry the same theme
//   - When no card in the spread carries a theme, a neutral conclusion
//     replaces the dominant-theme one
func ComposeOverall(cards [domain.SpreadSize]domain.Card) string {
	past, present, future := cards[0], cards[1], cards[2]
	intensity := SpreadIntensity(cards)

	var sb strings.Builder
	sb.WriteString("OVERALL READING:\n\n")

	sb.WriteString("In the position of the past, ")
	sb.WriteString(past.DisplayName())
	sb.WriteString(" ")
	sb.WriteString(pastClause(past))
	sb.WriteString(". ")
	sb.WriteString(intensityConnectors[intensity])

	sb.WriteString(" In the present, ")
	sb.WriteString(present.DisplayName())
	sb.WriteString(" ")
	sb.WriteString(presentClause(present))
	sb.WriteString(".")
	if theme, ok := SharedTheme(past, present); ok {
		sb.WriteString(" ")
		sb.WriteString(themeContinuations[theme])
	}

	sb.WriteString(" Looking ahead, ")
	sb.WriteString(future.DisplayName())
	sb.WriteString(" ")
	sb.WriteString(futureClause(future))
	sb.WriteString(". ")

	if theme, ok := DominantTheme(cards); ok {
		sb.WriteString(themeConclusions[theme])
	} else {
		sb.WriteString(neutralConclusion)
	}
	sb.WriteString(" ")
	sb.WriteString(closingModifiers[intensity])

	return sb.String()
}
