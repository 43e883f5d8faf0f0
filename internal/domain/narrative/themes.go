package narrative

import (
	"github.com/phrazzld/arcana-api/internal/domain"
)

// Theme is a recurring symbolic thread that a Major Arcana card can belong
// to. Every card belongs to at most one theme; a few deliberately belong to
// none. Declaration order doubles as the fixed precedence used to break
// ties when selecting a spread's dominant theme.
type Theme int

const (
	ThemeBeginnings Theme = iota
	ThemeAuthority
	ThemeIntrospection
	ThemeTransformation
	ThemeFulfillment
	ThemeChallenge
	ThemeSpiritual
)

// numThemes is the number of defined themes.
const numThemes = int(ThemeSpiritual) + 1

// String returns the theme's lowercase label.
func (t Theme) String() string {
	switch t {
	case ThemeBeginnings:
		return "beginnings"
	case ThemeAuthority:
		return "authority"
	case ThemeIntrospection:
		return "introspection"
	case ThemeTransformation:
		return "transformation"
	case ThemeFulfillment:
		return "fulfillment"
	case ThemeChallenge:
		return "challenge"
	case ThemeSpiritual:
		return "spiritual"
	default:
		return "unknown"
	}
}

// cardThemes assigns each themed arcana number its single theme. Numbers
// absent from the map (The Chariot and The Hanged Man) carry no theme and
// contribute nothing to theme analysis.
var cardThemes = map[int]Theme{
	0:  ThemeBeginnings,     // The Fool
	1:  ThemeBeginnings,     // The Magician
	2:  ThemeIntrospection,  // The High Priestess
	3:  ThemeFulfillment,    // The Empress
	4:  ThemeAuthority,      // The Emperor
	5:  ThemeSpiritual,      // The Hierophant
	6:  ThemeFulfillment,    // The Lovers
	8:  ThemeChallenge,      // Strength
	9:  ThemeIntrospection,  // The Hermit
	10: ThemeTransformation, // Wheel of Fortune
	11: ThemeAuthority,      // Justice
	13: ThemeTransformation, // Death
	14: ThemeSpiritual,      // Temperance
	15: ThemeChallenge,      // The Devil
	16: ThemeTransformation, // The Tower
	17: ThemeSpiritual,      // The Star
	18: ThemeIntrospection,  // The Moon
	19: ThemeFulfillment,    // The Sun
	20: ThemeTransformation, // Judgement
	21: ThemeFulfillment,    // The World
}

// ThemeOf returns the theme of the given arcana number, and whether the
// card carries one at all.
func ThemeOf(number int) (Theme, bool) {
	theme, ok := cardThemes[number]
	return theme, ok
}

// SharedTheme reports the theme two cards have in common, if any.
func SharedTheme(a, b domain.Card) (Theme, bool) {
	themeA, okA := ThemeOf(a.Number)
	themeB, okB := ThemeOf(b.Number)
	if okA && okB && themeA == themeB {
		return themeA, true
	}
	return 0, false
}

// DominantTheme returns the most frequent theme among the spread's cards.
// When two themes tie on count, the one declared first wins. Returns false
// only when no card in the spread carries a theme.
func DominantTheme(cards [domain.SpreadSize]domain.Card) (Theme, bool) {
	var counts [numThemes]int
	found := false
	for _, card := range cards {
		if theme, ok := ThemeOf(card.Number); ok {
			counts[theme]++
			found = true
		}
	}
	if !found {
		return 0, false
	}

	// Scanning upward with a strict comparison keeps the earliest theme on
	// ties.
	best := Theme(0)
	for t := 1; t < numThemes; t++ {
		if counts[t] > counts[best] {
			best = Theme(t)
		}
	}
	return best, true
}
