package narrative

import (
	"github.com/phrazzld/arcana-api/internal/domain"
)

// Intensity grades how forcefully a spread speaks, from a quiet reading to
// one dominated by upheaval.
type Intensity int

const (
	IntensityGentle Intensity = iota
	IntensityModerate
	IntensityIntense
	IntensityTransformative
)

// String returns the intensity's lowercase label.
func (i Intensity) String() string {
	switch i {
	case IntensityGentle:
		return "gentle"
	case IntensityModerate:
		return "moderate"
	case IntensityIntense:
		return "intense"
	case IntensityTransformative:
		return "transformative"
	default:
		return "unknown"
	}
}

// highImpactCards are the arcana whose presence raises a spread's intensity
// regardless of orientation: Wheel of Fortune, Death, The Devil, The Tower,
// and Judgement.
var highImpactCards = map[int]struct{}{
	10: {},
	13: {},
	15: {},
	16: {},
	20: {},
}

// Per-card score contributions and the tier thresholds the summed score is
// measured against.
const (
	highImpactUprightWeight  = 2
	highImpactReversedWeight = 1
	reversalWeight           = 1

	transformativeThreshold = 5
	intenseThreshold        = 3
	moderateThreshold       = 1
)

// IntensityScore sums each card's contribution to the spread's intensity.
//
// A high-impact card contributes highImpactUprightWeight when upright and
// highImpactReversedWeight when reversed; independently, every reversed
// card in the spread adds reversalWeight. A high-impact card therefore
// contributes 2 in either orientation, while reversal alone contributes 1.
// The score is a pure function of card identities and orientations, which
// keeps repeated analysis of the same spread byte-identical downstream.
func IntensityScore(cards [domain.SpreadSize]domain.Card) int {
	score := 0
	for _, card := range cards {
		if _, ok := highImpactCards[card.Number]; ok {
			if card.Reversed {
				score += highImpactReversedWeight
			} else {
				score += highImpactUprightWeight
			}
		}
		if card.Reversed {
			score += reversalWeight
		}
	}
	return score
}

// SpreadIntensity maps a spread's intensity score onto its tier.
//
// Thresholds: a score of at least 5 is Transformative, at least 3 is
// Intense, at least 1 is Moderate, and 0 is Gentle.
func SpreadIntensity(cards [domain.SpreadSize]domain.Card) Intensity {
	score := IntensityScore(cards)
	switch {
	case score >= transformativeThreshold:
		return IntensityTransformative
	case score >= intenseThreshold:
		return IntensityIntense
	case score >= moderateThreshold:
		return IntensityModerate
	default:
		return IntensityGentle
	}
}
