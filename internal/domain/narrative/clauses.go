package narrative

import (
	"github.com/phrazzld/arcana-api/internal/domain"
)

// orientedClause pairs the upright and reversed phrasings of one card's
// contribution to a position. Clauses are predicates: they follow the
// card's display name in a sentence, so they carry no card name of their
// own.
type orientedClause struct {
	upright  string
	reversed string
}

func (c orientedClause) pick(reversed bool) string {
	if reversed {
		return c.reversed
	}
	return c.upright
}

// pastClauses describe what each card contributed when it sits in the past
// position. Keyed by arcana number; both orientations are covered for all
// 22 cards.
var pastClauses = map[int]orientedClause{
	0: {
		upright:  "opened this story with a carefree leap into the unknown",
		reversed: "left early recklessness still echoing through this story",
	},
	1: {
		upright:  "supplied the skill and will that built this moment",
		reversed: "marked a time when real talent was scattered or misused",
	},
	2: {
		upright:  "planted a quiet knowing that words never captured",
		reversed: "hid truths that were never brought into the light",
	},
	3: {
		upright:  "nurtured the ground this situation grew from",
		reversed: "recalls care that smothered more than it fed",
	},
	4: {
		upright:  "laid down the structure everything since was built on",
		reversed: "ruled that chapter with too heavy a hand",
	},
	5: {
		upright:  "rooted this path in tradition and received wisdom",
		reversed: "marked a break from doctrines that no longer fit",
	},
	6: {
		upright:  "joined hearts and values at a meaningful crossroads",
		reversed: "recalls a choice made against your own values",
	},
	7: {
		upright:  "drove this story forward through sheer determination",
		reversed: "scattered effort in too many directions at once",
	},
	8: {
		upright:  "met an earlier trial with patience instead of force",
		reversed: "remembers confidence that faltered under pressure",
	},
	9: {
		upright:  "withdrew to find a truth that solitude alone could give",
		reversed: "let a season of retreat harden into isolation",
	},
	10: {
		upright:  "spun the turning point that set this cycle going",
		reversed: "marked a turn of luck that slipped beyond control",
	},
	11: {
		upright:  "balanced the scales through consequences already paid",
		reversed: "left an unfairness that still tilts the scales",
	},
	12: {
		upright:  "paused everything to see the world from another angle",
		reversed: "stalled in a delay that taught nothing",
	},
	13: {
		upright:  "closed a chapter completely so this one could open",
		reversed: "marks an ending that was resisted too long",
	},
	14: {
		upright:  "blended opposing forces into a workable peace",
		reversed: "recalls excess that pulled this story off balance",
	},
	15: {
		upright:  "forged a chain that was worn willingly",
		reversed: "loosened a grip that once held this story fast",
	},
	16: {
		upright:  "brought down a structure that could not stand",
		reversed: "shook the foundations without quite toppling them",
	},
	17: {
		upright:  "kept a small light burning through a dark passage",
		reversed: "dimmed hope at the moment it was most needed",
	},
	18: {
		upright:  "wrapped those days in illusions that passed for truth",
		reversed: "began lifting a fog that once distorted everything",
	},
	19: {
		upright:  "warmed this story with uncomplicated joy",
		reversed: "shadowed bright days with a lingering doubt",
	},
	20: {
		upright:  "sounded a call that could not be unheard",
		reversed: "muffled an inner calling that went unanswered",
	},
	21: {
		upright:  "completed a full circle and banked its lessons",
		reversed: "left a circle almost closed but not quite",
	},
}

// presentClauses describe what each card is doing in the present position.
var presentClauses = map[int]orientedClause{
	0: {
		upright:  "invites a fresh start taken in good faith",
		reversed: "warns that a careless step now could cost more than it seems",
	},
	1: {
		upright:  "places every needed tool within reach",
		reversed: "suggests the means at hand are not being used honestly",
	},
	2: {
		upright:  "counsels listening to the voice beneath the noise",
		reversed: "signals a connection to instinct that has gone quiet",
	},
	3: {
		upright:  "surrounds this moment with growth and plenty",
		reversed: "points to creative ground lying fallow",
	},
	4: {
		upright:  "calls for order, boundaries, and steady leadership",
		reversed: "warns that control is tightening into rigidity",
	},
	5: {
		upright:  "counsels learning from established ways",
		reversed: "urges questioning conventions before obeying them",
	},
	6: {
		upright:  "asks for a choice aligned with what you love",
		reversed: "exposes a misalignment between desire and commitment",
	},
	7: {
		upright:  "rewards a firm grip on the reins",
		reversed: "shows momentum stalling for want of direction",
	},
	8: {
		upright:  "asks for the quiet courage that outlasts brute force",
		reversed: "reveals self-doubt gnawing at resolve",
	},
	9: {
		upright:  "counsels stepping back to hear your own counsel",
		reversed: "warns that withdrawal has begun to harden into loneliness",
	},
	10: {
		upright:  "turns the wheel of circumstance in your favor",
		reversed: "finds you gripping a wheel that will turn regardless",
	},
	11: {
		upright:  "demands honesty and accepts nothing less",
		reversed: "points to accountability being quietly dodged",
	},
	12: {
		upright:  "counsels surrender over struggle",
		reversed: "shows resistance prolonging what release would end",
	},
	13: {
		upright:  "clears away what has already finished",
		reversed: "finds you holding a door that wants to close",
	},
	14: {
		upright:  "counsels patience and a measured hand",
		reversed: "shows the mixture running to extremes",
	},
	15: {
		upright:  "exposes the attachment doing the binding",
		reversed: "shows the first links of an old chain falling away",
	},
	16: {
		upright:  "strikes at what was built on false ground",
		reversed: "holds disaster at bay while the cracks are repaired",
	},
	17: {
		upright:  "pours quiet healing over what was wounded",
		reversed: "asks you to look again for the light you stopped trusting",
	},
	18: {
		upright:  "blurs the line between fear and fact",
		reversed: "releases an old fear into plain sight",
	},
	19: {
		upright:  "lights the present with vitality and plain good fortune",
		reversed: "finds the light delayed but not denied",
	},
	20: {
		upright:  "summons an honest reckoning with what has been",
		reversed: "shows the inner critic drowning out the true call",
	},
	21: {
		upright:  "gathers every thread into a single whole",
		reversed: "points to the one step still missing from completion",
	},
}

// futureClauses describe what each card foretells from the future position.
var futureClauses = map[int]orientedClause{
	0: {
		upright:  "points toward an unburdened new beginning",
		reversed: "cautions against leaping before the ground is known",
	},
	1: {
		upright:  "promises that focused will can shape what comes next",
		reversed: "warns that untapped talents will stay dormant without discipline",
	},
	2: {
		upright:  "suggests the answer will surface from within",
		reversed: "warns that secrets kept too long will cloud the road",
	},
	3: {
		upright:  "promises a season of abundance and careful tending",
		reversed: "asks that growth not be forced before its time",
	},
	4: {
		upright:  "points to authority earned and exercised with care",
		reversed: "cautions that domination will invite quiet rebellion",
	},
	5: {
		upright:  "suggests guidance will arrive through a mentor or tradition",
		reversed: "points toward beliefs shaped on your own terms",
	},
	6: {
		upright:  "promises harmony built on an honest choice",
		reversed: "warns that unresolved discord will demand a decision",
	},
	7: {
		upright:  "points to victory through sustained will",
		reversed: "warns that aggression without aim will run the wheels off the road",
	},
	8: {
		upright:  "promises mastery won through gentleness",
		reversed: "cautions that unchecked doubt will surrender ground needlessly",
	},
	9: {
		upright:  "promises a lantern lit for the next stretch of road",
		reversed: "cautions against wandering farther from those who matter",
	},
	10: {
		upright:  "promises destiny turning visibly in your favor",
		reversed: "warns of changes arriving uninvited",
	},
	11: {
		upright:  "promises a fair accounting of every cause set in motion",
		reversed: "warns that bias left standing will warp the outcome",
	},
	12: {
		upright:  "promises insight through willing sacrifice",
		reversed: "warns that indecision will become its own decision",
	},
	13: {
		upright:  "promises transformation once the old form is released",
		reversed: "warns that refusing the ending only prolongs it",
	},
	14: {
		upright:  "promises equilibrium found by degrees",
		reversed: "warns that haste will spill what moderation could carry",
	},
	15: {
		upright:  "warns that unexamined appetites will tighten their hold",
		reversed: "promises freedom as limiting beliefs are released",
	},
	16: {
		upright:  "warns of sudden upheaval clearing false foundations",
		reversed: "suggests the coming change can still be met before it erupts",
	},
	17: {
		upright:  "promises renewal under a generous sky",
		reversed: "warns that despair, if fed, will hide the road home",
	},
	18: {
		upright:  "warns that the path ahead winds through uncertainty",
		reversed: "promises clarity as each illusion is named",
	},
	19: {
		upright:  "promises success that needs no qualification",
		reversed: "suggests joy will arrive once expectations soften",
	},
	20: {
		upright:  "promises rebirth on the far side of the reckoning",
		reversed: "warns that the call will keep returning until answered",
	},
	21: {
		upright:  "promises arrival, wholeness, and a journey fulfilled",
		reversed: "suggests completion waits on work not yet finished",
	},
}

// genericClauses keep composition total for card numbers missing from a
// table. Valid decks never reach them; they only matter for hand-built
// spreads with malformed cards.
var genericClauses = map[domain.Position]orientedClause{
	domain.PositionPast: {
		upright:  "shaped the road that led here",
		reversed: "left an unresolved mark on the road that led here",
	},
	domain.PositionPresent: {
		upright:  "colors the present moment",
		reversed: "unsettles the present moment",
	},
	domain.PositionFuture: {
		upright:  "waits further down the road",
		reversed: "waits, unresolved, further down the road",
	},
}

func pastClause(card domain.Card) string {
	if clause, ok := pastClauses[card.Number]; ok {
		return clause.pick(card.Reversed)
	}
	return genericClauses[domain.PositionPast].pick(card.Reversed)
}

func presentClause(card domain.Card) string {
	if clause, ok := presentClauses[card.Number]; ok {
		return clause.pick(card.Reversed)
	}
	return genericClauses[domain.PositionPresent].pick(card.Reversed)
}

func futureClause(card domain.Card) string {
	if clause, ok := futureClauses[card.Number]; ok {
		return clause.pick(card.Reversed)
	}
	return genericClauses[domain.PositionFuture].pick(card.Reversed)
}

// intensityConnectors bridge the past sentence into the present one,
// scaled to the spread's intensity.
var intensityConnectors = map[Intensity]string{
	IntensityGentle:         "The current carries forward softly.",
	IntensityModerate:       "The current gathers as it moves.",
	IntensityIntense:        "The momentum here is strong and will not be ignored.",
	IntensityTransformative: "Everything that follows bends around that force.",
}

// closingModifiers end the narrative with a register matched to the
// spread's intensity.
var closingModifiers = map[Intensity]string{
	IntensityGentle:         "Let the season unfold at its own unhurried pace.",
	IntensityModerate:       "Steady, deliberate choices will keep the path clear.",
	IntensityIntense:        "Walk carefully; the energies at play here are not idle.",
	IntensityTransformative: "Nothing touched by this spread will remain quite as it was.",
}

// themeContinuations tie the present card back to a past card that shares
// its theme.
var themeContinuations = map[Theme]string{
	ThemeBeginnings:     "The same young energy that started all this is still at work.",
	ThemeAuthority:      "The question of who holds the reins runs through both moments.",
	ThemeIntrospection:  "Both moments draw their answers from the same inner well.",
	ThemeTransformation: "One current of change runs beneath both cards.",
	ThemeFulfillment:    "What was tended then is still ripening now.",
	ThemeChallenge:      "The same trial shows its face in both positions.",
	ThemeSpiritual:      "A single thread of faith ties these moments together.",
}

// themeConclusions close the narrative under the spread's dominant theme.
var themeConclusions = map[Theme]string{
	ThemeBeginnings:     "Taken together, the cards speak of beginnings: trust the fresh start more than the fear of it.",
	ThemeAuthority:      "Taken together, the cards speak of authority: order serves you only while you can still question it.",
	ThemeIntrospection:  "Taken together, the cards speak of introspection: the decisive conversations here are the ones held within.",
	ThemeTransformation: "Taken together, the cards speak of transformation: endings here are doorways, not walls.",
	ThemeFulfillment:    "Taken together, the cards speak of fulfillment: what has been cultivated with care is ready to be received.",
	ThemeChallenge:      "Taken together, the cards speak of challenge: the obstacle is also the instruction.",
	ThemeSpiritual:      "Taken together, the cards speak of the spirit: meaning, not circumstance, is the real terrain of this spread.",
}

// neutralConclusion closes spreads whose cards carry no theme at all.
const neutralConclusion = "Taken together, the cards resist a single theme: let each position speak for itself."
