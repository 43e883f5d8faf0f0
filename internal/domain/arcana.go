package domain

// ArcanaCount is the number of cards in the Major Arcana.
const ArcanaCount = 22

// ArcanaEntry is one canonical Major Arcana definition: the card's fixed
// arcana number, its name, and its traditional upright and reversed
// meanings.
type ArcanaEntry struct {
	Number          int
	Name            string
	UprightMeaning  string
	ReversedMeaning string
}

// NewCard creates a fresh upright Card from the canonical entry.
func (e ArcanaEntry) NewCard() Card {
	return Card{
		Number:          e.Number,
		Name:            e.Name,
		UprightMeaning:  e.UprightMeaning,
		ReversedMeaning: e.ReversedMeaning,
	}
}

// majorArcana lists the Major Arcana in canonical order, from The Fool (0)
// through The World (21). The slice index of each entry equals its arcana
// number.
var majorArcana = [ArcanaCount]ArcanaEntry{
	{0, "The Fool",
		"New beginnings, innocence, spontaneity, free spirit, originality",
		"Recklessness, foolishness, risk-taking, inconsideration"},
	{1, "The Magician",
		"Manifestation, resourcefulness, power, inspired action, creativity",
		"Manipulation, poor planning, untapped talents, deception"},
	{2, "The High Priestess",
		"Intuition, sacred knowledge, divine feminine, the subconscious mind",
		"Secrets, disconnected from intuition, withdrawal, silence"},
	{3, "The Empress",
		"Femininity, beauty, nature, nurturing, abundance, creativity",
		"Creative block, dependence on others, smothering, lack of growth"},
	{4, "The Emperor",
		"Authority, establishment, structure, father figure, leadership",
		"Tyranny, rigidity, coldness, domination, excessive control"},
	{5, "The Hierophant",
		"Spiritual wisdom, religious beliefs, conformity, tradition, institutions",
		"Personal beliefs, freedom, challenging the status quo, rebellion"},
	{6, "The Lovers",
		"Love, harmony, relationships, values alignment, choices",
		"Disharmony, imbalance, misalignment of values, trust issues"},
	{7, "The Chariot",
		"Control, willpower, success, determination, direction",
		"Lack of control, lack of direction, aggression, scattered energy"},
	{8, "Strength",
		"Strength, courage, persuasion, influence, compassion",
		"Self-doubt, lack of confidence, abuse of power, weakness"},
	{9, "The Hermit",
		"Soul searching, introspection, inner guidance, solitude",
		"Isolation, loneliness, withdrawal, lost your way, paranoia"},
	{10, "Wheel of Fortune",
		"Good luck, karma, life cycles, destiny, turning point",
		"Bad luck, lack of control, clinging to control, unwelcome changes"},
	{11, "Justice",
		"Justice, fairness, truth, cause and effect, law",
		"Unfairness, lack of accountability, dishonesty, bias"},
	{12, "The Hanged Man",
		"Suspension, restriction, letting go, sacrifice, martyrdom",
		"Delays, resistance, stalling, indecision, apathy"},
	{13, "Death",
		"Endings, transformation, transition, letting go, rebirth",
		"Resistance to change, personal transformation, inner purging"},
	{14, "Temperance",
		"Balance, moderation, patience, purpose, meaning",
		"Imbalance, excess, self-healing, re-alignment, rushed"},
	{15, "The Devil",
		"Shadow self, attachment, addiction, restriction, sexuality",
		"Releasing limiting beliefs, exploring dark thoughts, detachment"},
	{16, "The Tower",
		"Sudden change, upheaval, chaos, revelation, awakening",
		"Personal transformation, fear of change, averting disaster"},
	{17, "The Star",
		"Hope, faith, purpose, renewal, spirituality, healing",
		"Lack of faith, despair, self-trust, disconnection from spirit"},
	{18, "The Moon",
		"Illusion, fear, anxiety, subconscious, intuition",
		"Release of fear, repressed emotion, inner confusion, unveiling"},
	{19, "The Sun",
		"Positivity, fun, warmth, success, vitality, enlightenment",
		"Inner child, feeling down, overly optimistic, delayed success"},
	{20, "Judgement",
		"Judgement, rebirth, inner calling, absolution, awakening",
		"Self-doubt, inner critic, ignoring the call, harsh judgement"},
	{21, "The World",
		"Completion, integration, accomplishment, travel, fulfillment",
		"Seeking external validation, incomplete, lack of achievement"},
}

// Arcana returns the canonical Major Arcana definitions in numeric order.
// The returned slice is a copy; callers may modify it freely.
func Arcana() []ArcanaEntry {
	entries := make([]ArcanaEntry, ArcanaCount)
	copy(entries, majorArcana[:])
	return entries
}

// ArcanaByNumber returns the canonical definition for the given arcana
// number. Returns ErrCardNumberOutOfRange if the number is not between 0
// and 21.
func ArcanaByNumber(number int) (ArcanaEntry, error) {
	if number < 0 || number >= ArcanaCount {
		return ArcanaEntry{}, ErrCardNumberOutOfRange
	}
	return majorArcana[number], nil
}

// FullArcana returns a fresh upright card for every Major Arcana in
// canonical order. Each call allocates new cards, so callers may reshuffle
// or flip them without affecting anyone else.
func FullArcana() []Card {
	cards := make([]Card, ArcanaCount)
	for i, entry := range majorArcana {
		cards[i] = entry.NewCard()
	}
	return cards
}
