package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Arcana is the card category.
type Arcana string

const (
	ArcanaMajor Arcana = "MAJOR"
	ArcanaMinor Arcana = "MINOR"
)

// Suit of a minor-arcana card. Empty for major arcana by convention;
// the catalog format does not enforce that.
type Suit string

const (
	SuitWands     Suit = "WANDS"
	SuitCups      Suit = "CUPS"
	SuitSwords    Suit = "SWORDS"
	SuitPentacles Suit = "PENTACLES"
)

// Card is a single tarot card as loaded from the card catalog.
// Cards are immutable after load; identity is by ID.
type Card struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Arcana           Arcana   `json:"arcana"`
	Suit             Suit     `json:"suit,omitempty"`
	Number           int      `json:"number,omitempty"`
	KeywordsUpright  []string `json:"keywordsUpright,omitempty"`
	KeywordsReversed []string `json:"keywordsReversed,omitempty"`
	MeaningUpright   string   `json:"meaningUpright,omitempty"`
	MeaningReversed  string   `json:"meaningReversed,omitempty"`
	// ImageAsset is an opaque reference resolved by the presentation layer.
	ImageAsset string `json:"imageAsset,omitempty"`
	// DailyDescription is shown by the daily-card feature; when blank the
	// upright meaning is used instead.
	DailyDescription string `json:"dailyDescription,omitempty"`
}

// Position is one labeled slot in a spread.
type Position struct {
	Label string `json:"label"`
	Notes string `json:"notes,omitempty"`
}

// Spread is a named arrangement of positions. The position count decides
// how many cards a reading of this spread draws.
type Spread struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Positions []Position `json:"positions"`
}

// DrawnCard is a card drawn into a reading. Its index in the drawn
// sequence maps one-to-one onto the spread's position sequence.
type DrawnCard struct {
	Card
	IsReversed bool `json:"isReversed"`
}

// SummaryLine is the interpretation of one drawn card.
type SummaryLine struct {
	Position   string `json:"position"`
	Name       string `json:"name"`
	IsReversed bool   `json:"isReversed"`
	Meaning    string `json:"meaning"`
}

// ReadingSummary is the composed interpretation of a full reading.
type ReadingSummary struct {
	Theme string        `json:"theme"`
	Lines []SummaryLine `json:"lines"`
}
