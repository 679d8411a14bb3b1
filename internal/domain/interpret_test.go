package domain_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/timmayboi7/PersonalTarotApp/internal/domain"
	"github.com/timmayboi7/PersonalTarotApp/internal/rng"
)

func threeCardSpread() domain.Spread {
	return domain.Spread{
		ID:   "three_card",
		Name: "Three Card",
		Positions: []domain.Position{
			{Label: "Past"}, {Label: "Present"}, {Label: "Future"},
		},
	}
}

func drawnFrom(cards ...domain.Card) []domain.DrawnCard {
	drawn := make([]domain.DrawnCard, len(cards))
	for i, c := range cards {
		drawn[i] = domain.DrawnCard{Card: c}
	}
	return drawn
}

func TestCompose_PositionLabels(t *testing.T) {
	drawn := drawnFrom(
		domain.Card{Name: "Ace of Wands", Arcana: domain.ArcanaMinor, Suit: domain.SuitWands, MeaningUpright: "Spark"},
		domain.Card{Name: "High Priestess", Arcana: domain.ArcanaMajor, MeaningUpright: "Intuition"},
		domain.Card{Name: "Ten of Cups", Arcana: domain.ArcanaMinor, Suit: domain.SuitCups, MeaningUpright: "Joy"},
	)

	summary := domain.Compose(threeCardSpread(), drawn)

	if len(summary.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(summary.Lines))
	}
	want := []string{"Past", "Present", "Future"}
	for i, line := range summary.Lines {
		if line.Position != want[i] {
			t.Errorf("line %d: expected label %q, got %q", i, want[i], line.Position)
		}
	}
}

func TestCompose_SynthesizedLabels(t *testing.T) {
	spread := domain.Spread{ID: "one", Positions: []domain.Position{{Label: "Focus"}}}
	drawn := drawnFrom(
		domain.Card{Name: "A", MeaningUpright: "a"},
		domain.Card{Name: "B", MeaningUpright: "b"},
		domain.Card{Name: "C", MeaningUpright: "c"},
	)

	summary := domain.Compose(spread, drawn)

	if summary.Lines[0].Position != "Focus" {
		t.Errorf("line 0: got %q", summary.Lines[0].Position)
	}
	if summary.Lines[1].Position != "Card 2" {
		t.Errorf("line 1: got %q", summary.Lines[1].Position)
	}
	if summary.Lines[2].Position != "Card 3" {
		t.Errorf("line 2: got %q", summary.Lines[2].Position)
	}
}

func TestCompose_ReversedMeaningSelection(t *testing.T) {
	drawn := []domain.DrawnCard{
		{Card: domain.Card{Name: "A", MeaningUpright: "up", MeaningReversed: "down"}, IsReversed: true},
		{Card: domain.Card{Name: "B", MeaningUpright: "up", MeaningReversed: "   "}, IsReversed: true},
		{Card: domain.Card{Name: "C", MeaningUpright: "up", MeaningReversed: "down"}, IsReversed: false},
	}

	summary := domain.Compose(domain.Spread{}, drawn)

	if summary.Lines[0].Meaning != "down" {
		t.Errorf("reversed card should use reversed meaning, got %q", summary.Lines[0].Meaning)
	}
	if summary.Lines[1].Meaning != "up" {
		t.Errorf("blank reversed meaning should fall back to upright, got %q", summary.Lines[1].Meaning)
	}
	if summary.Lines[2].Meaning != "up" {
		t.Errorf("upright card should use upright meaning, got %q", summary.Lines[2].Meaning)
	}
}

func TestCompose_MajorsTheme(t *testing.T) {
	const clause = "Major turning points are at play."

	majors := drawnFrom(
		domain.Card{Name: "A", Arcana: domain.ArcanaMajor},
		domain.Card{Name: "B", Arcana: domain.ArcanaMajor},
		domain.Card{Name: "C", Arcana: domain.ArcanaMajor},
	)
	if got := domain.Compose(domain.Spread{}, majors).Theme; !strings.Contains(got, clause) {
		t.Errorf("three majors: theme %q missing turning-points clause", got)
	}

	two := majors[:2]
	if got := domain.Compose(domain.Spread{}, two).Theme; strings.Contains(got, clause) {
		t.Errorf("two majors: theme %q should not contain turning-points clause", got)
	}
}

func TestCompose_DominantSuitTheme(t *testing.T) {
	drawn := drawnFrom(
		domain.Card{Name: "A", Arcana: domain.ArcanaMinor, Suit: domain.SuitCups},
		domain.Card{Name: "B", Arcana: domain.ArcanaMinor, Suit: domain.SuitCups},
		domain.Card{Name: "C", Arcana: domain.ArcanaMinor, Suit: domain.SuitWands},
	)

	theme := domain.Compose(domain.Spread{}, drawn).Theme
	if !strings.Contains(theme, "Energy leans toward CUPS.") {
		t.Errorf("theme %q missing dominant-suit clause", theme)
	}
}

func TestCompose_SuitTieBreaksOnFirstAppearance(t *testing.T) {
	drawn := drawnFrom(
		domain.Card{Name: "A", Arcana: domain.ArcanaMinor, Suit: domain.SuitSwords},
		domain.Card{Name: "B", Arcana: domain.ArcanaMinor, Suit: domain.SuitCups},
		domain.Card{Name: "C", Arcana: domain.ArcanaMinor, Suit: domain.SuitCups},
		domain.Card{Name: "D", Arcana: domain.ArcanaMinor, Suit: domain.SuitSwords},
	)

	theme := domain.Compose(domain.Spread{}, drawn).Theme
	if !strings.Contains(theme, "SWORDS") {
		t.Errorf("tie should go to the first suit drawn, got theme %q", theme)
	}
}

func TestCompose_EmptyInput(t *testing.T) {
	summary := domain.Compose(threeCardSpread(), nil)
	if summary.Theme != "" {
		t.Errorf("expected empty theme, got %q", summary.Theme)
	}
	if len(summary.Lines) != 0 {
		t.Errorf("expected no lines, got %d", len(summary.Lines))
	}
}

func TestCompose_Pure(t *testing.T) {
	drawn := drawnFrom(
		domain.Card{Name: "A", Arcana: domain.ArcanaMajor, MeaningUpright: "a"},
		domain.Card{Name: "B", Arcana: domain.ArcanaMinor, Suit: domain.SuitWands, MeaningUpright: "b"},
	)
	spread := threeCardSpread()

	first := domain.Compose(spread, drawn)
	second := domain.Compose(spread, drawn)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different summaries")
	}
}

// End-to-end over the fixed scenario: three known cards, three positions.
func TestDrawAndCompose_ThreeCardScenario(t *testing.T) {
	catalog := []domain.Card{
		{ID: "1", Name: "Ace of Wands", Arcana: domain.ArcanaMinor, Suit: domain.SuitWands, MeaningUpright: "Spark"},
		{ID: "2", Name: "High Priestess", Arcana: domain.ArcanaMajor, MeaningUpright: "Intuition"},
		{ID: "3", Name: "Ten of Cups", Arcana: domain.ArcanaMinor, Suit: domain.SuitCups, MeaningUpright: "Joy"},
	}

	shuffle, orientation := rng.Streams(2024)
	drawn, err := domain.Draw(catalog, 3, shuffle, orientation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]bool)
	for _, c := range drawn {
		seen[c.ID] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 distinct cards, got %d", len(seen))
	}

	summary := domain.Compose(threeCardSpread(), drawn)
	want := []string{"Past", "Present", "Future"}
	if len(summary.Lines) != 3 {
		t.Fatalf("expected 3 summary lines, got %d", len(summary.Lines))
	}
	for i, line := range summary.Lines {
		if line.Position != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], line.Position)
		}
	}
}
