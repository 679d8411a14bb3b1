package domain

import (
	"fmt"
	"strings"
)

// Compose derives a reading summary from a spread and its drawn cards.
// It is pure: the same input always yields the same summary. The card list
// may be shorter or longer than the spread's positions; cards beyond the
// last position get a synthesized "Card N" label.
func Compose(spread Spread, drawn []DrawnCard) ReadingSummary {
	var theme strings.Builder
	if countMajors(drawn) >= 3 {
		theme.WriteString("Major turning points are at play. ")
	}
	if suit, ok := dominantSuit(drawn); ok {
		fmt.Fprintf(&theme, "Energy leans toward %s. ", suit)
	}

	lines := make([]SummaryLine, len(drawn))
	for i, c := range drawn {
		label := fmt.Sprintf("Card %d", i+1)
		if i < len(spread.Positions) {
			label = spread.Positions[i].Label
		}
		meaning := c.MeaningUpright
		if c.IsReversed && strings.TrimSpace(c.MeaningReversed) != "" {
			meaning = c.MeaningReversed
		}
		lines[i] = SummaryLine{
			Position:   label,
			Name:       c.Name,
			IsReversed: c.IsReversed,
			Meaning:    meaning,
		}
	}

	return ReadingSummary{
		Theme: strings.TrimSpace(theme.String()),
		Lines: lines,
	}
}

func countMajors(drawn []DrawnCard) int {
	n := 0
	for _, c := range drawn {
		if c.Arcana == ArcanaMajor {
			n++
		}
	}
	return n
}

// dominantSuit returns the most frequent suit among suited cards. Ties go
// to the suit that appeared first in the drawn sequence, which keeps the
// result stable for a given draw.
func dominantSuit(drawn []DrawnCard) (Suit, bool) {
	counts := make(map[Suit]int)
	var order []Suit
	for _, c := range drawn {
		if c.Suit == "" {
			continue
		}
		if counts[c.Suit] == 0 {
			order = append(order, c.Suit)
		}
		counts[c.Suit]++
	}
	var best Suit
	bestN := 0
	for _, s := range order {
		if counts[s] > bestN {
			best, bestN = s, counts[s]
		}
	}
	return best, bestN > 0
}
