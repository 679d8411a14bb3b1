package domain

// Draw selects count distinct cards from the catalog and assigns each an
// orientation. The shuffle stream alone decides which cards come out and in
// what order; the orientation stream alone decides the reversed flags. The
// two streams are deliberately separate so changing one policy never
// perturbs the other.
//
// count == 0 is a valid empty draw. A negative count, or a count larger
// than the catalog, is a contract violation.
func Draw(cards []Card, count int, shuffle, orientation RNG) ([]DrawnCard, error) {
	if count < 0 || count > len(cards) {
		return nil, ErrInvalidDrawRequest
	}
	if count == 0 {
		return []DrawnCard{}, nil
	}

	// Fisher-Yates over an index slice so the catalog itself stays untouched.
	indices := make([]int, len(cards))
	for i := range indices {
		indices[i] = i
	}
	for i := len(indices) - 1; i > 0; i-- {
		j := shuffle.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	drawn := make([]DrawnCard, count)
	for i := range count {
		drawn[i] = DrawnCard{
			Card:       cards[indices[i]],
			IsReversed: orientation.Intn(2) == 1,
		}
	}
	return drawn, nil
}

// PickCard draws a single uniformly-indexed card with no shuffle and no
// orientation. The daily-card feature uses this with the day's seed.
func PickCard(cards []Card, r RNG) (Card, error) {
	if len(cards) == 0 {
		return Card{}, ErrEmptyCatalog
	}
	return cards[r.Intn(len(cards))], nil
}
