package ports

import (
	"context"

	"github.com/timmayboi7/PersonalTarotApp/internal/domain"
)

// CardSource provides the immutable card catalog.
type CardSource interface {
	Cards(ctx context.Context) ([]domain.Card, error)
}

// SpreadSource resolves spreads for a reading.
type SpreadSource interface {
	// SpreadByID returns the spread with the given id. When the id is
	// missing it falls back to the second catalog entry if one exists,
	// else the first; it errors only on an empty catalog.
	SpreadByID(ctx context.Context, id string) (domain.Spread, error)
}
