package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/timmayboi7/PersonalTarotApp/internal/domain"
)

//go:embed data/*.json
var catalogFS embed.FS

const (
	embeddedCards   = "data/cards.json"
	embeddedSpreads = "data/spreads.json"
)

// Store loads the card and spread catalogs exactly once and serves them
// read-only afterwards, so concurrent readers never need a lock past init.
type Store struct {
	cardsPath   string
	spreadsPath string

	once    sync.Once
	cards   []domain.Card
	spreads []domain.Spread
	err     error
}

// NewEmbeddedStore serves the catalogs bundled with the binary.
func NewEmbeddedStore() *Store {
	return &Store{}
}

// NewFileStore serves catalogs from files on disk. Either path may be empty
// to keep the embedded data for that catalog.
func NewFileStore(cardsPath, spreadsPath string) *Store {
	return &Store{cardsPath: cardsPath, spreadsPath: spreadsPath}
}

func (s *Store) init() {
	s.cards, s.err = loadCatalog[domain.Card]("cards", embeddedCards, s.cardsPath)
	if s.err != nil {
		return
	}
	s.spreads, s.err = loadCatalog[domain.Spread]("spreads", embeddedSpreads, s.spreadsPath)
}

// loadCatalog reads one JSON array catalog. Unknown fields are ignored so
// older builds keep working against newer data files.
func loadCatalog[T any](name, embedded, override string) ([]T, error) {
	var raw []byte
	var err error
	if override != "" {
		raw, err = os.ReadFile(override)
	} else {
		raw, err = catalogFS.ReadFile(embedded)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s catalog: %v", domain.ErrCatalogLoad, name, err)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: parse %s catalog: %v", domain.ErrCatalogLoad, name, err)
	}
	return items, nil
}

// Cards returns the full card catalog.
func (s *Store) Cards(_ context.Context) ([]domain.Card, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	return s.cards, nil
}

// Spreads returns the full spread catalog.
func (s *Store) Spreads(_ context.Context) ([]domain.Spread, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	return s.spreads, nil
}

// SpreadByID returns the spread with the given id. A missing id falls back
// to the second catalog entry when one exists, else the first. Longstanding
// behavior; cataloged spread ids may rely on it, so do not "fix" it here.
func (s *Store) SpreadByID(ctx context.Context, id string) (domain.Spread, error) {
	spreads, err := s.Spreads(ctx)
	if err != nil {
		return domain.Spread{}, err
	}
	if len(spreads) == 0 {
		return domain.Spread{}, fmt.Errorf("%w: no spreads", domain.ErrEmptyCatalog)
	}
	for _, sp := range spreads {
		if sp.ID == id {
			return sp, nil
		}
	}
	if len(spreads) > 1 {
		return spreads[1], nil
	}
	return spreads[0], nil
}
