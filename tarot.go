// Package tarot wires the reading core together for a presentation layer
// to consume: catalogs are loaded once, readings draw with a fresh secure
// seed, and the card of the day is pinned to the local calendar date.
package tarot

import (
	"context"
	"log/slog"
	"os"

	"github.com/timmayboi7/PersonalTarotApp/internal/adapters/catalog"
	"github.com/timmayboi7/PersonalTarotApp/internal/app"
	"github.com/timmayboi7/PersonalTarotApp/internal/config"
	"github.com/timmayboi7/PersonalTarotApp/internal/domain"
	"github.com/timmayboi7/PersonalTarotApp/internal/ports"
	"github.com/timmayboi7/PersonalTarotApp/internal/rng"
)

// App is the assembled reading core. Reading and Daily publish the
// observable state the UI renders; the catalogs behind them are loaded
// once and never mutated.
type App struct {
	Log     *slog.Logger
	Reading *app.ReadingSession
	Daily   *app.DailyCardService

	store *catalog.Store
}

// New builds the app graph from environment configuration and verifies the
// catalogs load.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	var store *catalog.Store
	if cfg.CardsPath != "" || cfg.SpreadsPath != "" {
		store = catalog.NewFileStore(cfg.CardsPath, cfg.SpreadsPath)
	} else {
		store = catalog.NewEmbeddedStore()
	}
	if _, err := store.Cards(ctx); err != nil {
		return nil, err
	}
	if _, err := store.Spreads(ctx); err != nil {
		return nil, err
	}

	return &App{
		Log:     logger,
		Reading: app.NewReadingSession(store, store, ports.SeedFunc(rng.SecureSeed), logger),
		Daily:   app.NewDailyCardService(store, cfg.Zone, logger),
		store:   store,
	}, nil
}

// Spreads lists the spread catalog for the picker screen.
func (a *App) Spreads(ctx context.Context) ([]domain.Spread, error) {
	return a.store.Spreads(ctx)
}

// Cards lists the card catalog.
func (a *App) Cards(ctx context.Context) ([]domain.Card, error) {
	return a.store.Cards(ctx)
}
