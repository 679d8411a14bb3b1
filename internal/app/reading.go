package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/timmayboi7/PersonalTarotApp/internal/domain"
	"github.com/timmayboi7/PersonalTarotApp/internal/ports"
	"github.com/timmayboi7/PersonalTarotApp/internal/rng"
)

// ReadingState is the observable value the presentation layer renders.
// Loading is true until the first reading publishes. Revealed is a UI
// overlay over the drawn cards; it starts all-false on every new reading.
type ReadingState struct {
	Loading   bool
	RequestID string
	Spread    domain.Spread
	Cards     []domain.DrawnCard
	Summary   domain.ReadingSummary
	Revealed  []bool
}

// ReadingSession orchestrates one logical reading surface: resolve the
// spread, draw with a fresh seed, compose the summary, publish. Concurrent
// Start calls race safely; results are tagged with a request sequence so a
// slow draw can never overwrite a newer published one.
type ReadingSession struct {
	cards   ports.CardSource
	spreads ports.SpreadSource
	seeds   ports.SeedSource
	logger  *slog.Logger

	mu        sync.Mutex
	seq       uint64
	published uint64
	state     ReadingState
}

func NewReadingSession(cards ports.CardSource, spreads ports.SpreadSource, seeds ports.SeedSource, logger *slog.Logger) *ReadingSession {
	return &ReadingSession{
		cards:   cards,
		spreads: spreads,
		seeds:   seeds,
		logger:  logger,
		state:   ReadingState{Loading: true},
	}
}

// Start runs a reading for the given spread and publishes the result. It
// returns the state it computed, which is also the published state unless a
// newer request got there first. Re-requesting the spread that is already
// published keeps the existing reading (a second tap must not re-deal).
func (s *ReadingSession) Start(ctx context.Context, spreadID string) (ReadingState, error) {
	s.mu.Lock()
	if !s.state.Loading && s.state.Spread.ID == spreadID {
		st := s.snapshotLocked()
		s.mu.Unlock()
		return st, nil
	}
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	spread, err := s.spreads.SpreadByID(ctx, spreadID)
	if err != nil {
		return ReadingState{}, fmt.Errorf("resolve spread: %w", err)
	}
	catalog, err := s.cards.Cards(ctx)
	if err != nil {
		return ReadingState{}, fmt.Errorf("load cards: %w", err)
	}

	// Fresh seed per reading so a draw is never just the catalog order.
	shuffle, orientation := rng.Streams(s.seeds.Seed())
	drawn, err := domain.Draw(catalog, len(spread.Positions), shuffle, orientation)
	if err != nil {
		return ReadingState{}, fmt.Errorf("draw %q: %w", spread.ID, err)
	}

	st := ReadingState{
		RequestID: uuid.NewString(),
		Spread:    spread,
		Cards:     drawn,
		Summary:   domain.Compose(spread, drawn),
		Revealed:  make([]bool, len(drawn)),
	}

	s.mu.Lock()
	stale := seq < s.published
	if !stale {
		s.published = seq
		s.state = st
	}
	s.mu.Unlock()

	if stale {
		s.logger.Debug("stale reading discarded", "request_id", st.RequestID, "spread", spread.ID)
		return st, nil
	}
	s.logger.Info("reading published",
		"request_id", st.RequestID,
		"spread", spread.ID,
		"cards", len(drawn),
	)
	return st, nil
}

// Reveal flips the reveal flag for one card index on the published reading.
// Out-of-range indexes and the loading state are ignored.
func (s *ReadingSession) Reveal(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Loading || index < 0 || index >= len(s.state.Revealed) {
		return
	}
	s.state.Revealed[index] = true
}

// State returns a snapshot of the published reading.
func (s *ReadingSession) State() ReadingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *ReadingSession) snapshotLocked() ReadingState {
	st := s.state
	st.Revealed = append([]bool(nil), s.state.Revealed...)
	return st
}
