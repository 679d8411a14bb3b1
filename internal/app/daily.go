package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/timmayboi7/PersonalTarotApp/internal/domain"
	"github.com/timmayboi7/PersonalTarotApp/internal/ports"
	"github.com/timmayboi7/PersonalTarotApp/internal/rng"
)

// DailyCardState is the observable daily-card value. DrawDate is the local
// calendar date the card was drawn for, at midnight in the service's zone.
type DailyCardState struct {
	CardName    string
	ImageAsset  string
	Description string
	Drawn       bool
	DrawDate    time.Time
}

// DailyCardService draws the card of the day. The seed is a pure function
// of the calendar date in the configured zone, so the card is identical
// across taps, restarts, and sessions for the whole day with no persisted
// state.
type DailyCardService struct {
	cards  ports.CardSource
	zone   *time.Location
	now    func() time.Time
	logger *slog.Logger

	mu    sync.Mutex
	state DailyCardState
}

func NewDailyCardService(cards ports.CardSource, zone *time.Location, logger *slog.Logger) *DailyCardService {
	return &DailyCardService{
		cards:  cards,
		zone:   zone,
		now:    time.Now,
		logger: logger,
	}
}

// Fetch draws today's card, or returns the already-drawn one when called
// again on the same local date. Idempotent for the remainder of the day.
func (s *DailyCardService) Fetch(ctx context.Context) (DailyCardState, error) {
	now := s.now()
	today := localDate(now, s.zone)

	s.mu.Lock()
	if s.state.Drawn && s.state.DrawDate.Equal(today) {
		st := s.state
		s.mu.Unlock()
		return st, nil
	}
	s.mu.Unlock()

	catalog, err := s.cards.Cards(ctx)
	if err != nil {
		return DailyCardState{}, fmt.Errorf("load cards: %w", err)
	}
	card, err := domain.PickCard(catalog, rng.New(rng.DailySeed(now, s.zone)))
	if err != nil {
		return DailyCardState{}, fmt.Errorf("pick daily card: %w", err)
	}

	description := card.DailyDescription
	if strings.TrimSpace(description) == "" {
		description = card.MeaningUpright
	}
	st := DailyCardState{
		CardName:    card.Name,
		ImageAsset:  card.ImageAsset,
		Description: description,
		Drawn:       true,
		DrawDate:    today,
	}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()

	s.logger.Info("daily card drawn", "card", card.ID, "date", today.Format(time.DateOnly))
	return st, nil
}

// State returns the current daily-card value without drawing.
func (s *DailyCardService) State() DailyCardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func localDate(t time.Time, zone *time.Location) time.Time {
	y, m, d := t.In(zone).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, zone)
}
