package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
)

// DefaultForecastDays is the forecast horizon used when none is requested.
const DefaultForecastDays = 7

// GetDueSet partitions the cards of one deck (or all decks) into due buckets at input.Now.
// Read-only.
func (s *Service) GetDueSet(ctx context.Context, input GetDueSetInput) (domain.DueSet, error) {
	if err := input.Validate(); err != nil {
		return domain.DueSet{}, err
	}

	now := s.now(input.Now)

	cards, err := s.loadCards(ctx, input.DeckID)
	if err != nil {
		return domain.DueSet{}, err
	}

	set := Partition(cards, now, s.partitionOptions(input.IncludeDueSoon))

	s.log.DebugContext(ctx, "due set computed",
		slog.Int("total", set.Total()),
		slog.Int("overdue", len(set.Overdue)),
		slog.Int("due_now", len(set.DueNow)),
		slog.Int("later_today", len(set.LaterToday)),
	)

	return set, nil
}

// GetForecast counts cards due on each of the next input.Days calendar days.
// Day 0 also carries everything already due (overdue and never-reviewed cards).
func (s *Service) GetForecast(ctx context.Context, input GetForecastInput) ([]domain.DayForecast, error) {
	if input.Days == 0 {
		input.Days = DefaultForecastDays
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now(input.Now)
	loc := s.location()

	cards, err := s.loadCards(ctx, input.DeckID)
	if err != nil {
		return nil, err
	}

	today := DayStart(now, loc)
	days := make([]domain.DayForecast, input.Days)
	bounds := make([]int64, input.Days+1)
	for i := range days {
		start := AddLocalDays(today, i, loc)
		days[i].Date = start
		bounds[i] = start.UnixMicro()
	}
	bounds[input.Days] = AddLocalDays(today, input.Days, loc).UnixMicro()

	for _, c := range cards {
		if c.IsNew() || c.State.DueAt.Before(today) {
			days[0].Count++
			continue
		}
		due := c.State.DueAt.UnixMicro()
		for i := range days {
			if due >= bounds[i] && due < bounds[i+1] {
				days[i].Count++
				break
			}
		}
	}

	return days, nil
}

func (s *Service) loadCards(ctx context.Context, deckID *uuid.UUID) ([]domain.Card, error) {
	if deckID != nil {
		if _, err := s.decks.GetByID(ctx, *deckID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("deck %s: %w", *deckID, domain.ErrNotFound)
			}
			return nil, persistenceError("load deck", err)
		}
	}

	cards, err := s.cards.ListWithState(ctx, deckID)
	if err != nil {
		return nil, persistenceError("list cards", err)
	}
	return cards, nil
}
