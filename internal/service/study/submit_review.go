package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
	"github.com/heartmarshall/neuronote-backend/internal/service/study/sm2"
)

// SubmitReview applies one review to a card and persists the new memory state.
// The card row is locked for the whole read-compute-write cycle, so concurrent
// reviews of the same card are serialized.
//
// A retry carrying the same input.Now and quality as the stored state returns that
// state without writing again. Only callers that pass input.Now get this; with a zero
// Now every call reads the service clock and counts as a new review.
func (s *Service) SubmitReview(ctx context.Context, input SubmitReviewInput) (*domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now(input.Now)

	var (
		reviewed  *domain.Card
		duplicate bool
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.cards.GetByIDForUpdate(txCtx, input.CardID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("card %s: %w", input.CardID, domain.ErrCardNotFound)
			}
			return persistenceError("load card", err)
		}
		if input.DeckID != nil && card.DeckID != *input.DeckID {
			return fmt.Errorf("card %s in deck %s: %w", input.CardID, *input.DeckID, domain.ErrCardNotFound)
		}

		prev := s.params.Initial()

		stored, err := s.states.Get(txCtx, card.ID)
		switch {
		case err == nil:
			if checkErr := s.params.CheckMemoryState(*stored); checkErr != nil {
				return &domain.StateCorruptionError{CardID: card.ID, Reason: checkErr.Error()}
			}
			if stored.LastReviewedAt.Equal(now) && stored.LastQuality == input.Quality {
				card.State = stored
				reviewed = card
				duplicate = true
				return nil
			}
			prev = sm2.StateOf(*stored)
		case errors.Is(err, domain.ErrNotFound):
			// First review: start from the initial state.
		default:
			return persistenceError("load memory state", err)
		}

		next, err := s.params.Schedule(prev, input.Quality, now)
		if err != nil {
			if errors.Is(err, sm2.ErrInvalidState) {
				return &domain.StateCorruptionError{CardID: card.ID, Reason: err.Error()}
			}
			return err
		}

		saved, err := s.states.Upsert(txCtx, card.ID, next)
		if err != nil {
			return persistenceError("save memory state", err)
		}

		card.State = saved
		reviewed = card
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrStateCorruption) {
			s.log.WarnContext(ctx, "memory state corrupted",
				slog.String("card_id", input.CardID.String()),
				slog.String("error", err.Error()),
			)
		}
		return nil, persistenceError("review transaction", err)
	}

	if duplicate {
		s.log.DebugContext(ctx, "duplicate review ignored",
			slog.String("card_id", reviewed.ID.String()),
			slog.Int("quality", int(input.Quality)),
		)
		return reviewed, nil
	}

	s.log.InfoContext(ctx, "card reviewed",
		slog.String("card_id", reviewed.ID.String()),
		slog.Int("quality", int(input.Quality)),
		slog.Int("repetitions", reviewed.State.Repetitions),
		slog.Int("interval_days", reviewed.State.IntervalDays),
		slog.Float64("ease", reviewed.State.Ease),
		slog.Time("due_at", reviewed.State.DueAt),
	)

	return reviewed, nil
}

// persistenceError wraps storage failures that carry no domain meaning.
// Domain errors pass through untouched.
func persistenceError(op string, err error) error {
	if err == nil || isDomainError(err) {
		return err
	}
	return &domain.PersistenceError{Op: op, Err: err}
}

func isDomainError(err error) bool {
	for _, target := range []error{
		domain.ErrValidation,
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrConflict,
		domain.ErrStateCorruption,
		domain.ErrPersistence,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
