package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
)

// CreateCard adds a never-reviewed card to an existing deck.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var card *domain.Card
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.decks.GetByID(txCtx, input.DeckID); err != nil {
			return fmt.Errorf("get deck: %w", err)
		}

		var err error
		card, err = s.cards.Create(txCtx, domain.Card{
			DeckID:   input.DeckID,
			Question: input.Question,
			Answer:   input.Answer,
		})
		if err != nil {
			return fmt.Errorf("create card: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("card_id", card.ID.String()),
		slog.String("deck_id", card.DeckID.String()),
	)

	return card, nil
}

// ListCards returns one page of a deck's cards, each with its memory state.
func (s *Service) ListCards(ctx context.Context, input ListCardsInput) ([]domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.decks.GetByID(ctx, input.DeckID); err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	cards, err := s.cards.ListByDeck(ctx, input.DeckID, pageSize(input.Limit), input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

// GetCard returns a card with its memory state.
func (s *Service) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	if err := requireID("card_id", cardID); err != nil {
		return nil, err
	}
	return s.cards.GetByID(ctx, cardID)
}

// UpdateCard edits the question and/or answer. Review progress is kept.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (*domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Card
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.cards.GetByID(txCtx, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		next := *current
		if input.Question != nil {
			next.Question = strings.TrimSpace(*input.Question)
		}
		if input.Answer != nil {
			next.Answer = strings.TrimSpace(*input.Answer)
		}

		updated, err = s.cards.Update(txCtx, next)
		if err != nil {
			return fmt.Errorf("update card: %w", err)
		}
		updated.State = current.State
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card updated", slog.String("card_id", input.CardID.String()))

	return updated, nil
}

// DeleteCard removes a card and its memory state.
func (s *Service) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	if err := requireID("card_id", cardID); err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, cardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted", slog.String("card_id", cardID.String()))

	return nil
}
