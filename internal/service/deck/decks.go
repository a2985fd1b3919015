package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
)

// CreateDeck creates an empty deck.
func (s *Service) CreateDeck(ctx context.Context, input CreateDeckInput) (*domain.Deck, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	deck, err := s.decks.Create(ctx, domain.Deck{Title: input.Title, Subject: input.Subject})
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck created",
		slog.String("deck_id", deck.ID.String()),
		slog.String("title", deck.Title),
	)

	return deck, nil
}

// ListDecks returns one page of decks, optionally filtered by subject.
func (s *Service) ListDecks(ctx context.Context, input ListDecksInput) ([]domain.Deck, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	decks, err := s.decks.List(ctx, domain.NormalizeSubject(input.Subject), pageSize(input.Limit), input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return decks, nil
}

// GetDeck returns a deck by ID.
func (s *Service) GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error) {
	if err := requireID("deck_id", deckID); err != nil {
		return nil, err
	}
	return s.decks.GetByID(ctx, deckID)
}

// UpdateDeck changes the title and/or subject of a deck.
func (s *Service) UpdateDeck(ctx context.Context, input UpdateDeckInput) (*domain.Deck, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Deck
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.decks.GetByID(txCtx, input.DeckID)
		if err != nil {
			return fmt.Errorf("get deck: %w", err)
		}

		next := *current
		if input.Title != nil {
			next.Title = strings.TrimSpace(*input.Title)
		}
		if input.Subject != nil {
			next.Subject = domain.NormalizeSubject(*input.Subject)
		}

		updated, err = s.decks.Update(txCtx, next)
		if err != nil {
			return fmt.Errorf("update deck: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "deck updated", slog.String("deck_id", input.DeckID.String()))

	return updated, nil
}

// DeleteDeck removes a deck with all of its cards and their review progress.
func (s *Service) DeleteDeck(ctx context.Context, deckID uuid.UUID) error {
	if err := requireID("deck_id", deckID); err != nil {
		return err
	}

	if err := s.decks.Delete(ctx, deckID); err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck deleted", slog.String("deck_id", deckID.String()))

	return nil
}
