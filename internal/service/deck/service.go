// Package deck manages decks and their cards. Card content edits never touch
// scheduling state; that belongs to the study service.
package deck

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
)

type deckRepo interface {
	Create(ctx context.Context, deck domain.Deck) (*domain.Deck, error)
	GetByID(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error)
	List(ctx context.Context, subject string, limit, offset int) ([]domain.Deck, error)
	Update(ctx context.Context, deck domain.Deck) (*domain.Deck, error)
	Delete(ctx context.Context, deckID uuid.UUID) error
}

type cardRepo interface {
	Create(ctx context.Context, card domain.Card) (*domain.Card, error)
	GetByID(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	ListByDeck(ctx context.Context, deckID uuid.UUID, limit, offset int) ([]domain.Card, error)
	Update(ctx context.Context, card domain.Card) (*domain.Card, error)
	Delete(ctx context.Context, cardID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Service provides deck and card management operations.
type Service struct {
	decks deckRepo
	cards cardRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Deck service.
func NewService(log *slog.Logger, decks deckRepo, cards cardRepo, tx txManager) *Service {
	return &Service{
		decks: decks,
		cards: cards,
		tx:    tx,
		log:   log.With("service", "deck"),
	}
}

func pageSize(limit int) int {
	if limit == 0 {
		return DefaultPageSize
	}
	return limit
}
