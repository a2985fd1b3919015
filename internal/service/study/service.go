package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
	"github.com/heartmarshall/neuronote-backend/internal/service/study/sm2"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	GetByIDForUpdate(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	ListWithState(ctx context.Context, deckID *uuid.UUID) ([]domain.Card, error)
}

type stateRepo interface {
	Get(ctx context.Context, cardID uuid.UUID) (*domain.MemoryState, error)
	Upsert(ctx context.Context, cardID uuid.UUID, state domain.MemoryState) (*domain.MemoryState, error)
}

type deckRepo interface {
	GetByID(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements review scheduling and due-set queries.
type Service struct {
	cards     cardRepo
	states    stateRepo
	decks     deckRepo
	tx        txManager
	log       *slog.Logger
	srsConfig domain.SRSConfig
	params    sm2.Parameters
	loc       *time.Location
	clock     func() time.Time
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	states stateRepo,
	decks deckRepo,
	tx txManager,
	srsConfig domain.SRSConfig,
) (*Service, error) {
	params := sm2.ParametersFromConfig(srsConfig)
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid SM-2 parameters: %w", err)
	}

	return &Service{
		cards:     cards,
		states:    states,
		decks:     decks,
		tx:        tx,
		log:       log.With("service", "study"),
		srsConfig: srsConfig,
		params:    params,
		loc:       ParseTimezone(srsConfig.Timezone),
		clock:     time.Now,
	}, nil
}

// now returns the reference instant for a request: the caller's value or the server clock,
// in UTC and truncated to the storage precision.
func (s *Service) now(requested time.Time) time.Time {
	if requested.IsZero() {
		requested = s.clock()
	}
	return requested.UTC().Truncate(time.Microsecond)
}

func (s *Service) location() *time.Location {
	if s.loc == nil {
		return time.UTC
	}
	return s.loc
}

func (s *Service) partitionOptions(includeDueSoon bool) PartitionOptions {
	return PartitionOptions{
		Location:       s.location(),
		DueSoonWindow:  s.srsConfig.DueSoonWindow,
		IncludeDueSoon: includeDueSoon,
	}
}
