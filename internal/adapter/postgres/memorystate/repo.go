// Package memorystate persists per-card SM-2 scheduling state.
package memorystate

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/neuronote-backend/internal/adapter/postgres"
	"github.com/heartmarshall/neuronote-backend/internal/domain"
)

// Repo provides memory state persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new memory state repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

const stateColumns = `repetitions, interval_days, ease, due_at, last_reviewed_at, last_quality, updated_at`

const getStateSQL = `SELECT ` + stateColumns + ` FROM memory_states WHERE card_id = $1`

const upsertStateSQL = `
INSERT INTO memory_states (card_id, repetitions, interval_days, ease, due_at, last_reviewed_at, last_quality, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (card_id) DO UPDATE SET
    repetitions      = EXCLUDED.repetitions,
    interval_days    = EXCLUDED.interval_days,
    ease             = EXCLUDED.ease,
    due_at           = EXCLUDED.due_at,
    last_reviewed_at = EXCLUDED.last_reviewed_at,
    last_quality     = EXCLUDED.last_quality,
    updated_at       = EXCLUDED.updated_at
RETURNING ` + stateColumns

// Get returns the stored state of a card, or domain.ErrNotFound when it was never reviewed.
// Values are returned as stored; callers validate them.
func (r *Repo) Get(ctx context.Context, cardID uuid.UUID) (*domain.MemoryState, error) {
	s, err := scanState(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getStateSQL, cardID))
	if err != nil {
		return nil, postgres.MapError(err, "memory_state", cardID)
	}
	return &s, nil
}

// Upsert writes the whole state in one statement, so readers see either the
// previous state or the new one. An unknown card results in domain.ErrNotFound.
func (r *Repo) Upsert(ctx context.Context, cardID uuid.UUID, state domain.MemoryState) (*domain.MemoryState, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, upsertStateSQL,
		cardID,
		int32(state.Repetitions),
		int32(state.IntervalDays),
		state.Ease,
		state.DueAt.UTC(),
		state.LastReviewedAt.UTC(),
		int16(state.LastQuality),
		now,
	)

	s, err := scanState(row)
	if err != nil {
		return nil, postgres.MapError(err, "memory_state", cardID)
	}
	return &s, nil
}

func scanState(row pgx.Row) (domain.MemoryState, error) {
	var (
		s            domain.MemoryState
		repetitions  int32
		intervalDays int32
		lastQuality  int16
	)
	if err := row.Scan(&repetitions, &intervalDays, &s.Ease, &s.DueAt, &s.LastReviewedAt, &lastQuality, &s.UpdatedAt); err != nil {
		return domain.MemoryState{}, err
	}
	s.Repetitions = int(repetitions)
	s.IntervalDays = int(intervalDays)
	s.LastQuality = domain.Quality(lastQuality)
	s.DueAt = s.DueAt.UTC()
	s.LastReviewedAt = s.LastReviewedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
