// Package card implements the Card repository using PostgreSQL.
// Cards are read together with their memory state (LEFT JOIN memory_states).
package card

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/neuronote-backend/internal/adapter/postgres"
	"github.com/heartmarshall/neuronote-backend/internal/domain"
)

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new card repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var cardWithStateColumns = []string{
	"c.id", "c.deck_id", "c.question", "c.answer", "c.created_at", "c.updated_at",
	"s.repetitions", "s.interval_days", "s.ease", "s.due_at", "s.last_reviewed_at", "s.last_quality", "s.updated_at",
}

const cardColumns = `id, deck_id, question, answer, created_at, updated_at`

const getForUpdateSQL = `SELECT ` + cardColumns + ` FROM cards WHERE id = $1 FOR UPDATE`

const createCardSQL = `
INSERT INTO cards (id, deck_id, question, answer, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + cardColumns

const updateCardSQL = `
UPDATE cards SET question = $2, answer = $3, updated_at = $4
WHERE id = $1
RETURNING ` + cardColumns

const deleteCardSQL = `DELETE FROM cards WHERE id = $1`

func selectWithState() squirrel.SelectBuilder {
	return psql.Select(cardWithStateColumns...).
		From("cards c").
		LeftJoin("memory_states s ON s.card_id = c.id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a card with its memory state (nil when never reviewed).
func (r *Repo) GetByID(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	query, args, err := selectWithState().Where(squirrel.Eq{"c.id": cardID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get card query: %w", err)
	}

	c, err := scanCardWithState(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}
	return &c, nil
}

// GetByIDForUpdate returns the card row and locks it until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
// The memory state is not loaded.
func (r *Repo) GetByIDForUpdate(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	c, err := scanCard(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getForUpdateSQL, cardID))
	if err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}
	return &c, nil
}

// ListWithState returns cards with their memory states, in creation order.
// A nil deckID lists every deck.
func (r *Repo) ListWithState(ctx context.Context, deckID *uuid.UUID) ([]domain.Card, error) {
	b := selectWithState().OrderBy("c.created_at ASC", "c.id ASC")
	if deckID != nil {
		b = b.Where(squirrel.Eq{"c.deck_id": *deckID})
	}
	return r.list(ctx, b)
}

// ListByDeck returns one page of a deck's cards with their memory states.
// Zero limit means no limit.
func (r *Repo) ListByDeck(ctx context.Context, deckID uuid.UUID, limit, offset int) ([]domain.Card, error) {
	b := selectWithState().
		Where(squirrel.Eq{"c.deck_id": deckID}).
		OrderBy("c.created_at ASC", "c.id ASC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}
	return r.list(ctx, b)
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.Card, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	cards := []domain.Card{}
	for rows.Next() {
		c, err := scanCardWithState(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}

	return cards, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a never-reviewed card. An unknown deck results in domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, card domain.Card) (*domain.Card, error) {
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)

	q := postgres.QuerierFromCtx(ctx, r.pool)
	c, err := scanCard(q.QueryRow(ctx, createCardSQL, card.ID, card.DeckID, card.Question, card.Answer, now))
	if err != nil {
		return nil, postgres.MapError(err, "card", card.ID)
	}
	return &c, nil
}

// Update replaces the question and answer. Scheduling state is left alone.
func (r *Repo) Update(ctx context.Context, card domain.Card) (*domain.Card, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	q := postgres.QuerierFromCtx(ctx, r.pool)
	c, err := scanCard(q.QueryRow(ctx, updateCardSQL, card.ID, card.Question, card.Answer, now))
	if err != nil {
		return nil, postgres.MapError(err, "card", card.ID)
	}
	return &c, nil
}

// Delete removes a card and, by cascade, its memory state.
func (r *Repo) Delete(ctx context.Context, cardID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteCardSQL, cardID)
	if err != nil {
		return postgres.MapError(err, "card", cardID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanCard(row pgx.Row) (domain.Card, error) {
	var c domain.Card
	if err := row.Scan(&c.ID, &c.DeckID, &c.Question, &c.Answer, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.Card{}, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}

func scanCardWithState(row pgx.Row) (domain.Card, error) {
	var (
		c              domain.Card
		repetitions    *int32
		intervalDays   *int32
		ease           *float64
		dueAt          *time.Time
		lastReviewedAt *time.Time
		lastQuality    *int16
		stateUpdatedAt *time.Time
	)

	if err := row.Scan(&c.ID, &c.DeckID, &c.Question, &c.Answer, &c.CreatedAt, &c.UpdatedAt,
		&repetitions, &intervalDays, &ease, &dueAt, &lastReviewedAt, &lastQuality, &stateUpdatedAt); err != nil {
		return domain.Card{}, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()

	// memory_states columns are NOT NULL, so one NULL means no row.
	if repetitions != nil {
		c.State = &domain.MemoryState{
			Repetitions:    int(*repetitions),
			IntervalDays:   int(*intervalDays),
			Ease:           *ease,
			DueAt:          dueAt.UTC(),
			LastReviewedAt: lastReviewedAt.UTC(),
			LastQuality:    domain.Quality(*lastQuality),
			UpdatedAt:      stateUpdatedAt.UTC(),
		}
	}

	return c, nil
}
