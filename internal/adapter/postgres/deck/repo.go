// Package deck implements the Deck repository using PostgreSQL.
package deck

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

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new deck repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const deckColumns = `id, title, subject, created_at, updated_at`

const getDeckSQL = `SELECT ` + deckColumns + ` FROM decks WHERE id = $1`

const createDeckSQL = `
INSERT INTO decks (id, title, subject, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
RETURNING ` + deckColumns

const updateDeckSQL = `
UPDATE decks SET title = $2, subject = $3, updated_at = $4
WHERE id = $1
RETURNING ` + deckColumns

const deleteDeckSQL = `DELETE FROM decks WHERE id = $1`

// GetByID returns a deck by primary key.
func (r *Repo) GetByID(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDeck(q.QueryRow(ctx, getDeckSQL, deckID))
	if err != nil {
		return nil, postgres.MapError(err, "deck", deckID)
	}
	return &d, nil
}

// List returns decks ordered by creation time. An empty subject matches every deck;
// zero limit means no limit.
func (r *Repo) List(ctx context.Context, subject string, limit, offset int) ([]domain.Deck, error) {
	b := psql.Select(deckColumns).From("decks").OrderBy("created_at ASC", "id ASC")
	if subject != "" {
		b = b.Where(squirrel.Eq{"subject": subject})
	}
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list decks query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	defer rows.Close()

	decks := []domain.Deck{}
	for rows.Next() {
		d, err := scanDeck(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deck: %w", err)
		}
		decks = append(decks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate decks: %w", err)
	}

	return decks, nil
}

// Create inserts a deck. A zero ID is replaced with a new one.
func (r *Repo) Create(ctx context.Context, deck domain.Deck) (*domain.Deck, error) {
	if deck.ID == uuid.Nil {
		deck.ID = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)

	q := postgres.QuerierFromCtx(ctx, r.pool)
	d, err := scanDeck(q.QueryRow(ctx, createDeckSQL, deck.ID, deck.Title, deck.Subject, now))
	if err != nil {
		return nil, postgres.MapError(err, "deck", deck.ID)
	}
	return &d, nil
}

// Update replaces the title and subject of a deck.
func (r *Repo) Update(ctx context.Context, deck domain.Deck) (*domain.Deck, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	q := postgres.QuerierFromCtx(ctx, r.pool)
	d, err := scanDeck(q.QueryRow(ctx, updateDeckSQL, deck.ID, deck.Title, deck.Subject, now))
	if err != nil {
		return nil, postgres.MapError(err, "deck", deck.ID)
	}
	return &d, nil
}

// Delete removes a deck together with its cards and their memory states.
func (r *Repo) Delete(ctx context.Context, deckID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteDeckSQL, deckID)
	if err != nil {
		return postgres.MapError(err, "deck", deckID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", deckID, domain.ErrNotFound)
	}
	return nil
}

func scanDeck(row pgx.Row) (domain.Deck, error) {
	var d domain.Deck
	err := row.Scan(&d.ID, &d.Title, &d.Subject, &d.CreatedAt, &d.UpdatedAt)
	d.CreatedAt = d.CreatedAt.UTC()
	d.UpdatedAt = d.UpdatedAt.UTC()
	return d, err
}
