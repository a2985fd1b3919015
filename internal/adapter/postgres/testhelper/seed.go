package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func nowMicro() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedDeck inserts a deck with a unique title.
func SeedDeck(t *testing.T, pool *pgxpool.Pool) domain.Deck {
	t.Helper()

	now := nowMicro()
	deck := domain.Deck{
		ID:        uuid.New(),
		Title:     "Deck " + uniqueSuffix(),
		Subject:   "testing",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO decks (id, title, subject, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		deck.ID, deck.Title, deck.Subject, deck.CreatedAt, deck.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck: %v", err)
	}

	return deck
}

// SeedCard inserts a never-reviewed card into deckID.
func SeedCard(t *testing.T, pool *pgxpool.Pool, deckID uuid.UUID) domain.Card {
	t.Helper()

	suffix := uniqueSuffix()
	now := nowMicro()
	card := domain.Card{
		ID:        uuid.New(),
		DeckID:    deckID,
		Question:  "question " + suffix,
		Answer:    "answer " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cards (id, deck_id, question, answer, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		card.ID, card.DeckID, card.Question, card.Answer, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard: %v", err)
	}

	return card
}

// SeedState stores a memory state for cardID as-is, without validating it.
func SeedState(t *testing.T, pool *pgxpool.Pool, cardID uuid.UUID, state domain.MemoryState) domain.MemoryState {
	t.Helper()

	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = nowMicro()
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO memory_states (card_id, repetitions, interval_days, ease, due_at, last_reviewed_at, last_quality, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		cardID, state.Repetitions, state.IntervalDays, state.Ease, state.DueAt, state.LastReviewedAt, int16(state.LastQuality), state.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedState: %v", err)
	}

	return state
}
