package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deck groups cards under a title and subject.
type Deck struct {
	ID        uuid.UUID
	Title     string
	Subject   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Card is a question/answer pair. State is nil until the card is reviewed for the first time.
type Card struct {
	ID        uuid.UUID
	DeckID    uuid.UUID
	Question  string
	Answer    string
	State     *MemoryState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsNew reports whether the card has never been reviewed.
func (c *Card) IsNew() bool {
	return c.State == nil
}

// MemoryState is the per-card scheduling state. All timestamps are UTC.
// DueAt always equals LastReviewedAt plus IntervalDays calendar days.
type MemoryState struct {
	Repetitions    int
	IntervalDays   int
	Ease           float64
	DueAt          time.Time
	LastReviewedAt time.Time
	LastQuality    Quality
	UpdatedAt      time.Time
}
