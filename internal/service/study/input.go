package study

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
	"github.com/heartmarshall/neuronote-backend/internal/service/study/sm2"
	"github.com/heartmarshall/neuronote-backend/internal/validate"
)

// SubmitReviewInput holds the parameters for recording one review.
// Now is optional; the server clock is used when it is zero.
type SubmitReviewInput struct {
	CardID  uuid.UUID  `field:"card_id" validate:"required"`
	DeckID  *uuid.UUID `field:"deck_id"`
	Quality domain.Quality
	Now     time.Time
}

// Validate rejects out-of-range grades first, then checks the remaining fields.
func (i *SubmitReviewInput) Validate() error {
	if _, err := sm2.Classify(i.Quality); err != nil {
		return err
	}
	return validate.Struct(i)
}

// GetDueSetInput holds the parameters for partitioning cards into due buckets.
// A nil DeckID covers every deck.
type GetDueSetInput struct {
	DeckID         *uuid.UUID
	Now            time.Time
	IncludeDueSoon bool
}

// Validate checks all fields and collects all errors.
func (i *GetDueSetInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID != nil && *i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GetForecastInput holds the parameters for the per-day review forecast.
type GetForecastInput struct {
	DeckID *uuid.UUID
	Now    time.Time
	Days   int `field:"days" validate:"min=1,max=90"`
}

// Validate checks all fields and collects all errors.
func (i *GetForecastInput) Validate() error {
	var extra []domain.FieldError
	if i.DeckID != nil && *i.DeckID == uuid.Nil {
		extra = append(extra, domain.FieldError{Field: "deck_id", Message: "must not be empty"})
	}
	return validate.Merge(validate.Struct(i), extra...)
}
