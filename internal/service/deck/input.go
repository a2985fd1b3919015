package deck

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
	"github.com/heartmarshall/neuronote-backend/internal/validate"
)

const (
	maxTitleLen   = 200
	maxSubjectLen = 100
	maxTextLen    = 4000
)

// CreateDeckInput holds the parameters for creating a deck.
type CreateDeckInput struct {
	Title   string `field:"title" validate:"required,max=200"`
	Subject string `field:"subject" validate:"max=100"`
}

func (i *CreateDeckInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Subject = domain.NormalizeSubject(i.Subject)
}

// Validate checks all fields and collects all errors.
func (i *CreateDeckInput) Validate() error {
	return validate.Struct(i)
}

// ListDecksInput holds the parameters for listing decks.
type ListDecksInput struct {
	Subject string
	Limit   int `field:"limit" validate:"min=0,max=200"`
	Offset  int `field:"offset" validate:"min=0"`
}

// Validate checks all fields and collects all errors.
func (i *ListDecksInput) Validate() error {
	return validate.Struct(i)
}

// UpdateDeckInput holds the parameters for updating a deck. Nil fields are left unchanged.
type UpdateDeckInput struct {
	DeckID  uuid.UUID
	Title   *string
	Subject *string
}

// Validate checks all fields and collects all errors.
func (i *UpdateDeckInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if i.Title == nil && i.Subject == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if tooLong(title, maxTitleLen) {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Subject != nil && tooLong(domain.NormalizeSubject(*i.Subject), maxSubjectLen) {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateCardInput holds the parameters for adding a card to a deck.
type CreateCardInput struct {
	DeckID   uuid.UUID `field:"deck_id" validate:"required"`
	Question string    `field:"question" validate:"required,max=4000"`
	Answer   string    `field:"answer" validate:"required,max=4000"`
}

func (i *CreateCardInput) normalize() {
	i.Question = strings.TrimSpace(i.Question)
	i.Answer = strings.TrimSpace(i.Answer)
}

// Validate checks all fields and collects all errors.
func (i *CreateCardInput) Validate() error {
	return validate.Struct(i)
}

// ListCardsInput holds the parameters for listing a deck's cards.
type ListCardsInput struct {
	DeckID uuid.UUID `field:"deck_id" validate:"required"`
	Limit  int       `field:"limit" validate:"min=0,max=200"`
	Offset int       `field:"offset" validate:"min=0"`
}

// Validate checks all fields and collects all errors.
func (i *ListCardsInput) Validate() error {
	return validate.Struct(i)
}

// UpdateCardInput holds the parameters for editing card content. Nil fields are left unchanged.
type UpdateCardInput struct {
	CardID   uuid.UUID
	Question *string
	Answer   *string
}

// Validate checks all fields and collects all errors.
func (i *UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.Question == nil && i.Answer == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	errs = append(errs, checkText("question", i.Question)...)
	errs = append(errs, checkText("answer", i.Answer)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func checkText(field string, v *string) []domain.FieldError {
	if v == nil {
		return nil
	}
	text := strings.TrimSpace(*v)
	if text == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if tooLong(text, maxTextLen) {
		return []domain.FieldError{{Field: field, Message: "max 4000 characters"}}
	}
	return nil
}

// tooLong counts characters the way the `max` validate tag does.
func tooLong(s string, limit int) bool {
	return utf8.RuneCountInString(s) > limit
}

func requireID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError(field, "required")
	}
	return nil
}
