package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
	"github.com/heartmarshall/neuronote-backend/internal/service/study"
)

// studyService defines the minimal interface needed by StudyHandler.
type studyService interface {
	SubmitReview(ctx context.Context, input study.SubmitReviewInput) (*domain.Card, error)
	GetDueSet(ctx context.Context, input study.GetDueSetInput) (domain.DueSet, error)
	GetForecast(ctx context.Context, input study.GetForecastInput) ([]domain.DayForecast, error)
}

// StudyHandler serves review and due-set endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type submitReviewRequest struct {
	CardID  uuid.UUID  `json:"card_id"`
	DeckID  *uuid.UUID `json:"deck_id"`
	Quality *int       `json:"quality"`
}

// SubmitReview handles POST /api/v1/reviews.
func (h *StudyHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req submitReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if req.Quality == nil {
		writeDomainError(w, r, h.log, domain.NewValidationError("quality", "required"))
		return
	}

	card, err := h.svc.SubmitReview(r.Context(), study.SubmitReviewInput{
		CardID:  req.CardID,
		DeckID:  req.DeckID,
		Quality: domain.Quality(*req.Quality),
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// DueSet handles GET /api/v1/due.
func (h *StudyHandler) DueSet(w http.ResponseWriter, r *http.Request) {
	deckID, err := queryUUID(r, "deck_id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	includeDueSoon, err := queryBool(r, "include_due_soon")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	set, err := h.svc.GetDueSet(r.Context(), study.GetDueSetInput{
		DeckID:         deckID,
		IncludeDueSoon: includeDueSoon,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDueSetResponse(set, includeDueSoon))
}

// Forecast handles GET /api/v1/forecast.
func (h *StudyHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	deckID, err := queryUUID(r, "deck_id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	days, err := queryInt(r, "days")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	forecast, err := h.svc.GetForecast(r.Context(), study.GetForecastInput{DeckID: deckID, Days: days})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toForecastResponse(forecast))
}
