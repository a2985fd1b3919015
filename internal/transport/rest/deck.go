package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
	"github.com/heartmarshall/neuronote-backend/internal/service/deck"
)

// deckService defines the minimal interface needed by DeckHandler.
type deckService interface {
	CreateDeck(ctx context.Context, input deck.CreateDeckInput) (*domain.Deck, error)
	ListDecks(ctx context.Context, input deck.ListDecksInput) ([]domain.Deck, error)
	GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error)
	UpdateDeck(ctx context.Context, input deck.UpdateDeckInput) (*domain.Deck, error)
	DeleteDeck(ctx context.Context, deckID uuid.UUID) error

	CreateCard(ctx context.Context, input deck.CreateCardInput) (*domain.Card, error)
	ListCards(ctx context.Context, input deck.ListCardsInput) ([]domain.Card, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	UpdateCard(ctx context.Context, input deck.UpdateCardInput) (*domain.Card, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
}

// DeckHandler serves deck and card management endpoints.
type DeckHandler struct {
	svc deckService
	log *slog.Logger
}

// NewDeckHandler creates a DeckHandler.
func NewDeckHandler(svc deckService, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{svc: svc, log: logger.With("handler", "deck")}
}

type createDeckRequest struct {
	Title   string `json:"title"`
	Subject string `json:"subject"`
}

type updateDeckRequest struct {
	Title   *string `json:"title"`
	Subject *string `json:"subject"`
}

type createCardRequest struct {
	DeckID   uuid.UUID `json:"deck_id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
}

type updateCardRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

// ---------------------------------------------------------------------------
// Decks
// ---------------------------------------------------------------------------

// CreateDeck handles POST /api/v1/decks.
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req createDeckRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	d, err := h.svc.CreateDeck(r.Context(), deck.CreateDeckInput{Title: req.Title, Subject: req.Subject})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDeckResponse(d))
}

// ListDecks handles GET /api/v1/decks.
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	decks, err := h.svc.ListDecks(r.Context(), deck.ListDecksInput{
		Subject: r.URL.Query().Get("subject"),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]deckResponse, len(decks))
	for i := range decks {
		out[i] = toDeckResponse(&decks[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"decks": out})
}

// GetDeck handles GET /api/v1/decks/{id}.
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	d, err := h.svc.GetDeck(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeckResponse(d))
}

// UpdateDeck handles PUT /api/v1/decks/{id}.
func (h *DeckHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req updateDeckRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	d, err := h.svc.UpdateDeck(r.Context(), deck.UpdateDeckInput{DeckID: id, Title: req.Title, Subject: req.Subject})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeckResponse(d))
}

// DeleteDeck handles DELETE /api/v1/decks/{id}.
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteDeck(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Cards
// ---------------------------------------------------------------------------

// ListCards handles GET /api/v1/decks/{id}/cards.
func (h *DeckHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	cards, err := h.svc.ListCards(r.Context(), deck.ListCardsInput{DeckID: id, Limit: limit, Offset: offset})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cards": toCardResponses(cards)})
}

// CreateCard handles POST /api/v1/cards.
func (h *DeckHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	c, err := h.svc.CreateCard(r.Context(), deck.CreateCardInput{
		DeckID:   req.DeckID,
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCardResponse(c))
}

// GetCard handles GET /api/v1/cards/{id}.
func (h *DeckHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	c, err := h.svc.GetCard(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(c))
}

// UpdateCard handles PUT /api/v1/cards/{id}.
func (h *DeckHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req updateCardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	c, err := h.svc.UpdateCard(r.Context(), deck.UpdateCardInput{CardID: id, Question: req.Question, Answer: req.Answer})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(c))
}

// DeleteCard handles DELETE /api/v1/cards/{id}.
func (h *DeckHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteCard(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
