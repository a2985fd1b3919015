package rest

import "net/http"

// NewRouter registers every endpoint on a ServeMux.
func NewRouter(health *HealthHandler, studyH *StudyHandler, decks *DeckHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /api/v1/reviews", studyH.SubmitReview)
	mux.HandleFunc("GET /api/v1/due", studyH.DueSet)
	mux.HandleFunc("GET /api/v1/forecast", studyH.Forecast)

	mux.HandleFunc("GET /api/v1/decks", decks.ListDecks)
	mux.HandleFunc("POST /api/v1/decks", decks.CreateDeck)
	mux.HandleFunc("GET /api/v1/decks/{id}", decks.GetDeck)
	mux.HandleFunc("PUT /api/v1/decks/{id}", decks.UpdateDeck)
	mux.HandleFunc("DELETE /api/v1/decks/{id}", decks.DeleteDeck)
	mux.HandleFunc("GET /api/v1/decks/{id}/cards", decks.ListCards)

	mux.HandleFunc("POST /api/v1/cards", decks.CreateCard)
	mux.HandleFunc("GET /api/v1/cards/{id}", decks.GetCard)
	mux.HandleFunc("PUT /api/v1/cards/{id}", decks.UpdateCard)
	mux.HandleFunc("DELETE /api/v1/cards/{id}", decks.DeleteCard)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	return mux
}
