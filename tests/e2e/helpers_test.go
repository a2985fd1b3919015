//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/neuronote-backend/internal/adapter/postgres"
	"github.com/heartmarshall/neuronote-backend/internal/adapter/postgres/card"
	"github.com/heartmarshall/neuronote-backend/internal/adapter/postgres/deck"
	"github.com/heartmarshall/neuronote-backend/internal/adapter/postgres/memorystate"
	"github.com/heartmarshall/neuronote-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/neuronote-backend/internal/config"
	"github.com/heartmarshall/neuronote-backend/internal/domain"
	decksvc "github.com/heartmarshall/neuronote-backend/internal/service/deck"
	"github.com/heartmarshall/neuronote-backend/internal/service/study"
	"github.com/heartmarshall/neuronote-backend/internal/transport/middleware"
	"github.com/heartmarshall/neuronote-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	deckRepo := deck.New(pool)
	cardRepo := card.New(pool)
	stateRepo := memorystate.New(pool)

	studyService, err := study.NewService(logger, cardRepo, stateRepo, deckRepo, txm, domain.SRSConfig{
		InitialEase:     2.5,
		MinEase:         1.3,
		FailEasePenalty: 0.2,
		FirstInterval:   1,
		SecondInterval:  6,
		FailInterval:    1,
		MaxIntervalDays: 36500,
		DueSoonWindow:   time.Hour,
		Timezone:        "UTC",
	})
	require.NoError(t, err)
	deckService := decksvc.NewService(logger, deckRepo, cardRepo, txm)

	router := rest.NewRouter(
		rest.NewHealthHandler(pool, nil, "e2e"),
		rest.NewStudyHandler(studyService, logger),
		rest.NewDeckHandler(deckService, logger),
	)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,DELETE", AllowedHeaders: "Content-Type"}),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// do sends a JSON request and decodes the JSON response into out (when non-nil).
func (ts *testServer) do(t *testing.T, method, path string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return resp.StatusCode
}

// ---------------------------------------------------------------------------
// Response shapes.
// ---------------------------------------------------------------------------

type deckJSON struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Subject string `json:"subject"`
}

type cardJSON struct {
	ID             string     `json:"id"`
	DeckID         string     `json:"deck_id"`
	Question       string     `json:"question"`
	Answer         string     `json:"answer"`
	Repetitions    int        `json:"repetitions"`
	Interval       *int       `json:"interval"`
	Ease           *float64   `json:"ease"`
	ScheduledDate  *time.Time `json:"scheduled_date"`
	LastReviewDate *time.Time `json:"last_review_date"`
}

type dueSetJSON struct {
	Overdue    []cardJSON  `json:"overdue"`
	DueNow     []cardJSON  `json:"dueNow"`
	DueSoon    *[]cardJSON `json:"dueSoon"`
	LaterToday []cardJSON  `json:"laterToday"`
	Upcoming   []cardJSON  `json:"upcoming"`
	Counts     struct {
		Overdue    int `json:"overdue"`
		DueNow     int `json:"dueNow"`
		LaterToday int `json:"laterToday"`
		Upcoming   int `json:"upcoming"`
		Total      int `json:"total"`
	} `json:"counts"`
}

type errorJSON struct {
	Error  string `json:"error"`
	Fields []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}

func createDeck(t *testing.T, ts *testServer, title string) deckJSON {
	t.Helper()

	var d deckJSON
	status := ts.do(t, http.MethodPost, "/api/v1/decks", map[string]string{"title": title, "subject": "e2e"}, &d)
	require.Equal(t, http.StatusCreated, status)
	return d
}

func createCard(t *testing.T, ts *testServer, deckID, question string) cardJSON {
	t.Helper()

	var c cardJSON
	status := ts.do(t, http.MethodPost, "/api/v1/cards", map[string]string{
		"deck_id":  deckID,
		"question": question,
		"answer":   fmt.Sprintf("answer to %s", question),
	}, &c)
	require.Equal(t, http.StatusCreated, status)
	return c
}

func review(t *testing.T, ts *testServer, cardID string, quality int) cardJSON {
	t.Helper()

	var c cardJSON
	status := ts.do(t, http.MethodPost, "/api/v1/reviews", map[string]any{"card_id": cardID, "quality": quality}, &c)
	require.Equal(t, http.StatusOK, status)
	return c
}
