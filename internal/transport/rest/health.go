package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

const probeTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// schemaChecker reports the applied migration version.
type schemaChecker interface {
	GetDBVersion(ctx context.Context) (int64, error)
	HasPending(ctx context.Context) (bool, error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	schema  schemaChecker
	version string
	clock   func() time.Time
}

// NewHealthHandler creates a HealthHandler. schema may be nil, which skips the schema check.
func NewHealthHandler(db dbPinger, schema schemaChecker, version string) *HealthHandler {
	return &HealthHandler{db: db, schema: schema, version: version, clock: time.Now}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.clock().UTC()})
}

// Ready is the readiness probe: 200 when the database answers and no migration is pending.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	components := map[string]CompStatus{"database": h.checkDB(ctx)}
	if h.schema != nil {
		components["schema"] = h.checkSchema(ctx)
	}

	status, code := overall(components)
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: h.clock().UTC()})
}

// Health is the full health check with per-component details and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	components := map[string]CompStatus{"database": h.checkDB(ctx)}
	if h.schema != nil {
		components["schema"] = h.checkSchema(ctx)
	}

	status, code := overall(components)
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  h.clock().UTC(),
	})
}

func (h *HealthHandler) checkDB(ctx context.Context) CompStatus {
	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func (h *HealthHandler) checkSchema(ctx context.Context) CompStatus {
	version, err := h.schema.GetDBVersion(ctx)
	if err != nil {
		return CompStatus{Status: "down"}
	}
	pending, err := h.schema.HasPending(ctx)
	if err != nil {
		return CompStatus{Status: "down"}
	}

	detail := "version " + strconv.FormatInt(version, 10)
	if pending {
		return CompStatus{Status: "pending", Detail: detail}
	}
	return CompStatus{Status: "ok", Detail: detail}
}

func overall(components map[string]CompStatus) (string, int) {
	for _, c := range components {
		if c.Status != "ok" {
			return "down", http.StatusServiceUnavailable
		}
	}
	return "ok", http.StatusOK
}
