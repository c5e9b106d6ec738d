package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// storagePinger is the minimal interface for storage health checks.
type storagePinger interface {
	Ping(ctx context.Context) error
}

// pingTimeout bounds a single storage probe.
const pingTimeout = 3 * time.Second

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	store   storagePinger
	driver  string
	version string
	now     func() time.Time
	log     *slog.Logger
}

// NewHealthHandler creates a HealthHandler. driver names the storage backend
// in the full health report.
func NewHealthHandler(store storagePinger, driver, version string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		store:   store,
		driver:  driver,
		version: version,
		now:     time.Now,
		log:     logger.With("handler", "health"),
	}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Driver  string `json:"driver,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now(),
	})
}

// Ready is the readiness probe: 200 if storage answers, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.WarnContext(r.Context(), "storage ping failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: h.now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now(),
	})
}

// Health is the full health check with storage latency and build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.store.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		h.log.WarnContext(r.Context(), "storage ping failed",
			slog.String("driver", h.driver),
			slog.String("error", err.Error()),
		)
		components["storage"] = CompStatus{Status: "down", Driver: h.driver}
		overallStatus = "down"
	} else {
		components["storage"] = CompStatus{
			Status:  "ok",
			Driver:  h.driver,
			Latency: latency.String(),
		}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}
