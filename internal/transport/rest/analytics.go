package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/analytics"
)

type analyticsService interface {
	ComputeAll(ctx context.Context, r *analytics.DateRange) (analytics.CombinedAnalytics, error)
}

// AnalyticsHandler serves /api/analytics.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

// Get handles GET /api/analytics?start=YYYY-MM-DD&end=YYYY-MM-DD. Without
// either bound the range spans all application dates.
func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	rng, err := analytics.ParseDateRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	report, err := h.svc.ComputeAll(r.Context(), rng)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
