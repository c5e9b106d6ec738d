package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

type pipelineService interface {
	Get(ctx context.Context) (domain.PipelineConfig, error)
	AddLabel(ctx context.Context, category, label string) (domain.PipelineConfig, error)
	RemoveLabel(ctx context.Context, category, label string) (domain.PipelineConfig, error)
	Reset(ctx context.Context) (domain.PipelineConfig, error)
}

// PipelineHandler serves /api/pipeline.
type PipelineHandler struct {
	svc pipelineService
	log *slog.Logger
}

// NewPipelineHandler creates a PipelineHandler.
func NewPipelineHandler(svc pipelineService, logger *slog.Logger) *PipelineHandler {
	return &PipelineHandler{svc: svc, log: logger.With("handler", "pipeline")}
}

type labelRequest struct {
	Category string `json:"category"`
	Label    string `json:"label"`
}

// Get handles GET /api/pipeline.
func (h *PipelineHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// AddLabel handles POST /api/pipeline/labels.
func (h *PipelineHandler) AddLabel(w http.ResponseWriter, r *http.Request) {
	var req labelRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cfg, err := h.svc.AddLabel(r.Context(), req.Category, req.Label)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// RemoveLabel handles DELETE /api/pipeline/labels/{category}/{label}.
func (h *PipelineHandler) RemoveLabel(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.svc.RemoveLabel(r.Context(), r.PathValue("category"), r.PathValue("label"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// Reset handles POST /api/pipeline/reset.
func (h *PipelineHandler) Reset(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.svc.Reset(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}
