package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

type jobBoardService interface {
	Create(ctx context.Context, in domain.JobBoardInput) (*domain.JobBoard, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.JobBoard, error)
	List(ctx context.Context) ([]*domain.JobBoard, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.JobBoardPatch) (*domain.JobBoard, error)
	AddDomain(ctx context.Context, id uuid.UUID, raw string) (*domain.JobBoard, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByURL(ctx context.Context, rawURL string) (*domain.JobBoard, error)
	FindOrCreateByURL(ctx context.Context, rawURL string) (*domain.JobBoard, bool, error)
}

// JobBoardHandler serves /api/job-boards.
type JobBoardHandler struct {
	svc jobBoardService
	log *slog.Logger
}

// NewJobBoardHandler creates a JobBoardHandler.
func NewJobBoardHandler(svc jobBoardService, logger *slog.Logger) *JobBoardHandler {
	return &JobBoardHandler{svc: svc, log: logger.With("handler", "job_board")}
}

type jobBoardRequest struct {
	Name       string   `json:"name"`
	RootDomain string   `json:"rootDomain"`
	Domains    []string `json:"domains"`
}

type jobBoardPatchRequest struct {
	Name       *string   `json:"name"`
	RootDomain *string   `json:"rootDomain"`
	Domains    *[]string `json:"domains"`
}

type domainRequest struct {
	Domain string `json:"domain"`
}

type lookupRequest struct {
	URL string `json:"url"`
}

type lookupResponse struct {
	Board   *domain.JobBoard `json:"board"`
	Created bool             `json:"created"`
}

// List handles GET /api/job-boards.
func (h *JobBoardHandler) List(w http.ResponseWriter, r *http.Request) {
	boards, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, boards)
}

// Create handles POST /api/job-boards.
func (h *JobBoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobBoardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	board, err := h.svc.Create(r.Context(), domain.JobBoardInput{
		Name:       req.Name,
		RootDomain: req.RootDomain,
		Domains:    req.Domains,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, board)
}

// Get handles GET /api/job-boards/{id}.
func (h *JobBoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	board, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// Update handles PATCH /api/job-boards/{id}.
func (h *JobBoardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req jobBoardPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	board, err := h.svc.Update(r.Context(), id, domain.JobBoardPatch{
		Name:       req.Name,
		RootDomain: req.RootDomain,
		Domains:    req.Domains,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// AddDomain handles POST /api/job-boards/{id}/domains.
func (h *JobBoardHandler) AddDomain(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req domainRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	board, err := h.svc.AddDomain(r.Context(), id, req.Domain)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// Delete handles DELETE /api/job-boards/{id}.
func (h *JobBoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Lookup handles GET /api/job-boards/lookup?url=.
func (h *JobBoardHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("url"))
	if raw == "" {
		handleError(h.log, w, r, domain.NewValidationError("url", "required"))
		return
	}

	board, err := h.svc.FindByURL(r.Context(), raw)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// FindOrCreate handles POST /api/job-boards/lookup. It answers 201 when a
// board was created for the URL's domain.
func (h *JobBoardHandler) FindOrCreate(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	board, created, err := h.svc.FindOrCreateByURL(r.Context(), req.URL)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, lookupResponse{Board: board, Created: created})
}
