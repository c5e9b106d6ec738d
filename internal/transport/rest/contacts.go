package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

type contactService interface {
	Create(ctx context.Context, in domain.ContactInput) (*domain.Contact, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	List(ctx context.Context) ([]*domain.Contact, error)
	ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.Contact, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ContactPatch) (*domain.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContactHandler serves /api/contacts.
type ContactHandler struct {
	svc contactService
	log *slog.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: logger.With("handler", "contact")}
}

type contactRequest struct {
	JobApplicationID string `json:"jobApplicationId"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	LinkedIn         string `json:"linkedIn"`
	Role             string `json:"role"`
	Channel          string `json:"channel"`
	OutreachDate     string `json:"outreachDate"`
	ResponseReceived bool   `json:"responseReceived"`
	Notes            string `json:"notes"`
}

type contactPatchRequest struct {
	Name             *string `json:"name"`
	Email            *string `json:"email"`
	LinkedIn         *string `json:"linkedIn"`
	Role             *string `json:"role"`
	Channel          *string `json:"channel"`
	OutreachDate     *string `json:"outreachDate"`
	ResponseReceived *bool   `json:"responseReceived"`
	Notes            *string `json:"notes"`
}

// List handles GET /api/contacts. An applicationId query narrows the list.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		contacts []*domain.Contact
		err      error
	)
	if raw := r.URL.Query().Get("applicationId"); raw != "" {
		appID, perr := uuid.Parse(raw)
		if perr != nil {
			handleError(h.log, w, r, domain.NewValidationError("applicationId", "must be a UUID"))
			return
		}
		contacts, err = h.svc.ListByApplication(r.Context(), appID)
	} else {
		contacts, err = h.svc.List(r.Context())
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

// ListByApplication handles GET /api/applications/{id}/contacts.
func (h *ContactHandler) ListByApplication(w http.ResponseWriter, r *http.Request) {
	appID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	contacts, err := h.svc.ListByApplication(r.Context(), appID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	appID, err := uuid.Parse(req.JobApplicationID)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("jobApplicationId", "must be a UUID"))
		return
	}

	c, err := h.svc.Create(r.Context(), domain.ContactInput{
		JobApplicationID: appID,
		Name:             req.Name,
		Email:            req.Email,
		LinkedIn:         req.LinkedIn,
		Role:             req.Role,
		Channel:          req.Channel,
		OutreachDate:     req.OutreachDate,
		ResponseReceived: req.ResponseReceived,
		Notes:            req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Get handles GET /api/contacts/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Update handles PATCH /api/contacts/{id}.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req contactPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Update(r.Context(), id, domain.ContactPatch{
		Name:             req.Name,
		Email:            req.Email,
		LinkedIn:         req.LinkedIn,
		Role:             req.Role,
		Channel:          req.Channel,
		OutreachDate:     req.OutreachDate,
		ResponseReceived: req.ResponseReceived,
		Notes:            req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /api/contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
