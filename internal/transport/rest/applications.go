package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/service/application"
)

type applicationService interface {
	Create(ctx context.Context, in domain.JobApplicationInput) (*domain.JobApplication, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error)
	List(ctx context.Context, filter domain.ApplicationFilter) ([]*domain.JobApplication, error)
	ListOverdue(ctx context.Context) ([]*domain.JobApplication, error)
	Update(ctx context.Context, input application.UpdateInput) (*domain.JobApplication, error)
	SetStatus(ctx context.Context, input application.SetStatusInput) (*domain.JobApplication, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddNote(ctx context.Context, input application.NoteInput) (*domain.Note, error)
	EditNote(ctx context.Context, input application.NoteInput) (*domain.Note, error)
	RemoveNote(ctx context.Context, input application.NoteInput) error
}

// ApplicationHandler serves /api/applications.
type ApplicationHandler struct {
	svc applicationService
	now func() time.Time
	log *slog.Logger
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(svc applicationService, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, now: time.Now, log: logger.With("handler", "application")}
}

type applicationRequest struct {
	Company         string  `json:"company"`
	PositionTitle   string  `json:"positionTitle"`
	ApplicationDate string  `json:"applicationDate"`
	InterestRating  *int    `json:"interestRating"`
	NextEventDate   string  `json:"nextEventDate"`
	JobPostingURL   string  `json:"jobPostingUrl"`
	JobDescription  string  `json:"jobDescription"`
	SourceType      string  `json:"sourceType"`
	JobBoardID      *string `json:"jobBoardId"`
}

type applicationPatchRequest struct {
	Company         *string `json:"company"`
	PositionTitle   *string `json:"positionTitle"`
	ApplicationDate *string `json:"applicationDate"`
	InterestRating  *int    `json:"interestRating"`
	NextEventDate   *string `json:"nextEventDate"`
	JobPostingURL   *string `json:"jobPostingUrl"`
	JobDescription  *string `json:"jobDescription"`
	SourceType      *string `json:"sourceType"`
	JobBoardID      *string `json:"jobBoardId"`
}

type statusRequest struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Note     *string `json:"note"`
}

type noteRequest struct {
	Content string `json:"content"`
}

// applicationResponse adds derived fields to the stored application.
type applicationResponse struct {
	*domain.JobApplication
	CurrentStatus *domain.ApplicationStatus `json:"currentStatus,omitempty"`
	Overdue       bool                      `json:"overdue"`
}

func (h *ApplicationHandler) toResponse(app *domain.JobApplication) applicationResponse {
	resp := applicationResponse{JobApplication: app, Overdue: app.IsOverdue(h.now())}
	if st, ok := app.CurrentStatus(); ok {
		resp.CurrentStatus = &st
	}
	return resp
}

func (h *ApplicationHandler) toResponses(apps []*domain.JobApplication) []applicationResponse {
	out := make([]applicationResponse, len(apps))
	for i, a := range apps {
		out[i] = h.toResponse(a)
	}
	return out
}

// List handles GET /api/applications?search=&category=&label=&source=&overdue=&sort=&limit=.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseApplicationFilter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	apps, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponses(apps))
}

// ListOverdue handles GET /api/applications/overdue.
func (h *ApplicationHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.ListOverdue(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponses(apps))
}

// Create handles POST /api/applications.
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	boardID, err := optionalID("jobBoardId", req.JobBoardID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if boardID != nil && *boardID == uuid.Nil {
		boardID = nil
	}

	app, err := h.svc.Create(r.Context(), domain.JobApplicationInput{
		Company:         req.Company,
		PositionTitle:   req.PositionTitle,
		ApplicationDate: req.ApplicationDate,
		InterestRating:  req.InterestRating,
		NextEventDate:   req.NextEventDate,
		JobPostingURL:   req.JobPostingURL,
		JobDescription:  req.JobDescription,
		SourceType:      req.SourceType,
		JobBoardID:      boardID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.toResponse(app))
}

// Get handles GET /api/applications/{id}.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	app, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponse(app))
}

// Update handles PATCH /api/applications/{id}.
func (h *ApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req applicationPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	boardID, err := optionalID("jobBoardId", req.JobBoardID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	app, err := h.svc.Update(r.Context(), application.UpdateInput{
		ID: id,
		Patch: domain.JobApplicationPatch{
			Company:         req.Company,
			PositionTitle:   req.PositionTitle,
			ApplicationDate: req.ApplicationDate,
			InterestRating:  req.InterestRating,
			NextEventDate:   req.NextEventDate,
			JobPostingURL:   req.JobPostingURL,
			JobDescription:  req.JobDescription,
			SourceType:      req.SourceType,
			JobBoardID:      boardID,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponse(app))
}

// SetStatus handles POST /api/applications/{id}/status.
func (h *ApplicationHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	app, err := h.svc.SetStatus(r.Context(), application.SetStatusInput{
		ID:       id,
		Category: req.Category,
		Label:    req.Label,
		Note:     req.Note,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponse(app))
}

// Delete handles DELETE /api/applications/{id}.
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// AddNote handles POST /api/applications/{id}/notes.
func (h *ApplicationHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req noteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	note, err := h.svc.AddNote(r.Context(), application.NoteInput{ApplicationID: id, Content: req.Content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// EditNote handles PATCH /api/applications/{id}/notes/{noteId}.
func (h *ApplicationHandler) EditNote(w http.ResponseWriter, r *http.Request) {
	in, err := noteTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req noteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	in.Content = req.Content

	note, err := h.svc.EditNote(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// RemoveNote handles DELETE /api/applications/{id}/notes/{noteId}.
func (h *ApplicationHandler) RemoveNote(w http.ResponseWriter, r *http.Request) {
	in, err := noteTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.RemoveNote(r.Context(), in); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func noteTarget(r *http.Request) (application.NoteInput, error) {
	appID, err := pathID(r, "id")
	if err != nil {
		return application.NoteInput{}, err
	}
	noteID, err := pathID(r, "noteId")
	if err != nil {
		return application.NoteInput{}, err
	}
	return application.NoteInput{ApplicationID: appID, NoteID: noteID}, nil
}

func parseApplicationFilter(r *http.Request) (domain.ApplicationFilter, error) {
	q := r.URL.Query()
	var (
		f    domain.ApplicationFilter
		errs []domain.FieldError
	)

	if v := strings.TrimSpace(q.Get("search")); v != "" {
		f.Search = &v
	}
	if v := strings.TrimSpace(q.Get("category")); v != "" {
		c := domain.StatusCategory(strings.ToLower(v))
		if !c.IsValid() {
			errs = append(errs, domain.FieldError{Field: "category", Message: "must be active or inactive"})
		}
		f.Category = &c
	}
	if v := strings.TrimSpace(q.Get("label")); v != "" {
		f.Label = &v
	}
	if v := strings.TrimSpace(q.Get("source")); v != "" {
		s := domain.SourceType(strings.ToLower(v))
		if !s.IsValid() {
			errs = append(errs, domain.FieldError{Field: "source", Message: "unknown source type"})
		}
		f.Source = &s
	}
	switch v := q.Get("overdue"); v {
	case "", "false", "0":
	case "true", "1":
		f.Overdue = true
	default:
		errs = append(errs, domain.FieldError{Field: "overdue", Message: "must be a boolean"})
	}
	switch v := q.Get("sort"); v {
	case "", domain.SortByApplicationDate, domain.SortByCompany, domain.SortByUpdatedAt:
		f.SortBy = v
	default:
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be application_date, company or updated_at"})
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be a non-negative integer"})
	}
	f.Limit = limit

	if len(errs) > 0 {
		return domain.ApplicationFilter{}, domain.NewValidationErrors(errs)
	}
	return f, nil
}
