package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/service/interview"
)

type interviewService interface {
	Create(ctx context.Context, in domain.InterviewStageInput) (*domain.InterviewStage, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.InterviewStage, error)
	List(ctx context.Context) ([]*domain.InterviewStage, error)
	ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.InterviewStage, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.InterviewStagePatch) (*domain.InterviewStage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddQuestion(ctx context.Context, in interview.QuestionInput) (*domain.InterviewStage, error)
	UpdateQuestion(ctx context.Context, in interview.QuestionInput) (*domain.InterviewStage, error)
	RemoveQuestion(ctx context.Context, in interview.QuestionInput) (*domain.InterviewStage, error)
}

// InterviewHandler serves /api/interviews.
type InterviewHandler struct {
	svc interviewService
	log *slog.Logger
}

// NewInterviewHandler creates an InterviewHandler.
func NewInterviewHandler(svc interviewService, logger *slog.Logger) *InterviewHandler {
	return &InterviewHandler{svc: svc, log: logger.With("handler", "interview")}
}

type interviewRequest struct {
	JobApplicationID string `json:"jobApplicationId"`
	Round            int    `json:"round"`
	InterviewType    string `json:"interviewType"`
	IsFinalRound     bool   `json:"isFinalRound"`
	ScheduledDate    string `json:"scheduledDate"`
	CompletedDate    string `json:"completedDate"`
	Notes            string `json:"notes"`
}

type interviewPatchRequest struct {
	Round         *int    `json:"round"`
	InterviewType *string `json:"interviewType"`
	IsFinalRound  *bool   `json:"isFinalRound"`
	ScheduledDate *string `json:"scheduledDate"`
	CompletedDate *string `json:"completedDate"`
	Notes         *string `json:"notes"`
}

type questionRequest struct {
	Title  *string `json:"title"`
	Answer *string `json:"answer"`
}

// List handles GET /api/interviews. An applicationId query narrows the list.
func (h *InterviewHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		stages []*domain.InterviewStage
		err    error
	)
	if raw := r.URL.Query().Get("applicationId"); raw != "" {
		appID, perr := uuid.Parse(raw)
		if perr != nil {
			handleError(h.log, w, r, domain.NewValidationError("applicationId", "must be a UUID"))
			return
		}
		stages, err = h.svc.ListByApplication(r.Context(), appID)
	} else {
		stages, err = h.svc.List(r.Context())
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stages)
}

// ListByApplication handles GET /api/applications/{id}/interviews.
func (h *InterviewHandler) ListByApplication(w http.ResponseWriter, r *http.Request) {
	appID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stages, err := h.svc.ListByApplication(r.Context(), appID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stages)
}

// Create handles POST /api/interviews.
func (h *InterviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req interviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	appID, err := uuid.Parse(req.JobApplicationID)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("jobApplicationId", "must be a UUID"))
		return
	}

	stage, err := h.svc.Create(r.Context(), domain.InterviewStageInput{
		JobApplicationID: appID,
		Round:            req.Round,
		InterviewType:    req.InterviewType,
		IsFinalRound:     req.IsFinalRound,
		ScheduledDate:    req.ScheduledDate,
		CompletedDate:    req.CompletedDate,
		Notes:            req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, stage)
}

// Get handles GET /api/interviews/{id}.
func (h *InterviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stage, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stage)
}

// Update handles PATCH /api/interviews/{id}.
func (h *InterviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req interviewPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stage, err := h.svc.Update(r.Context(), id, domain.InterviewStagePatch{
		Round:         req.Round,
		InterviewType: req.InterviewType,
		IsFinalRound:  req.IsFinalRound,
		ScheduledDate: req.ScheduledDate,
		CompletedDate: req.CompletedDate,
		Notes:         req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stage)
}

// Delete handles DELETE /api/interviews/{id}.
func (h *InterviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// ---------------------------------------------------------------------------
// Questions
// ---------------------------------------------------------------------------

// AddQuestion handles POST /api/interviews/{id}/questions.
func (h *InterviewHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	stageID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req questionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stage, err := h.svc.AddQuestion(r.Context(), interview.QuestionInput{
		StageID: stageID,
		Title:   req.Title,
		Answer:  req.Answer,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, stage)
}

// UpdateQuestion handles PATCH /api/interviews/{id}/questions/{questionId}.
func (h *InterviewHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	in, err := questionTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req questionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	in.Title, in.Answer = req.Title, req.Answer

	stage, err := h.svc.UpdateQuestion(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stage)
}

// RemoveQuestion handles DELETE /api/interviews/{id}/questions/{questionId}.
func (h *InterviewHandler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	in, err := questionTarget(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stage, err := h.svc.RemoveQuestion(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stage)
}

func questionTarget(r *http.Request) (interview.QuestionInput, error) {
	stageID, err := pathID(r, "id")
	if err != nil {
		return interview.QuestionInput{}, err
	}
	questionID, err := pathID(r, "questionId")
	if err != nil {
		return interview.QuestionInput{}, err
	}
	return interview.QuestionInput{StageID: stageID, QuestionID: questionID}, nil
}
