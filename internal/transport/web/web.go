// Package web serves the server-rendered HTML interface. Requests sent by
// HTMX (HX-Request: true) receive fragments instead of full pages.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/analytics"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/service/application"
)

//go:embed templates/*.html
var templateFS embed.FS

type applicationService interface {
	Create(ctx context.Context, in domain.JobApplicationInput) (*domain.JobApplication, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error)
	List(ctx context.Context, filter domain.ApplicationFilter) ([]*domain.JobApplication, error)
	SetStatus(ctx context.Context, input application.SetStatusInput) (*domain.JobApplication, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type pipelineService interface {
	Get(ctx context.Context) (domain.PipelineConfig, error)
}

type analyticsService interface {
	ComputeAll(ctx context.Context, r *analytics.DateRange) (analytics.CombinedAnalytics, error)
}

// Handler renders the HTML pages.
type Handler struct {
	apps      applicationService
	pipeline  pipelineService
	analytics analyticsService
	tmpl      *template.Template
	now       func() time.Time
	log       *slog.Logger
}

// NewHandler parses the embedded templates and creates a Handler.
func NewHandler(
	apps applicationService,
	pipeline pipelineService,
	analytics analyticsService,
	logger *slog.Logger,
) (*Handler, error) {
	tmpl, err := template.New("web").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handler{
		apps:      apps,
		pipeline:  pipeline,
		analytics: analytics,
		tmpl:      tmpl,
		now:       time.Now,
		log:       logger.With("handler", "web"),
	}, nil
}

// Register mounts the HTML routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("GET /applications", h.Applications)
	mux.HandleFunc("POST /applications", h.CreateApplication)
	mux.HandleFunc("POST /applications/{id}/status", h.SetStatus)
	mux.HandleFunc("DELETE /applications/{id}", h.DeleteApplication)
	mux.HandleFunc("POST /applications/{id}/delete", h.DeleteApplication)
	mux.HandleFunc("GET /analytics", h.Analytics)
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format(time.DateOnly)
	},
	"deref":     func(s *string) string { return *s },
	"derefTime": func(t *time.Time) time.Time { return *t },
	"percent":   func(r float64) string { return fmt.Sprintf("%.0f%%", r*100) },
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// render executes a named template into a buffer so a failure never leaves a
// half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.log.ErrorContext(r.Context(), "render template",
			slog.String("template", name),
			slog.String("error", err.Error()),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w) //nolint:errcheck
}

// fail maps service errors to a plain-text response.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		h.log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// Index handles GET /.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/applications", http.StatusSeeOther)
}
