package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/service/application"
)

type filterView struct {
	Search   string
	Category string
	Overdue  bool
}

type formView struct {
	Company         string
	PositionTitle   string
	ApplicationDate string
	NextEventDate   string
	JobPostingURL   string
	SourceType      string
}

type rowView struct {
	App     *domain.JobApplication
	Status  domain.ApplicationStatus
	Overdue bool
	Labels  domain.PipelineConfig
	Error   string
}

type applicationsPage struct {
	Title      string
	Filter     filterView
	Form       formView
	FormErrors []domain.FieldError
	Sources    []domain.SourceType
	Rows       []rowView
}

var sourceTypes = []domain.SourceType{
	domain.SourceJobBoard,
	domain.SourceReferral,
	domain.SourceRecruiter,
	domain.SourceCompanyWebsite,
	domain.SourceNetworking,
	domain.SourceOther,
}

func (h *Handler) row(app *domain.JobApplication, labels domain.PipelineConfig) rowView {
	st, _ := app.CurrentStatus()
	return rowView{App: app, Status: st, Overdue: app.IsOverdue(h.now()), Labels: labels}
}

// Applications handles GET /applications. HTMX requests get only the table
// rows, which lets the filter form refresh the list in place.
func (h *Handler) Applications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fv := filterView{
		Search:   strings.TrimSpace(q.Get("search")),
		Category: strings.TrimSpace(q.Get("category")),
		Overdue:  q.Get("overdue") == "true",
	}

	filter := domain.ApplicationFilter{Overdue: fv.Overdue}
	if fv.Search != "" {
		filter.Search = &fv.Search
	}
	if fv.Category != "" {
		c := domain.StatusCategory(fv.Category)
		if !c.IsValid() {
			http.Error(w, "category must be active or inactive", http.StatusBadRequest)
			return
		}
		filter.Category = &c
	}

	page, err := h.page(r, filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	page.Filter = fv

	if isHTMX(r) {
		h.render(w, r, http.StatusOK, "rows", page)
		return
	}
	h.render(w, r, http.StatusOK, "applications", page)
}

func (h *Handler) page(r *http.Request, filter domain.ApplicationFilter) (applicationsPage, error) {
	labels, err := h.pipeline.Get(r.Context())
	if err != nil {
		return applicationsPage{}, err
	}
	apps, err := h.apps.List(r.Context(), filter)
	if err != nil {
		return applicationsPage{}, err
	}

	rows := make([]rowView, len(apps))
	for i, a := range apps {
		rows[i] = h.row(a, labels)
	}
	return applicationsPage{
		Title:   "Applications",
		Form:    formView{ApplicationDate: h.now().UTC().Format(time.DateOnly)},
		Sources: sourceTypes,
		Rows:    rows,
	}, nil
}

// CreateApplication handles the create form. HTMX requests get the new row;
// plain form posts are redirected back to the list. Validation failures
// re-render the form with the submitted values.
func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	form := formView{
		Company:         r.PostForm.Get("company"),
		PositionTitle:   r.PostForm.Get("positionTitle"),
		ApplicationDate: r.PostForm.Get("applicationDate"),
		NextEventDate:   r.PostForm.Get("nextEventDate"),
		JobPostingURL:   r.PostForm.Get("jobPostingUrl"),
		SourceType:      r.PostForm.Get("sourceType"),
	}

	app, err := h.apps.Create(r.Context(), domain.JobApplicationInput{
		Company:         form.Company,
		PositionTitle:   form.PositionTitle,
		ApplicationDate: form.ApplicationDate,
		NextEventDate:   form.NextEventDate,
		JobPostingURL:   form.JobPostingURL,
		SourceType:      form.SourceType,
	})

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		page := applicationsPage{Title: "Applications", Form: form, FormErrors: verr.Errors, Sources: sourceTypes}
		if isHTMX(r) {
			w.Header().Set("HX-Retarget", "#create-form")
			w.Header().Set("HX-Reswap", "outerHTML")
			h.render(w, r, http.StatusUnprocessableEntity, "form", page)
			return
		}
		full, perr := h.page(r, domain.ApplicationFilter{})
		if perr != nil {
			h.fail(w, r, perr)
			return
		}
		full.Form, full.FormErrors = form, verr.Errors
		h.render(w, r, http.StatusUnprocessableEntity, "applications", full)
		return
	case err != nil:
		h.fail(w, r, err)
		return
	}

	if !isHTMX(r) {
		http.Redirect(w, r, "/applications", http.StatusSeeOther)
		return
	}

	labels, err := h.pipeline.Get(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("HX-Trigger", "application-created")
	h.render(w, r, http.StatusCreated, "row", h.row(app, labels))
}

// SetStatus handles POST /applications/{id}/status and returns the updated
// row. A rejected label re-renders the unchanged row with the error.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	labels, err := h.pipeline.Get(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	app, err := h.apps.SetStatus(r.Context(), application.SetStatusInput{
		ID:       id,
		Category: r.PostForm.Get("category"),
		Label:    r.PostForm.Get("label"),
	})
	if err != nil {
		if isHTMX(r) && errors.Is(err, domain.ErrValidation) {
			h.rejectStatus(w, r, id, labels, err)
			return
		}
		h.fail(w, r, err)
		return
	}

	if !isHTMX(r) {
		http.Redirect(w, r, "/applications", http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, "row", h.row(app, labels))
}

// rejectStatus renders the stored row with the validation message. HTMX only
// swaps 2xx responses, so the row is returned with 200.
func (h *Handler) rejectStatus(w http.ResponseWriter, r *http.Request, id uuid.UUID, labels domain.PipelineConfig, cause error) {
	app, err := h.apps.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	row := h.row(app, labels)
	row.Error = cause.Error()
	var ve *domain.ValidationError
	if errors.As(cause, &ve) {
		msgs := make([]string, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			msgs = append(msgs, fe.Message)
		}
		row.Error = strings.Join(msgs, "; ")
	}
	h.render(w, r, http.StatusOK, "row", row)
}

// DeleteApplication handles DELETE /applications/{id} (HTMX, empty body
// removes the row) and POST /applications/{id}/delete (plain form).
func (h *Handler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.apps.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	if r.Method == http.MethodPost && !isHTMX(r) {
		http.Redirect(w, r, "/applications", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusOK)
}
