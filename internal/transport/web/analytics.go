package web

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/analytics"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

type analyticsPage struct {
	Title      string
	Start      string
	End        string
	FormErrors []domain.FieldError
	Report     *analytics.CombinedAnalytics
}

// Analytics handles GET /analytics?start=&end=.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	page := analyticsPage{
		Title: "Analytics",
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}

	rng, err := analytics.ParseDateRange(page.Start, page.End)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		page.FormErrors = verr.Errors
		h.render(w, r, http.StatusBadRequest, "analytics", page)
		return
	}

	report, err := h.analytics.ComputeAll(r.Context(), rng)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	page.Report = &report
	h.render(w, r, http.StatusOK, "analytics", page)
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, errors.New("id must be a UUID")
	}
	return id, nil
}
