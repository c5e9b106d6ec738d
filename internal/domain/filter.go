package domain

import (
	"sort"
	"strings"
	"time"
)

// ApplicationFilter narrows an application listing. Zero-value fields are ignored.
type ApplicationFilter struct {
	Search   *string
	Category *StatusCategory
	Label    *string
	Source   *SourceType
	Overdue  bool
	SortBy   string
	Limit    int
}

// Sort keys accepted by ApplicationFilter.SortBy.
const (
	SortByApplicationDate = "application_date"
	SortByCompany         = "company"
	SortByUpdatedAt       = "updated_at"
)

// Match reports whether app satisfies every filter criterion.
func (f ApplicationFilter) Match(app *JobApplication, now time.Time) bool {
	if f.Search != nil {
		q := strings.ToLower(strings.TrimSpace(*f.Search))
		if q != "" &&
			!strings.Contains(strings.ToLower(app.Company), q) &&
			!strings.Contains(strings.ToLower(app.PositionTitle), q) {
			return false
		}
	}
	if f.Category != nil || f.Label != nil {
		st, ok := app.CurrentStatus()
		if !ok {
			return false
		}
		if f.Category != nil && st.Category != *f.Category {
			return false
		}
		if f.Label != nil && !st.Is(*f.Label) {
			return false
		}
	}
	if f.Source != nil && app.SourceType != *f.Source {
		return false
	}
	if f.Overdue && !app.IsOverdue(now) {
		return false
	}
	return true
}

// Apply filters, sorts and limits apps. The input slice is not modified.
func (f ApplicationFilter) Apply(apps []*JobApplication, now time.Time) []*JobApplication {
	out := make([]*JobApplication, 0, len(apps))
	for _, a := range apps {
		if f.Match(a, now) {
			out = append(out, a)
		}
	}

	var less func(a, b *JobApplication) bool
	switch f.SortBy {
	case SortByCompany:
		less = func(a, b *JobApplication) bool {
			return strings.ToLower(a.Company) < strings.ToLower(b.Company)
		}
	case SortByUpdatedAt:
		less = func(a, b *JobApplication) bool { return a.UpdatedAt.After(b.UpdatedAt) }
	default:
		less = func(a, b *JobApplication) bool {
			if a.ApplicationDate.Equal(b.ApplicationDate) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ApplicationDate.After(b.ApplicationDate)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}
