package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// DateRange bounds application dates by inclusive UTC calendar days. A zero
// Start or End leaves that side open.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls on a day within the range.
func (r DateRange) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(domain.StartOfDay(r.Start)) {
		return false
	}
	if !r.End.IsZero() && !t.Before(domain.StartOfDay(r.End).Add(day)) {
		return false
	}
	return true
}

// ParseDateRange builds a range from optional YYYY-MM-DD bounds. It returns
// nil when both are empty.
func ParseDateRange(start, end string) (*DateRange, error) {
	if start == "" && end == "" {
		return nil, nil
	}

	var (
		rng  DateRange
		errs []domain.FieldError
	)
	if start != "" {
		t, err := time.Parse(time.DateOnly, start)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "start", Message: "must be YYYY-MM-DD"})
		}
		rng.Start = t
	}
	if end != "" {
		t, err := time.Parse(time.DateOnly, end)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "end", Message: "must be YYYY-MM-DD"})
		}
		rng.End = t
	}
	if len(errs) == 0 && !rng.Start.IsZero() && !rng.End.IsZero() && rng.End.Before(rng.Start) {
		errs = append(errs, domain.FieldError{Field: "end", Message: "must not be before start"})
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return &rng, nil
}

// DefaultRange spans the earliest to latest application date. ok is false
// when apps is empty.
func DefaultRange(apps []*domain.JobApplication) (DateRange, bool) {
	if len(apps) == 0 {
		return DateRange{}, false
	}
	r := DateRange{Start: apps[0].ApplicationDate, End: apps[0].ApplicationDate}
	for _, a := range apps[1:] {
		if a.ApplicationDate.Before(r.Start) {
			r.Start = a.ApplicationDate
		}
		if a.ApplicationDate.After(r.End) {
			r.End = a.ApplicationDate
		}
	}
	r.Start = domain.StartOfDay(r.Start)
	r.End = domain.StartOfDay(r.End)
	return r, true
}

// FilterByDateRange keeps applications dated within r, then keeps only the
// contacts and stages that belong to a surviving application.
func FilterByDateRange(
	apps []*domain.JobApplication,
	contacts []*domain.Contact,
	stages []*domain.InterviewStage,
	r DateRange,
) ([]*domain.JobApplication, []*domain.Contact, []*domain.InterviewStage) {
	keep := make(map[uuid.UUID]struct{}, len(apps))
	outApps := make([]*domain.JobApplication, 0, len(apps))
	for _, a := range apps {
		if r.Contains(a.ApplicationDate) {
			keep[a.ID] = struct{}{}
			outApps = append(outApps, a)
		}
	}

	outContacts := make([]*domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if _, ok := keep[c.JobApplicationID]; ok {
			outContacts = append(outContacts, c)
		}
	}

	outStages := make([]*domain.InterviewStage, 0, len(stages))
	for _, s := range stages {
		if _, ok := keep[s.JobApplicationID]; ok {
			outStages = append(outStages, s)
		}
	}
	return outApps, outContacts, outStages
}

type CombinedAnalytics struct {
	Range        DateRange             `json:"range"`
	Applications ApplicationsAnalytics `json:"applications"`
	Contacts     ContactAnalytics      `json:"contacts"`
	Interviews   InterviewAnalytics    `json:"interviews"`
	GeneratedAt  time.Time             `json:"generatedAt"`
}

// Compute filters to r (or the full span of application dates when r is nil)
// and runs every report over the result.
func Compute(
	apps []*domain.JobApplication,
	contacts []*domain.Contact,
	stages []*domain.InterviewStage,
	r *DateRange,
	now time.Time,
) CombinedAnalytics {
	var rng DateRange
	if r != nil {
		rng = *r
	} else if def, ok := DefaultRange(apps); ok {
		rng = def
	}

	apps, contacts, stages = FilterByDateRange(apps, contacts, stages, rng)

	return CombinedAnalytics{
		Range:        rng,
		Applications: ComputeApplications(apps, now),
		Contacts:     ComputeContacts(apps, contacts),
		Interviews:   ComputeInterviews(apps, stages),
		GeneratedAt:  domain.Truncate(now),
	}
}
