package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JobApplication is the aggregate root: it owns its status log and notes and
// is the only mutation entry point for them.
type JobApplication struct {
	ID              uuid.UUID  `json:"id"`
	Company         string     `json:"company"`
	PositionTitle   string     `json:"positionTitle"`
	ApplicationDate time.Time  `json:"applicationDate"`
	InterestRating  *int       `json:"interestRating,omitempty"`
	NextEventDate   *time.Time `json:"nextEventDate,omitempty"`
	JobPostingURL   *string    `json:"jobPostingUrl,omitempty"`
	JobDescription  *string    `json:"jobDescription,omitempty"`
	SourceType      SourceType `json:"sourceType"`
	JobBoardID      *uuid.UUID `json:"jobBoardId,omitempty"`
	StatusLog       StatusLog  `json:"statusLog"`
	Notes           []Note     `json:"notes"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Note is a free-text note owned by a JobApplication.
type Note struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JobApplicationInput holds raw creation data. Strings are trimmed and
// dates parsed during construction.
type JobApplicationInput struct {
	Company         string
	PositionTitle   string
	ApplicationDate string
	InterestRating  *int
	NextEventDate   string
	JobPostingURL   string
	JobDescription  string
	SourceType      string
	JobBoardID      *uuid.UUID
}

// JobApplicationPatch is a partial update. nil leaves a field unchanged; an
// empty string, 0 or uuid.Nil clears an optional field.
type JobApplicationPatch struct {
	Company         *string
	PositionTitle   *string
	ApplicationDate *string
	InterestRating  *int
	NextEventDate   *string
	JobPostingURL   *string
	JobDescription  *string
	SourceType      *string
	JobBoardID      *uuid.UUID
}

// IsEmpty reports whether the patch changes nothing.
func (p JobApplicationPatch) IsEmpty() bool {
	return p.Company == nil && p.PositionTitle == nil && p.ApplicationDate == nil &&
		p.InterestRating == nil && p.NextEventDate == nil && p.JobPostingURL == nil &&
		p.JobDescription == nil && p.SourceType == nil && p.JobBoardID == nil
}

const (
	MinInterestRating = 1
	MaxInterestRating = 3
)

// NewJobApplication validates input and builds an application with a fresh
// status log seeded with {active, applied}. CreatedAt equals UpdatedAt.
func NewJobApplication(id uuid.UUID, in JobApplicationInput, now time.Time) (*JobApplication, error) {
	var errs fieldErrors

	if id == uuid.Nil {
		errs.add("id", "required")
	}

	company := strings.TrimSpace(in.Company)
	if company == "" {
		errs.add("company", "required")
	}
	position := strings.TrimSpace(in.PositionTitle)
	if position == "" {
		errs.add("position_title", "required")
	}

	var appDate time.Time
	if strings.TrimSpace(in.ApplicationDate) == "" {
		errs.add("application_date", "required")
	} else if t, err := ParseDate(in.ApplicationDate); err != nil {
		errs.add("application_date", "must be an ISO-8601 date")
	} else {
		appDate = t
	}

	rating := validateRating(&errs, in.InterestRating)
	nextEvent := parseOptionalDate(&errs, "next_event_date", in.NextEventDate)
	postingURL := validateURL(&errs, "job_posting_url", in.JobPostingURL)
	description := trimOrNil(in.JobDescription)

	source := SourceOther
	if s := strings.TrimSpace(in.SourceType); s != "" {
		source = SourceType(strings.ToLower(s))
		if !source.IsValid() {
			errs.add("source_type", "unknown source type")
		}
	}

	var boardID *uuid.UUID
	if in.JobBoardID != nil && *in.JobBoardID != uuid.Nil {
		bid := *in.JobBoardID
		boardID = &bid
	}

	if err := errs.err(); err != nil {
		return nil, err
	}

	ts := Truncate(now)
	log, err := StatusLog(nil).appended(ts, ActiveStatus(LabelApplied))
	if err != nil {
		return nil, err
	}

	return &JobApplication{
		ID:              id,
		Company:         company,
		PositionTitle:   position,
		ApplicationDate: appDate,
		InterestRating:  rating,
		NextEventDate:   nextEvent,
		JobPostingURL:   postingURL,
		JobDescription:  description,
		SourceType:      source,
		JobBoardID:      boardID,
		StatusLog:       log,
		Notes:           []Note{},
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}, nil
}

// Update merges patch over the application. The id, createdAt and status log
// are never touched. Validation happens before any field changes.
func (a *JobApplication) Update(p JobApplicationPatch, now time.Time) error {
	var errs fieldErrors
	next := *a

	if p.Company != nil {
		if c := strings.TrimSpace(*p.Company); c == "" {
			errs.add("company", "required")
		} else {
			next.Company = c
		}
	}
	if p.PositionTitle != nil {
		if pt := strings.TrimSpace(*p.PositionTitle); pt == "" {
			errs.add("position_title", "required")
		} else {
			next.PositionTitle = pt
		}
	}
	if p.ApplicationDate != nil {
		if t, err := ParseDate(*p.ApplicationDate); err != nil {
			errs.add("application_date", "must be an ISO-8601 date")
		} else {
			next.ApplicationDate = t
		}
	}
	if p.InterestRating != nil {
		if *p.InterestRating == 0 {
			next.InterestRating = nil
		} else {
			next.InterestRating = validateRating(&errs, p.InterestRating)
		}
	}
	if p.NextEventDate != nil {
		next.NextEventDate = parseOptionalDate(&errs, "next_event_date", *p.NextEventDate)
	}
	if p.JobPostingURL != nil {
		next.JobPostingURL = validateURL(&errs, "job_posting_url", *p.JobPostingURL)
	}
	if p.JobDescription != nil {
		next.JobDescription = trimOrNil(*p.JobDescription)
	}
	if p.SourceType != nil {
		st := SourceType(strings.ToLower(strings.TrimSpace(*p.SourceType)))
		if st == "" {
			st = SourceOther
		}
		if !st.IsValid() {
			errs.add("source_type", "unknown source type")
		} else {
			next.SourceType = st
		}
	}
	if p.JobBoardID != nil {
		if *p.JobBoardID == uuid.Nil {
			next.JobBoardID = nil
		} else {
			bid := *p.JobBoardID
			next.JobBoardID = &bid
		}
	}

	if err := errs.err(); err != nil {
		return err
	}

	next.UpdatedAt = NextTimestamp(a.latest(), now)
	*a = next
	return nil
}

// NewStatus appends status to the log at the next monotonic timestamp and
// bumps UpdatedAt to the same instant.
func (a *JobApplication) NewStatus(status ApplicationStatus, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	ts := NextTimestamp(a.latest(), now)
	log, err := a.StatusLog.appended(ts, status.normalized())
	if err != nil {
		return err
	}
	a.StatusLog = log
	a.UpdatedAt = ts
	return nil
}

// CurrentStatus returns the status paired with the latest log timestamp.
func (a *JobApplication) CurrentStatus() (ApplicationStatus, bool) {
	return a.StatusLog.Current()
}

// IsOverdue is true iff NextEventDate is set and strictly before now.
func (a *JobApplication) IsOverdue(now time.Time) bool {
	return a.NextEventDate != nil && a.NextEventDate.Before(now)
}

// AddNote appends a note and bumps UpdatedAt.
func (a *JobApplication) AddNote(id uuid.UUID, content string, now time.Time) (*Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, NewValidationError("content", "required")
	}
	ts := NextTimestamp(a.latest(), now)
	a.Notes = append(a.Notes, Note{ID: id, Content: content, CreatedAt: ts, UpdatedAt: ts})
	a.UpdatedAt = ts
	n := a.Notes[len(a.Notes)-1]
	return &n, nil
}

// EditNote replaces the content of an existing note.
func (a *JobApplication) EditNote(id uuid.UUID, content string, now time.Time) (*Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, NewValidationError("content", "required")
	}
	i := a.noteIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	ts := NextTimestamp(a.latest(), now)
	a.Notes[i].Content = content
	a.Notes[i].UpdatedAt = ts
	a.UpdatedAt = ts
	n := a.Notes[i]
	return &n, nil
}

// RemoveNote deletes a note.
func (a *JobApplication) RemoveNote(id uuid.UUID, now time.Time) error {
	i := a.noteIndex(id)
	if i < 0 {
		return fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	a.Notes = append(a.Notes[:i:i], a.Notes[i+1:]...)
	a.UpdatedAt = NextTimestamp(a.latest(), now)
	return nil
}

// Clone returns a deep copy safe to mutate independently.
func (a *JobApplication) Clone() *JobApplication {
	c := *a
	c.InterestRating = clonePtr(a.InterestRating)
	c.NextEventDate = clonePtr(a.NextEventDate)
	c.JobPostingURL = clonePtr(a.JobPostingURL)
	c.JobDescription = clonePtr(a.JobDescription)
	c.JobBoardID = clonePtr(a.JobBoardID)
	c.StatusLog = a.StatusLog.Clone()
	if a.Notes != nil {
		c.Notes = make([]Note, len(a.Notes))
		copy(c.Notes, a.Notes)
	}
	return &c
}

// latest is the greater of UpdatedAt and the last log timestamp.
func (a *JobApplication) latest() time.Time {
	if last := a.StatusLog.Last(); last.After(a.UpdatedAt) {
		return last
	}
	return a.UpdatedAt
}

func (a *JobApplication) noteIndex(id uuid.UUID) int {
	for i := range a.Notes {
		if a.Notes[i].ID == id {
			return i
		}
	}
	return -1
}

func validateRating(errs *fieldErrors, r *int) *int {
	if r == nil {
		return nil
	}
	if *r < MinInterestRating || *r > MaxInterestRating {
		errs.add("interest_rating", fmt.Sprintf("must be between %d and %d", MinInterestRating, MaxInterestRating))
		return nil
	}
	v := *r
	return &v
}

func validateURL(errs *fieldErrors, field, raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs.add(field, "must be an http(s) URL")
		return nil
	}
	return &raw
}
