package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// InterviewStage is one interview round of a job application.
type InterviewStage struct {
	ID               uuid.UUID     `json:"id"`
	JobApplicationID uuid.UUID     `json:"jobApplicationId"`
	Round            int           `json:"round"`
	InterviewType    InterviewType `json:"interviewType"`
	IsFinalRound     bool          `json:"isFinalRound"`
	ScheduledDate    *time.Time    `json:"scheduledDate,omitempty"`
	CompletedDate    *time.Time    `json:"completedDate,omitempty"`
	Notes            *string       `json:"notes,omitempty"`
	Questions        []Question    `json:"questions"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// Question is an interview question with an optional answer.
type Question struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Answer *string   `json:"answer,omitempty"`
}

type InterviewStageInput struct {
	JobApplicationID uuid.UUID
	Round            int
	InterviewType    string
	IsFinalRound     bool
	ScheduledDate    string
	CompletedDate    string
	Notes            string
}

type InterviewStagePatch struct {
	Round         *int
	InterviewType *string
	IsFinalRound  *bool
	ScheduledDate *string
	CompletedDate *string
	Notes         *string
}

// NewInterviewStage validates input and builds a stage with no questions.
func NewInterviewStage(id uuid.UUID, in InterviewStageInput, now time.Time) (*InterviewStage, error) {
	var errs fieldErrors

	if id == uuid.Nil {
		errs.add("id", "required")
	}
	if in.JobApplicationID == uuid.Nil {
		errs.add("job_application_id", "required")
	}
	if in.Round < 1 {
		errs.add("round", "must be at least 1")
	}
	typ := parseInterviewType(&errs, in.InterviewType)
	scheduled := parseOptionalDate(&errs, "scheduled_date", in.ScheduledDate)
	completed := parseOptionalDate(&errs, "completed_date", in.CompletedDate)

	if err := errs.err(); err != nil {
		return nil, err
	}

	ts := Truncate(now)
	return &InterviewStage{
		ID:               id,
		JobApplicationID: in.JobApplicationID,
		Round:            in.Round,
		InterviewType:    typ,
		IsFinalRound:     in.IsFinalRound,
		ScheduledDate:    scheduled,
		CompletedDate:    completed,
		Notes:            trimOrNil(in.Notes),
		Questions:        []Question{},
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}, nil
}

// Update merges patch over the stage.
func (s *InterviewStage) Update(p InterviewStagePatch, now time.Time) error {
	var errs fieldErrors
	next := *s

	if p.Round != nil {
		if *p.Round < 1 {
			errs.add("round", "must be at least 1")
		} else {
			next.Round = *p.Round
		}
	}
	if p.InterviewType != nil {
		next.InterviewType = parseInterviewType(&errs, *p.InterviewType)
	}
	if p.IsFinalRound != nil {
		next.IsFinalRound = *p.IsFinalRound
	}
	if p.ScheduledDate != nil {
		next.ScheduledDate = parseOptionalDate(&errs, "scheduled_date", *p.ScheduledDate)
	}
	if p.CompletedDate != nil {
		next.CompletedDate = parseOptionalDate(&errs, "completed_date", *p.CompletedDate)
	}
	if p.Notes != nil {
		next.Notes = trimOrNil(*p.Notes)
	}

	if err := errs.err(); err != nil {
		return err
	}

	next.UpdatedAt = NextTimestamp(s.UpdatedAt, now)
	*s = next
	return nil
}

// AddQuestion appends a question to the end of the list.
func (s *InterviewStage) AddQuestion(id uuid.UUID, title, answer string, now time.Time) (*Question, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, NewValidationError("title", "required")
	}
	q := Question{ID: id, Title: title, Answer: trimOrNil(answer)}
	s.Questions = append(s.Questions, q)
	s.UpdatedAt = NextTimestamp(s.UpdatedAt, now)
	return &q, nil
}

// UpdateQuestion replaces title and/or answer. A nil argument leaves the value
// unchanged; an empty answer clears it.
func (s *InterviewStage) UpdateQuestion(id uuid.UUID, title, answer *string, now time.Time) (*Question, error) {
	i := s.questionIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("question %s: %w", id, ErrNotFound)
	}
	q := s.Questions[i]
	if title != nil {
		t := strings.TrimSpace(*title)
		if t == "" {
			return nil, NewValidationError("title", "required")
		}
		q.Title = t
	}
	if answer != nil {
		q.Answer = trimOrNil(*answer)
	}
	s.Questions[i] = q
	s.UpdatedAt = NextTimestamp(s.UpdatedAt, now)
	return &q, nil
}

// RemoveQuestion deletes a question, preserving the order of the rest.
func (s *InterviewStage) RemoveQuestion(id uuid.UUID, now time.Time) error {
	i := s.questionIndex(id)
	if i < 0 {
		return fmt.Errorf("question %s: %w", id, ErrNotFound)
	}
	s.Questions = append(s.Questions[:i:i], s.Questions[i+1:]...)
	s.UpdatedAt = NextTimestamp(s.UpdatedAt, now)
	return nil
}

// IsCompleted reports whether the stage has a completion date.
func (s *InterviewStage) IsCompleted() bool { return s.CompletedDate != nil }

// Clone returns a deep copy.
func (s *InterviewStage) Clone() *InterviewStage {
	out := *s
	out.ScheduledDate = clonePtr(s.ScheduledDate)
	out.CompletedDate = clonePtr(s.CompletedDate)
	out.Notes = clonePtr(s.Notes)
	if s.Questions != nil {
		out.Questions = make([]Question, len(s.Questions))
		for i, q := range s.Questions {
			out.Questions[i] = Question{ID: q.ID, Title: q.Title, Answer: clonePtr(q.Answer)}
		}
	}
	return &out
}

func (s *InterviewStage) questionIndex(id uuid.UUID) int {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return i
		}
	}
	return -1
}

func parseInterviewType(errs *fieldErrors, raw string) InterviewType {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return InterviewOther
	}
	t := InterviewType(raw)
	if !t.IsValid() {
		errs.add("interview_type", "unknown interview type")
		return InterviewOther
	}
	return t
}
