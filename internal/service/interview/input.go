package interview

import (
	"strings"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// QuestionInput addresses a question on a stage. QuestionID is ignored by
// AddQuestion. Nil Title or Answer leaves the value unchanged on update.
type QuestionInput struct {
	StageID    uuid.UUID
	QuestionID uuid.UUID
	Title      *string
	Answer     *string
}

func (i QuestionInput) validate(requireQuestion, requireTitle bool) error {
	var errs []domain.FieldError

	if i.StageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "stage_id", Message: "required"})
	}
	if requireQuestion && i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if requireTitle && (i.Title == nil || strings.TrimSpace(*i.Title) == "") {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
