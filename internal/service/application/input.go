package application

import (
	"strings"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// UpdateInput holds the parameters for a partial application update.
type UpdateInput struct {
	ID    uuid.UUID
	Patch domain.JobApplicationPatch
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Patch.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetStatusInput appends a status to an application's log. An empty Category
// is resolved from the pipeline config.
type SetStatusInput struct {
	ID       uuid.UUID
	Category string
	Label    string
	Note     *string
}

// Validate checks all fields and collects all errors.
func (i SetStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(i.Label) == "" {
		errs = append(errs, domain.FieldError{Field: "status.label", Message: "required"})
	}
	if c := strings.TrimSpace(i.Category); c != "" && !domain.StatusCategory(c).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status.category", Message: "must be active or inactive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// NoteInput identifies a note and carries its content.
type NoteInput struct {
	ApplicationID uuid.UUID
	NoteID        uuid.UUID
	Content       string
}

// validate checks all fields and collects all errors. Adding a note needs no
// note id; removing one needs no content.
func (i NoteInput) validate(requireNote, requireContent bool) error {
	var errs []domain.FieldError

	if i.ApplicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "application_id", Message: "required"})
	}
	if requireNote && i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "note_id", Message: "required"})
	}
	if requireContent && strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
