package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// AddNote appends a note to the application.
func (s *Service) AddNote(ctx context.Context, input NoteInput) (*domain.Note, error) {
	if err := input.validate(false, true); err != nil {
		return nil, err
	}

	var note *domain.Note
	err := s.mutate(ctx, input, func(app *domain.JobApplication) error {
		var err error
		note, err = app.AddNote(s.newID(), input.Content, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note added",
		slog.String("application_id", input.ApplicationID.String()),
		slog.String("note_id", note.ID.String()),
	)
	return note, nil
}

// EditNote replaces a note's content.
func (s *Service) EditNote(ctx context.Context, input NoteInput) (*domain.Note, error) {
	if err := input.validate(true, true); err != nil {
		return nil, err
	}

	var note *domain.Note
	err := s.mutate(ctx, input, func(app *domain.JobApplication) error {
		var err error
		note, err = app.EditNote(input.NoteID, input.Content, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note edited",
		slog.String("application_id", input.ApplicationID.String()),
		slog.String("note_id", note.ID.String()),
	)
	return note, nil
}

// RemoveNote deletes a note.
func (s *Service) RemoveNote(ctx context.Context, input NoteInput) error {
	if err := input.validate(true, false); err != nil {
		return err
	}

	err := s.mutate(ctx, input, func(app *domain.JobApplication) error {
		return app.RemoveNote(input.NoteID, s.now())
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "note removed",
		slog.String("application_id", input.ApplicationID.String()),
		slog.String("note_id", input.NoteID.String()),
	)
	return nil
}

// mutate loads the application, applies fn and persists the result.
func (s *Service) mutate(ctx context.Context, input NoteInput, fn func(*domain.JobApplication) error) error {
	app, err := s.apps.GetByID(ctx, input.ApplicationID)
	if err != nil {
		return fmt.Errorf("get application: %w", err)
	}
	if err := fn(app); err != nil {
		return err
	}
	if _, err := s.apps.Update(ctx, app); err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	return nil
}
