package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// Create stores a contact for an existing application.
func (s *Service) Create(ctx context.Context, in domain.ContactInput) (*domain.Contact, error) {
	c, err := domain.NewContact(s.newID(), in, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if _, err := s.apps.GetByID(ctx, in.JobApplicationID); err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	created, err := s.contacts.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	s.log.InfoContext(ctx, "contact created",
		slog.String("contact_id", created.ID.String()),
		slog.String("application_id", created.JobApplicationID.String()),
		slog.String("channel", created.Channel.String()),
	)

	return created, nil
}

// Get returns a contact by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

// List returns every contact.
func (s *Service) List(ctx context.Context) ([]*domain.Contact, error) {
	cs, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return cs, nil
}

// ListByApplication returns the contacts of one application.
func (s *Service) ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.Contact, error) {
	cs, err := s.contacts.ListByApplication(ctx, appID)
	if err != nil {
		return nil, fmt.Errorf("list contacts by application: %w", err)
	}
	return cs, nil
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch domain.ContactPatch) (*domain.Contact, error) {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}

	if err := c.Update(patch, s.clock.Now()); err != nil {
		return nil, err
	}

	updated, err := s.contacts.Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}

	s.log.InfoContext(ctx, "contact updated",
		slog.String("contact_id", id.String()),
		slog.Bool("response_received", updated.ResponseReceived),
	)

	return updated, nil
}

// Delete removes a contact.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	s.log.InfoContext(ctx, "contact deleted", slog.String("contact_id", id.String()))
	return nil
}
