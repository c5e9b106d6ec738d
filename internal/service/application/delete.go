package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Delete removes an application together with its contacts and interview
// stages. Child cleanup is best-effort: failures are logged and do not block
// the delete.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get application: %w", err)
	}

	var contacts, stages int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var childErr error
		contacts, childErr = s.contacts.DeleteByApplication(txCtx, id)
		if childErr != nil {
			s.log.WarnContext(ctx, "delete application contacts",
				slog.String("application_id", id.String()),
				slog.String("error", childErr.Error()),
			)
		}

		stages, childErr = s.interviews.DeleteByApplication(txCtx, id)
		if childErr != nil {
			s.log.WarnContext(ctx, "delete application interview stages",
				slog.String("application_id", id.String()),
				slog.String("error", childErr.Error()),
			)
		}

		if deleteErr := s.apps.Delete(txCtx, id); deleteErr != nil {
			return fmt.Errorf("delete application: %w", deleteErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "application deleted",
		slog.String("application_id", id.String()),
		slog.String("company", app.Company),
		slog.Int("contacts", contacts),
		slog.Int("interview_stages", stages),
	)

	return nil
}
