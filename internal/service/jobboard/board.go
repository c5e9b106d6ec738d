package jobboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// Create stores a board unless one of its domains is already claimed.
func (s *Service) Create(ctx context.Context, in domain.JobBoardInput) (*domain.JobBoard, error) {
	board, err := domain.NewJobBoard(s.newID(), in, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.checkOverlap(ctx, board); err != nil {
		return nil, err
	}

	created, err := s.boards.Create(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("create job board: %w", err)
	}

	s.log.InfoContext(ctx, "job board created",
		slog.String("board_id", created.ID.String()),
		slog.String("root_domain", created.RootDomain),
	)

	return created, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.JobBoard, error) {
	board, err := s.boards.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job board: %w", err)
	}
	return board, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.JobBoard, error) {
	boards, err := s.boards.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list job boards: %w", err)
	}
	return boards, nil
}

// Update applies a partial update. Changed domains must not collide with
// another board.
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch domain.JobBoardPatch) (*domain.JobBoard, error) {
	board, err := s.boards.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job board: %w", err)
	}

	if err := board.Update(patch, s.clock.Now()); err != nil {
		return nil, err
	}

	if patch.RootDomain != nil || patch.Domains != nil {
		if err := s.checkOverlap(ctx, board); err != nil {
			return nil, err
		}
	}

	updated, err := s.boards.Update(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("update job board: %w", err)
	}

	s.log.InfoContext(ctx, "job board updated", slog.String("board_id", id.String()))
	return updated, nil
}

// AddDomain adds one domain to a board. Adding a domain the board already
// lists is a no-op.
func (s *Service) AddDomain(ctx context.Context, id uuid.UUID, raw string) (*domain.JobBoard, error) {
	board, err := s.boards.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job board: %w", err)
	}

	changed, err := board.AddDomain(raw, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return board, nil
	}

	if err := s.checkOverlap(ctx, board); err != nil {
		return nil, err
	}

	updated, err := s.boards.Update(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("update job board: %w", err)
	}

	s.log.InfoContext(ctx, "job board domain added",
		slog.String("board_id", id.String()),
		slog.String("domain", domain.NormalizeDomain(raw)),
	)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.boards.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete job board: %w", err)
	}

	s.log.InfoContext(ctx, "job board deleted", slog.String("board_id", id.String()))
	return nil
}

// checkOverlap fails with ErrAlreadyExists when another board claims any of
// board's domains.
func (s *Service) checkOverlap(ctx context.Context, board *domain.JobBoard) error {
	existing, err := s.boards.List(ctx)
	if err != nil {
		return fmt.Errorf("list job boards: %w", err)
	}

	for _, other := range existing {
		if other.ID == board.ID {
			continue
		}
		if other.Overlaps(board) {
			return fmt.Errorf("job board %s overlaps %s: %w", board.RootDomain, other.RootDomain, domain.ErrAlreadyExists)
		}
	}
	return nil
}
