package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// Create validates input and stores a new application seeded with the
// "applied" status. When the posting URL belongs to a known job board and no
// board was given, the board is attached and the source set to job-board.
func (s *Service) Create(ctx context.Context, in domain.JobApplicationInput) (*domain.JobApplication, error) {
	if in.JobBoardID == nil && strings.TrimSpace(in.JobPostingURL) != "" {
		board, err := s.matchBoard(ctx, in.JobPostingURL)
		if err != nil {
			return nil, err
		}
		if board != nil {
			id := board.ID
			in.JobBoardID = &id
			if strings.TrimSpace(in.SourceType) == "" {
				in.SourceType = string(domain.SourceJobBoard)
			}
		}
	}

	app, err := domain.NewJobApplication(s.newID(), in, s.now())
	if err != nil {
		return nil, err
	}

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.log.InfoContext(ctx, "application created",
		slog.String("application_id", created.ID.String()),
		slog.String("company", created.Company),
		slog.String("source", created.SourceType.String()),
	)

	return created, nil
}

func (s *Service) matchBoard(ctx context.Context, postingURL string) (*domain.JobBoard, error) {
	boards, err := s.boards.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list job boards: %w", err)
	}
	for _, b := range boards {
		if b.Matches(postingURL) {
			return b, nil
		}
	}
	return nil, nil
}
