package jobboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// FindByURL returns the board whose domains cover rawURL.
func (s *Service) FindByURL(ctx context.Context, rawURL string) (*domain.JobBoard, error) {
	if domain.NormalizeDomain(rawURL) == "" {
		return nil, domain.NewValidationError("url", "must be a domain or URL")
	}

	boards, err := s.boards.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list job boards: %w", err)
	}

	if b := match(boards, rawURL); b != nil {
		return b, nil
	}
	return nil, fmt.Errorf("job board for %s: %w", rawURL, domain.ErrNotFound)
}

// FindOrCreateByURL resolves rawURL to a board, creating one named after the
// URL's domain when none matches. created reports which happened.
func (s *Service) FindOrCreateByURL(ctx context.Context, rawURL string) (board *domain.JobBoard, created bool, err error) {
	root := domain.NormalizeDomain(rawURL)
	if root == "" {
		return nil, false, domain.NewValidationError("url", "must be a domain or URL")
	}

	boards, err := s.boards.List(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("list job boards: %w", err)
	}
	if b := match(boards, rawURL); b != nil {
		return b, false, nil
	}

	board, err = domain.NewJobBoard(s.newID(), domain.JobBoardInput{Name: root, RootDomain: root}, s.clock.Now())
	if err != nil {
		return nil, false, err
	}

	board, err = s.boards.Create(ctx, board)
	if err != nil {
		return nil, false, fmt.Errorf("create job board: %w", err)
	}

	s.log.InfoContext(ctx, "job board created from url",
		slog.String("board_id", board.ID.String()),
		slog.String("root_domain", root),
	)
	return board, true, nil
}

// match prefers the board with the longest matching root so a dedicated
// subdomain board wins over its parent.
func match(boards []*domain.JobBoard, rawURL string) *domain.JobBoard {
	var best *domain.JobBoard
	for _, b := range boards {
		if !b.Matches(rawURL) {
			continue
		}
		if best == nil || len(b.RootDomain) > len(best.RootDomain) {
			best = b
		}
	}
	return best
}
