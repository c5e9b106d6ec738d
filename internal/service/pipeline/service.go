package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

type configRepo interface {
	Get(ctx context.Context) (domain.PipelineConfig, error)
	Save(ctx context.Context, cfg domain.PipelineConfig) error
}

// Service edits the set of recognized status labels. Removing a label never
// touches applications already carrying it.
type Service struct {
	configs configRepo
	log     *slog.Logger
}

// NewService creates a new pipeline service.
func NewService(log *slog.Logger, configs configRepo) *Service {
	return &Service{
		configs: configs,
		log:     log.With("service", "pipeline"),
	}
}

// Get returns the stored config, or the default one when nothing was saved.
func (s *Service) Get(ctx context.Context) (domain.PipelineConfig, error) {
	cfg, err := s.configs.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultPipelineConfig(), nil
	}
	if err != nil {
		return domain.PipelineConfig{}, fmt.Errorf("get pipeline config: %w", err)
	}
	return cfg, nil
}

// AddLabel appends label to category. Adding a label that is already present
// returns the config unchanged without saving.
func (s *Service) AddLabel(ctx context.Context, category, label string) (domain.PipelineConfig, error) {
	cat, err := parseCategory(category)
	if err != nil {
		return domain.PipelineConfig{}, err
	}

	cfg, err := s.Get(ctx)
	if err != nil {
		return domain.PipelineConfig{}, err
	}

	added, err := cfg.AddLabel(cat, label)
	if err != nil {
		return domain.PipelineConfig{}, err
	}
	if !added {
		return cfg, nil
	}

	if err := s.configs.Save(ctx, cfg); err != nil {
		return domain.PipelineConfig{}, fmt.Errorf("save pipeline config: %w", err)
	}

	s.log.InfoContext(ctx, "pipeline label added",
		slog.String("category", cat.String()),
		slog.String("label", domain.NormalizeLabel(label)),
	)
	return cfg, nil
}

// RemoveLabel drops label from category. The last label of a category cannot
// be removed.
func (s *Service) RemoveLabel(ctx context.Context, category, label string) (domain.PipelineConfig, error) {
	cat, err := parseCategory(category)
	if err != nil {
		return domain.PipelineConfig{}, err
	}

	cfg, err := s.Get(ctx)
	if err != nil {
		return domain.PipelineConfig{}, err
	}

	if err := cfg.RemoveLabel(cat, label); err != nil {
		return domain.PipelineConfig{}, err
	}

	if err := s.configs.Save(ctx, cfg); err != nil {
		return domain.PipelineConfig{}, fmt.Errorf("save pipeline config: %w", err)
	}

	s.log.InfoContext(ctx, "pipeline label removed",
		slog.String("category", cat.String()),
		slog.String("label", domain.NormalizeLabel(label)),
	)
	return cfg, nil
}

// Reset restores the default labels.
func (s *Service) Reset(ctx context.Context) (domain.PipelineConfig, error) {
	cfg := domain.DefaultPipelineConfig()
	if err := s.configs.Save(ctx, cfg); err != nil {
		return domain.PipelineConfig{}, fmt.Errorf("save pipeline config: %w", err)
	}

	s.log.InfoContext(ctx, "pipeline config reset")
	return cfg, nil
}

func parseCategory(raw string) (domain.StatusCategory, error) {
	cat := domain.StatusCategory(strings.ToLower(strings.TrimSpace(raw)))
	if !cat.IsValid() {
		return "", domain.NewValidationError("category", "must be active or inactive")
	}
	return cat, nil
}
