package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

//go:generate moq -out config_repo_mock_test.go -pkg pipeline . configRepo

// storedConfig returns a configRepoMock holding cfg; nil means never saved.
func storedConfig(cfg *domain.PipelineConfig) *configRepoMock {
	return &configRepoMock{
		GetFunc: func(ctx context.Context) (domain.PipelineConfig, error) {
			if cfg == nil {
				return domain.PipelineConfig{}, domain.ErrNotFound
			}
			return cfg.Clone(), nil
		},
		SaveFunc: func(ctx context.Context, c domain.PipelineConfig) error {
			saved := c.Clone()
			cfg = &saved
			return nil
		},
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	t.Run("default when unsaved", func(t *testing.T) {
		t.Parallel()
		svc := NewService(slog.Default(), storedConfig(nil))

		got, err := svc.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultPipelineConfig(), got)
	})

	t.Run("storage error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("disk")
		repo := &configRepoMock{
			GetFunc: func(ctx context.Context) (domain.PipelineConfig, error) {
				return domain.PipelineConfig{}, boom
			},
		}
		svc := NewService(slog.Default(), repo)

		_, err := svc.Get(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}

func TestAddLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		category  string
		label     string
		wantErr   error
		wantSaved bool
	}{
		{name: "new active label", category: "active", label: "  take   home ", wantSaved: true},
		{name: "duplicate ignored", category: "active", label: "Applied"},
		{name: "label of other category", category: "active", label: "rejected", wantErr: domain.ErrValidation},
		{name: "empty label", category: "inactive", label: "  ", wantErr: domain.ErrValidation},
		{name: "bad category", category: "archived", label: "x", wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := storedConfig(nil)
			svc := NewService(slog.Default(), repo)

			got, err := svc.AddLabel(context.Background(), tt.category, tt.label)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.SaveCalls())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSaved, len(repo.SaveCalls()) == 1)
			if tt.wantSaved {
				assert.Equal(t, "take home", got.Active[len(got.Active)-1])
			}
		})
	}
}

func TestRemoveLabel(t *testing.T) {
	t.Parallel()

	cfg := domain.PipelineConfig{Active: []string{"applied", "offer"}, Inactive: []string{"rejected"}}
	repo := storedConfig(&cfg)
	svc := NewService(slog.Default(), repo)
	ctx := context.Background()

	got, err := svc.RemoveLabel(ctx, "active", "OFFER")
	require.NoError(t, err)
	assert.Equal(t, []string{"applied"}, got.Active)

	_, err = svc.RemoveLabel(ctx, "active", "applied")
	assert.ErrorIs(t, err, domain.ErrLastLabel)

	_, err = svc.RemoveLabel(ctx, "inactive", "ghosted")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Len(t, repo.SaveCalls(), 1)
}

func TestReset(t *testing.T) {
	t.Parallel()

	cfg := domain.PipelineConfig{Active: []string{"custom"}, Inactive: []string{"gone"}}
	repo := storedConfig(&cfg)
	svc := NewService(slog.Default(), repo)

	got, err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPipelineConfig(), got)

	again, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPipelineConfig(), again)
}
