package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

func runBoards(t *testing.T, open Factory) {
	t.Run("create and get round trip", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		b := newBoard(t, "LinkedIn", "linkedin.com", "lnkd.in")
		_, err := s.Boards.Create(ctx, b)
		require.NoError(t, err)

		got, err := s.Boards.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.Name, got.Name)
		assert.Equal(t, b.RootDomain, got.RootDomain)
		assert.Equal(t, b.Domains, got.Domains)
	})

	t.Run("duplicate root domain already exists", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		_, err := s.Boards.Create(ctx, newBoard(t, "Indeed", "indeed.com"))
		require.NoError(t, err)

		_, err = s.Boards.Create(ctx, newBoard(t, "Indeed again", "indeed.com"))
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("list ordered by name ignoring case", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		for _, b := range []*domain.JobBoard{
			newBoard(t, "wellfound", "wellfound.com"),
			newBoard(t, "Indeed", "indeed.com"),
			newBoard(t, "angelList", "angel.co"),
		} {
			_, err := s.Boards.Create(ctx, b)
			require.NoError(t, err)
		}

		got, err := s.Boards.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "angelList", got[0].Name)
		assert.Equal(t, "Indeed", got[1].Name)
		assert.Equal(t, "wellfound", got[2].Name)
	})

	t.Run("update persists domains", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		b := newBoard(t, "Greenhouse", "greenhouse.io")
		_, err := s.Boards.Create(ctx, b)
		require.NoError(t, err)

		added, err := b.AddDomain("boards.greenhouse.io", baseTime.Add(time.Hour))
		require.NoError(t, err)
		require.True(t, added)
		_, err = s.Boards.Update(ctx, b)
		require.NoError(t, err)

		got, err := s.Boards.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.Domains, got.Domains)
	})

	t.Run("delete", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		b := newBoard(t, "Dice", "dice.com")
		_, err := s.Boards.Create(ctx, b)
		require.NoError(t, err)

		require.NoError(t, s.Boards.Delete(ctx, b.ID))
		_, err = s.Boards.GetByID(ctx, b.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, s.Boards.Delete(ctx, uuid.New()), domain.ErrNotFound)
	})
}

func runPipeline(t *testing.T, open Factory) {
	t.Run("get before save is not found", func(t *testing.T) {
		s := open(t)

		_, err := s.Pipeline.Get(context.Background())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("save then get", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		cfg := domain.DefaultPipelineConfig()
		_, err := cfg.AddLabel(domain.StatusCategoryActive, "take-home")
		require.NoError(t, err)
		require.NoError(t, s.Pipeline.Save(ctx, cfg))

		got, err := s.Pipeline.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, cfg, got)

		require.NoError(t, s.Pipeline.Save(ctx, domain.DefaultPipelineConfig()))
		got, err = s.Pipeline.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultPipelineConfig(), got)
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		s := open(t)

		err := s.Pipeline.Save(context.Background(), domain.PipelineConfig{Active: []string{"applied"}})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func runTx(t *testing.T, open Factory) {
	t.Run("commit on success", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		app := newApplication(t, "Acme", "2024-02-15", baseTime)
		err := s.Tx.RunInTx(ctx, func(txCtx context.Context) error {
			_, err := s.Applications.Create(txCtx, app)
			return err
		})
		require.NoError(t, err)

		_, err = s.Applications.GetByID(ctx, app.ID)
		assert.NoError(t, err)
	})

	t.Run("returns fn error", func(t *testing.T) {
		s := open(t)

		err := s.Tx.RunInTx(context.Background(), func(context.Context) error {
			return domain.ErrConflict
		})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}
