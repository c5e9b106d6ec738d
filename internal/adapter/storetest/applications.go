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

func runApplications(t *testing.T, open Factory) {
	t.Run("create and get round trip", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		app := newApplication(t, "Acme", "2024-02-15", baseTime)
		_, err := app.AddNote(uuid.New(), "sent follow-up", baseTime.Add(time.Minute))
		require.NoError(t, err)
		require.NoError(t, app.NewStatus(domain.ActiveStatus(domain.LabelScreening), baseTime.Add(2*time.Minute)))

		_, err = s.Applications.Create(ctx, app)
		require.NoError(t, err)

		got, err := s.Applications.GetByID(ctx, app.ID)
		require.NoError(t, err)
		assertApplication(t, app, got)
	})

	t.Run("get unknown is not found", func(t *testing.T) {
		s := open(t)

		_, err := s.Applications.GetByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("duplicate id already exists", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		app := newApplication(t, "Acme", "2024-02-15", baseTime)
		_, err := s.Applications.Create(ctx, app)
		require.NoError(t, err)

		_, err = s.Applications.Create(ctx, app)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("list empty is non-nil", func(t *testing.T) {
		s := open(t)

		apps, err := s.Applications.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, apps)
		assert.Empty(t, apps)
	})

	t.Run("list newest application date first", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		older := newApplication(t, "Older", "2024-01-10", baseTime)
		newer := newApplication(t, "Newer", "2024-02-20", baseTime)
		sameDayFirst := newApplication(t, "SameDayFirst", "2024-02-01", baseTime)
		sameDayLater := newApplication(t, "SameDayLater", "2024-02-01", baseTime.Add(time.Hour))
		for _, a := range []*domain.JobApplication{older, sameDayFirst, newer, sameDayLater} {
			_, err := s.Applications.Create(ctx, a)
			require.NoError(t, err)
		}

		apps, err := s.Applications.List(ctx)
		require.NoError(t, err)
		require.Len(t, apps, 4)
		assert.Equal(t, []string{"Newer", "SameDayLater", "SameDayFirst", "Older"}, companies(apps))
	})

	t.Run("update persists", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		app := newApplication(t, "Acme", "2024-02-15", baseTime)
		_, err := s.Applications.Create(ctx, app)
		require.NoError(t, err)

		company := "Acme Corp"
		require.NoError(t, app.Update(domain.JobApplicationPatch{Company: &company}, baseTime.Add(time.Hour)))
		require.NoError(t, app.NewStatus(domain.InactiveStatus(domain.LabelRejected), baseTime.Add(2*time.Hour)))

		_, err = s.Applications.Update(ctx, app)
		require.NoError(t, err)

		got, err := s.Applications.GetByID(ctx, app.ID)
		require.NoError(t, err)
		assertApplication(t, app, got)
	})

	t.Run("update unknown is not found", func(t *testing.T) {
		s := open(t)

		_, err := s.Applications.Update(context.Background(), newApplication(t, "Ghost", "2024-02-15", baseTime))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("returned values are copies", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		app := newApplication(t, "Acme", "2024-02-15", baseTime)
		_, err := s.Applications.Create(ctx, app)
		require.NoError(t, err)

		app.Company = "mutated after create"
		got, err := s.Applications.GetByID(ctx, app.ID)
		require.NoError(t, err)
		got.Company = "mutated after get"
		got.StatusLog[0].Status.Label = "mutated"

		again, err := s.Applications.GetByID(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme", again.Company)
		assert.Equal(t, domain.LabelApplied, again.StatusLog[0].Status.Label)
	})

	t.Run("delete", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		app := newApplication(t, "Acme", "2024-02-15", baseTime)
		_, err := s.Applications.Create(ctx, app)
		require.NoError(t, err)

		require.NoError(t, s.Applications.Delete(ctx, app.ID))

		_, err = s.Applications.GetByID(ctx, app.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, s.Applications.Delete(ctx, app.ID), domain.ErrNotFound)
	})
}

func companies(apps []*domain.JobApplication) []string {
	out := make([]string, len(apps))
	for i, a := range apps {
		out[i] = a.Company
	}
	return out
}

func assertApplication(t *testing.T, want, got *domain.JobApplication) {
	t.Helper()

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Company, got.Company)
	assert.Equal(t, want.PositionTitle, got.PositionTitle)
	assert.True(t, want.ApplicationDate.Equal(got.ApplicationDate), "application date")
	assert.Equal(t, want.InterestRating, got.InterestRating)
	assert.Equal(t, want.JobPostingURL, got.JobPostingURL)
	assert.Equal(t, want.SourceType, got.SourceType)
	assert.Equal(t, want.JobBoardID, got.JobBoardID)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "created at")
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt), "updated at")

	require.Len(t, got.StatusLog, len(want.StatusLog))
	for i := range want.StatusLog {
		assert.True(t, want.StatusLog[i].Timestamp.Equal(got.StatusLog[i].Timestamp), "status %d timestamp", i)
		assert.Equal(t, want.StatusLog[i].Status, got.StatusLog[i].Status)
	}

	require.Len(t, got.Notes, len(want.Notes))
	for i := range want.Notes {
		assert.Equal(t, want.Notes[i].ID, got.Notes[i].ID)
		assert.Equal(t, want.Notes[i].Content, got.Notes[i].Content)
	}
}
