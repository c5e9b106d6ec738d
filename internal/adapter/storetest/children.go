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

func runContacts(t *testing.T, open Factory) {
	t.Run("create and get round trip", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		c := newContact(t, uuid.New(), "dana", baseTime)
		_, err := s.Contacts.Create(ctx, c)
		require.NoError(t, err)

		got, err := s.Contacts.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
		assert.Equal(t, c.JobApplicationID, got.JobApplicationID)
		assert.Equal(t, c.Name, got.Name)
		assert.Equal(t, c.Email, got.Email)
		assert.Equal(t, c.Role, got.Role)
		assert.Equal(t, c.Channel, got.Channel)
		require.NotNil(t, got.OutreachDate)
		assert.True(t, c.OutreachDate.Equal(*got.OutreachDate))
		assert.False(t, got.ResponseReceived)
		assert.Nil(t, got.LinkedIn)
	})

	t.Run("get unknown is not found", func(t *testing.T) {
		s := open(t)

		_, err := s.Contacts.GetByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list by application filters and orders by creation", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		appA, appB := uuid.New(), uuid.New()
		second := newContact(t, appA, "second", baseTime.Add(time.Hour))
		first := newContact(t, appA, "first", baseTime)
		other := newContact(t, appB, "other", baseTime)
		for _, c := range []*domain.Contact{second, first, other} {
			_, err := s.Contacts.Create(ctx, c)
			require.NoError(t, err)
		}

		got, err := s.Contacts.ListByApplication(ctx, appA)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "first", got[0].Name)
		assert.Equal(t, "second", got[1].Name)

		all, err := s.Contacts.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		none, err := s.Contacts.ListByApplication(ctx, uuid.New())
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("update persists", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		c := newContact(t, uuid.New(), "dana", baseTime)
		_, err := s.Contacts.Create(ctx, c)
		require.NoError(t, err)

		responded := true
		linkedIn := "https://linkedin.com/in/dana"
		require.NoError(t, c.Update(domain.ContactPatch{ResponseReceived: &responded, LinkedIn: &linkedIn}, baseTime.Add(time.Hour)))
		_, err = s.Contacts.Update(ctx, c)
		require.NoError(t, err)

		got, err := s.Contacts.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.True(t, got.ResponseReceived)
		assert.Equal(t, c.LinkedIn, got.LinkedIn)
		assert.True(t, c.UpdatedAt.Equal(got.UpdatedAt))
	})

	t.Run("update and delete unknown are not found", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		_, err := s.Contacts.Update(ctx, newContact(t, uuid.New(), "ghost", baseTime))
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, s.Contacts.Delete(ctx, uuid.New()), domain.ErrNotFound)
	})

	t.Run("delete by application", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		appA, appB := uuid.New(), uuid.New()
		for _, c := range []*domain.Contact{
			newContact(t, appA, "a1", baseTime),
			newContact(t, appA, "a2", baseTime),
			newContact(t, appB, "b1", baseTime),
		} {
			_, err := s.Contacts.Create(ctx, c)
			require.NoError(t, err)
		}

		n, err := s.Contacts.DeleteByApplication(ctx, appA)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = s.Contacts.DeleteByApplication(ctx, appA)
		require.NoError(t, err)
		assert.Zero(t, n)

		all, err := s.Contacts.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "b1", all[0].Name)
	})
}

func runStages(t *testing.T, open Factory) {
	t.Run("questions round trip", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		st := newStage(t, uuid.New(), 1, baseTime)
		_, err := st.AddQuestion(uuid.New(), "Design a rate limiter", "token bucket", baseTime.Add(time.Minute))
		require.NoError(t, err)
		_, err = st.AddQuestion(uuid.New(), "Why us?", "", baseTime.Add(2*time.Minute))
		require.NoError(t, err)

		_, err = s.Stages.Create(ctx, st)
		require.NoError(t, err)

		got, err := s.Stages.GetByID(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, st.Round, got.Round)
		assert.Equal(t, st.InterviewType, got.InterviewType)
		assert.Equal(t, st.Notes, got.Notes)
		require.NotNil(t, got.ScheduledDate)
		assert.True(t, st.ScheduledDate.Equal(*got.ScheduledDate))
		assert.Nil(t, got.CompletedDate)
		assert.Equal(t, st.Questions, got.Questions)
		assert.True(t, st.UpdatedAt.Equal(got.UpdatedAt))
	})

	t.Run("empty questions stay non-nil", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		st := newStage(t, uuid.New(), 1, baseTime)
		_, err := s.Stages.Create(ctx, st)
		require.NoError(t, err)

		got, err := s.Stages.GetByID(ctx, st.ID)
		require.NoError(t, err)
		assert.NotNil(t, got.Questions)
		assert.Empty(t, got.Questions)
	})

	t.Run("list by application orders by round", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		appID := uuid.New()
		for _, st := range []*domain.InterviewStage{
			newStage(t, appID, 3, baseTime),
			newStage(t, appID, 1, baseTime.Add(time.Hour)),
			newStage(t, appID, 2, baseTime),
			newStage(t, uuid.New(), 1, baseTime),
		} {
			_, err := s.Stages.Create(ctx, st)
			require.NoError(t, err)
		}

		got, err := s.Stages.ListByApplication(ctx, appID)
		require.NoError(t, err)
		require.Len(t, got, 3)
		for i, st := range got {
			assert.Equal(t, i+1, st.Round)
		}
	})

	t.Run("update persists", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		st := newStage(t, uuid.New(), 1, baseTime)
		_, err := s.Stages.Create(ctx, st)
		require.NoError(t, err)

		final := true
		completed := "2024-03-11"
		require.NoError(t, st.Update(domain.InterviewStagePatch{IsFinalRound: &final, CompletedDate: &completed}, baseTime.Add(time.Hour)))
		_, err = s.Stages.Update(ctx, st)
		require.NoError(t, err)

		got, err := s.Stages.GetByID(ctx, st.ID)
		require.NoError(t, err)
		assert.True(t, got.IsFinalRound)
		require.NotNil(t, got.CompletedDate)
		assert.True(t, st.CompletedDate.Equal(*got.CompletedDate))
	})

	t.Run("delete and delete by application", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		appID := uuid.New()
		one := newStage(t, appID, 1, baseTime)
		two := newStage(t, appID, 2, baseTime)
		for _, st := range []*domain.InterviewStage{one, two} {
			_, err := s.Stages.Create(ctx, st)
			require.NoError(t, err)
		}

		require.NoError(t, s.Stages.Delete(ctx, one.ID))
		assert.ErrorIs(t, s.Stages.Delete(ctx, one.ID), domain.ErrNotFound)

		n, err := s.Stages.DeleteByApplication(ctx, appID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		all, err := s.Stages.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
