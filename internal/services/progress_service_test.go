package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellspring/internal/models/db_models"
	"wellspring/internal/models/request_models"
	"wellspring/internal/repositories"
	"wellspring/pkg/utils"
)

// failingEmbedder simulates a provider outage.
type failingEmbedder struct{ calls int }

func (f *failingEmbedder) GetEmbedding(_ context.Context, _ string) (pgvector.Vector, error) {
	f.calls++
	return pgvector.Vector{}, errors.New("provider down")
}

func (f *failingEmbedder) Dimensions() int { return 768 }

func newProgressFixture(t *testing.T) (ProgressServiceInterface, *db_models.Profile, repositories.SessionRepository) {
	t.Helper()

	db := newTestDB(t)
	sessionRepo := repositories.NewSessionRepository(db)
	svc := NewProgressService(
		repositories.NewCheckinRepository(db),
		repositories.NewGoalRepository(db),
		sessionRepo,
		nil,
		nil,
		testLogger(),
	)
	profile := createTestProfile(t, db, "progress@example.com")
	return svc, profile, sessionRepo
}

func TestLogMoodCheckinSurvivesEmbeddingOutage(t *testing.T) {
	db := newTestDB(t)
	embedder := &failingEmbedder{}
	svc := NewProgressService(
		repositories.NewCheckinRepository(db),
		repositories.NewGoalRepository(db),
		repositories.NewSessionRepository(db),
		embedder,
		repositories.NewMoodEmbeddingRepository(db),
		testLogger(),
	)
	profile := createTestProfile(t, db, "moody@example.com")

	checkin, err := svc.LogMoodCheckin(context.Background(), profile.ID, request_models.MoodCheckinRequest{
		Mood: 7,
		Note: "slept well",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, checkin.Mood)
	assert.Equal(t, 1, embedder.calls)
}

func TestMoodHistoryPagination(t *testing.T) {
	svc, profile, _ := newProgressFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.LogMoodCheckin(ctx, profile.ID, request_models.MoodCheckinRequest{Mood: 5 + i})
		require.NoError(t, err)
	}

	history, err := svc.MoodHistory(ctx, profile.ID, 1, 2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), history.Total)
	assert.Len(t, history.Checkins, 2)

	_, err = svc.MoodHistory(ctx, profile.ID, 1, 101, 0, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
	_, err = svc.MoodHistory(ctx, profile.ID, -1, 10, 0, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
}

func TestGoalAutoCompletes(t *testing.T) {
	svc, profile, _ := newProgressFixture(t)
	ctx := context.Background()

	goal, err := svc.CreateGoal(ctx, profile.ID, request_models.CreateGoalRequest{
		Title:       "Meditate 100 minutes",
		TargetValue: 100,
		Unit:        "minutes",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", goal.Status)

	halfway := 50.0
	updated, err := svc.UpdateGoal(ctx, profile.ID, uuid.MustParse(goal.ID), request_models.UpdateGoalRequest{CurrentValue: &halfway})
	require.NoError(t, err)
	assert.Equal(t, "active", updated.Status)

	done := 100.0
	updated, err = svc.UpdateGoal(ctx, profile.ID, uuid.MustParse(goal.ID), request_models.UpdateGoalRequest{CurrentValue: &done})
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
}

func TestUpdateGoalOwnership(t *testing.T) {
	svc, profile, _ := newProgressFixture(t)
	ctx := context.Background()

	goal, err := svc.CreateGoal(ctx, profile.ID, request_models.CreateGoalRequest{Title: "Stretch daily", TargetValue: 30})
	require.NoError(t, err)

	v := 1.0
	_, err = svc.UpdateGoal(ctx, uuid.New(), uuid.MustParse(goal.ID), request_models.UpdateGoalRequest{CurrentValue: &v})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = svc.UpdateGoal(ctx, profile.ID, uuid.New(), request_models.UpdateGoalRequest{CurrentValue: &v})
	assert.ErrorIs(t, err, utils.ErrGoalNotFound)
}

func TestListGoalsFiltersByStatus(t *testing.T) {
	svc, profile, _ := newProgressFixture(t)
	ctx := context.Background()

	_, err := svc.CreateGoal(ctx, profile.ID, request_models.CreateGoalRequest{Title: "A", TargetValue: 10})
	require.NoError(t, err)
	goal, err := svc.CreateGoal(ctx, profile.ID, request_models.CreateGoalRequest{Title: "B", TargetValue: 10})
	require.NoError(t, err)

	paused := "paused"
	_, err = svc.UpdateGoal(ctx, profile.ID, uuid.MustParse(goal.ID), request_models.UpdateGoalRequest{Status: &paused})
	require.NoError(t, err)

	active, err := svc.ListGoals(ctx, profile.ID, "active")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "A", active[0].Title)

	all, err := svc.ListGoals(ctx, profile.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSummaryAggregates(t *testing.T) {
	svc, profile, sessionRepo := newProgressFixture(t)
	ctx := context.Background()

	meditation := NewMeditationService(sessionRepo, nil, testLogger())
	started, err := meditation.Start(ctx, profile.ID, request_models.StartSessionRequest{ContentID: "breath-101"})
	require.NoError(t, err)
	minutes := 20
	_, err = meditation.Complete(ctx, profile.ID, uuid.MustParse(started.ID), request_models.CompleteSessionRequest{DurationMinutes: &minutes})
	require.NoError(t, err)

	_, err = svc.LogMoodCheckin(ctx, profile.ID, request_models.MoodCheckinRequest{Mood: 6})
	require.NoError(t, err)
	_, err = svc.LogMoodCheckin(ctx, profile.ID, request_models.MoodCheckinRequest{Mood: 8})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, profile.ID, "30d")
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.MoodCheckins)
	assert.InDelta(t, 7.0, summary.AverageMood, 0.001)
	assert.Equal(t, int64(1), summary.MeditationSessions)
	assert.Equal(t, int64(0), summary.WorkoutSessions)
	assert.Equal(t, int64(20), summary.TotalMinutes)

	_, err = svc.Summary(ctx, profile.ID, "bogus")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
