package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellspring/internal/models/db_models"
	"wellspring/internal/models/request_models"
	"wellspring/internal/repositories"
	"wellspring/pkg/utils"
)

func newMeditationFixture(t *testing.T) (SessionServiceInterface, repositories.SessionRepository, *recordingNotifier, *db_models.Profile) {
	t.Helper()

	db := newTestDB(t)
	repo := repositories.NewSessionRepository(db)
	notifier := &recordingNotifier{}
	svc := NewMeditationService(repo, notifier, testLogger())
	profile := createTestProfile(t, db, "meditator@example.com")
	return svc, repo, notifier, profile
}

func TestStartAndCompleteSession(t *testing.T) {
	svc, _, notifier, profile := newMeditationFixture(t)
	ctx := context.Background()

	started, err := svc.Start(ctx, profile.ID, request_models.StartSessionRequest{ContentID: "breath-101"})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", started.Status)
	assert.Equal(t, "meditation", started.Kind)

	duration := 15
	moodBefore, moodAfter := 4, 8
	completed, err := svc.Complete(ctx, profile.ID, uuid.MustParse(started.ID), request_models.CompleteSessionRequest{
		DurationMinutes: &duration,
		MoodBefore:      &moodBefore,
		MoodAfter:       &moodAfter,
		Notes:           "calm finish",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
	assert.Equal(t, 15, completed.DurationMinutes)
	require.NotNil(t, completed.CompletedAt)
	assert.GreaterOrEqual(t, *completed.CompletedAt, completed.StartedAt)
	assert.Equal(t, 1, notifier.count())
}

func TestCompleteTwiceConflicts(t *testing.T) {
	svc, _, _, profile := newMeditationFixture(t)
	ctx := context.Background()

	started, err := svc.Start(ctx, profile.ID, request_models.StartSessionRequest{ContentID: "breath-101"})
	require.NoError(t, err)
	sessionID := uuid.MustParse(started.ID)

	_, err = svc.Complete(ctx, profile.ID, sessionID, request_models.CompleteSessionRequest{})
	require.NoError(t, err)

	_, err = svc.Complete(ctx, profile.ID, sessionID, request_models.CompleteSessionRequest{})
	assert.ErrorIs(t, err, utils.ErrSessionCompleted)
}

func TestCompleteForeignSessionLeavesItUntouched(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewSessionRepository(db)
	svc := NewMeditationService(repo, nil, testLogger())
	owner := createTestProfile(t, db, "owner@example.com")
	intruder := createTestProfile(t, db, "intruder@example.com")
	ctx := context.Background()

	started, err := svc.Start(ctx, owner.ID, request_models.StartSessionRequest{ContentID: "breath-101"})
	require.NoError(t, err)
	sessionID := uuid.MustParse(started.ID)

	_, err = svc.Complete(ctx, intruder.ID, sessionID, request_models.CompleteSessionRequest{})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	reloaded, err := repo.FindByID(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, db_models.SessionInProgress, reloaded.Status)
	assert.Nil(t, reloaded.CompletedAt)
}

func TestCompleteUnknownSession(t *testing.T) {
	svc, _, _, profile := newMeditationFixture(t)

	_, err := svc.Complete(context.Background(), profile.ID, uuid.New(), request_models.CompleteSessionRequest{})
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestKindsAreIsolated(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewSessionRepository(db)
	meditation := NewMeditationService(repo, nil, testLogger())
	workout := NewWorkoutService(repo, nil, testLogger())
	profile := createTestProfile(t, db, "athlete@example.com")
	ctx := context.Background()

	started, err := workout.Start(ctx, profile.ID, request_models.StartSessionRequest{ContentID: "hiit-7"})
	require.NoError(t, err)

	// A workout session does not exist on the meditation surface.
	_, err = meditation.Complete(ctx, profile.ID, uuid.MustParse(started.ID), request_models.CompleteSessionRequest{})
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestRateRequiresCompletion(t *testing.T) {
	svc, _, _, profile := newMeditationFixture(t)
	ctx := context.Background()

	started, err := svc.Start(ctx, profile.ID, request_models.StartSessionRequest{ContentID: "breath-101"})
	require.NoError(t, err)
	sessionID := uuid.MustParse(started.ID)

	_, err = svc.Rate(ctx, profile.ID, sessionID, 5)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.Complete(ctx, profile.ID, sessionID, request_models.CompleteSessionRequest{})
	require.NoError(t, err)

	rated, err := svc.Rate(ctx, profile.ID, sessionID, 5)
	require.NoError(t, err)
	require.NotNil(t, rated.Rating)
	assert.Equal(t, 5, *rated.Rating)
}

func TestSaveProgressRejectedAfterCompletion(t *testing.T) {
	svc, _, _, profile := newMeditationFixture(t)
	ctx := context.Background()

	started, err := svc.Start(ctx, profile.ID, request_models.StartSessionRequest{ContentID: "breath-101"})
	require.NoError(t, err)
	sessionID := uuid.MustParse(started.ID)

	saved, err := svc.SaveProgress(ctx, profile.ID, sessionID, 120)
	require.NoError(t, err)
	assert.Equal(t, 120, saved.PositionSeconds)

	_, err = svc.Complete(ctx, profile.ID, sessionID, request_models.CompleteSessionRequest{})
	require.NoError(t, err)

	_, err = svc.SaveProgress(ctx, profile.ID, sessionID, 200)
	assert.ErrorIs(t, err, utils.ErrSessionCompleted)
}

func TestHistoryPaginationBounds(t *testing.T) {
	svc, _, _, profile := newMeditationFixture(t)
	ctx := context.Background()

	_, err := svc.History(ctx, profile.ID, 0, 10, 0, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = svc.History(ctx, profile.ID, 1, 0, 0, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	_, err = svc.History(ctx, profile.ID, 1, 51, 0, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	history, err := svc.History(ctx, profile.ID, 1, 50, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), history.Total)
	assert.Empty(t, history.Sessions)
}

func TestHistoryPagesNewestFirst(t *testing.T) {
	svc, _, _, profile := newMeditationFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Start(ctx, profile.ID, request_models.StartSessionRequest{ContentID: "breath-101"})
		require.NoError(t, err)
	}

	page1, err := svc.History(ctx, profile.ID, 1, 2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page1.Total)
	assert.Len(t, page1.Sessions, 2)

	page3, err := svc.History(ctx, profile.ID, 3, 2, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page3.Sessions, 1)
}

func TestStatsRejectsUnknownPeriod(t *testing.T) {
	svc, _, _, profile := newMeditationFixture(t)

	_, err := svc.Stats(context.Background(), profile.ID, "14d")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestStreakDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	day := func(offset int) int64 {
		return now.AddDate(0, 0, offset).Unix()
	}

	tests := []struct {
		name   string
		stamps []int64
		want   int
	}{
		{"empty", nil, 0},
		{"today only", []int64{day(0)}, 1},
		{"three consecutive", []int64{day(0), day(-1), day(-2)}, 3},
		{"ends yesterday", []int64{day(-1), day(-2)}, 2},
		{"gap breaks streak", []int64{day(0), day(-2), day(-3)}, 1},
		{"stale", []int64{day(-3), day(-4)}, 0},
		{"duplicates same day", []int64{day(0), day(0) - 3600, day(-1)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StreakDays(tt.stamps, now))
		})
	}
}
