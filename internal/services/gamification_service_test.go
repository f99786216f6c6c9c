package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wellspring/internal/models/db_models"
	"wellspring/internal/models/request_models"
	"wellspring/internal/repositories"
	"wellspring/pkg/utils"
)

func newGamificationFixture(t *testing.T) (GamificationServiceInterface, SessionServiceInterface, *gorm.DB, *db_models.Profile) {
	t.Helper()

	db := newTestDB(t)
	sessionRepo := repositories.NewSessionRepository(db)
	svc := NewGamificationService(repositories.NewGamificationRepository(db), sessionRepo, nil, testLogger())
	meditation := NewMeditationService(sessionRepo, svc, testLogger())
	profile := createTestProfile(t, db, "gamer@example.com")
	return svc, meditation, db, profile
}

func completeSession(t *testing.T, svc SessionServiceInterface, profileID uuid.UUID, minutes int) {
	t.Helper()
	ctx := context.Background()

	started, err := svc.Start(ctx, profileID, request_models.StartSessionRequest{ContentID: "breath-101"})
	require.NoError(t, err)
	_, err = svc.Complete(ctx, profileID, uuid.MustParse(started.ID), request_models.CompleteSessionRequest{DurationMinutes: &minutes})
	require.NoError(t, err)
}

func TestLevelFromCompletedMinutes(t *testing.T) {
	svc, meditation, _, profile := newGamificationFixture(t)
	ctx := context.Background()

	level, err := svc.Level(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, level.Level)
	assert.Equal(t, int64(10), level.NextLevelAt)

	completeSession(t, meditation, profile.ID, 25)
	completeSession(t, meditation, profile.ID, 20)

	level, err = svc.Level(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(45), level.TotalMinutes)
	assert.Equal(t, int64(2), level.TotalSessions)
	// floor(sqrt(45/10)) + 1 = 3, next threshold 10*3^2.
	assert.Equal(t, 3, level.Level)
	assert.Equal(t, int64(90), level.NextLevelAt)
}

func TestFirstSessionAwardsBadgeOnce(t *testing.T) {
	svc, meditation, _, profile := newGamificationFixture(t)
	ctx := context.Background()

	completeSession(t, meditation, profile.ID, 10)

	badges, err := svc.Badges(ctx, profile.ID)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, "first_session", badges[0].Code)

	rewards, err := svc.Rewards(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rewards.BadgeCount)
	require.Len(t, rewards.Celebrations, 1)
	assert.Equal(t, "first_session", rewards.Celebrations[0].EventType)

	completeSession(t, meditation, profile.ID, 10)

	badges, err = svc.Badges(ctx, profile.ID)
	require.NoError(t, err)
	assert.Len(t, badges, 1)
}

func TestHundredMinutesBadge(t *testing.T) {
	svc, meditation, _, profile := newGamificationFixture(t)
	ctx := context.Background()

	completeSession(t, meditation, profile.ID, 60)
	completeSession(t, meditation, profile.ID, 60)

	badges, err := svc.Badges(ctx, profile.ID)
	require.NoError(t, err)

	codes := make([]string, 0, len(badges))
	for _, b := range badges {
		codes = append(codes, b.Code)
	}
	assert.Contains(t, codes, "first_session")
	assert.Contains(t, codes, "minutes_100")
}

func TestTriggerMilestone(t *testing.T) {
	svc, _, _, profile := newGamificationFixture(t)
	ctx := context.Background()

	celebration, err := svc.TriggerMilestone(ctx, profile.ID, request_models.TriggerMilestoneRequest{
		EventType: "goal_completed",
		Data:      json.RawMessage(`{"goal":"Meditate 100 minutes"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "goal_completed", celebration.EventType)
	assert.False(t, celebration.Viewed)

	_, err = svc.TriggerMilestone(ctx, profile.ID, request_models.TriggerMilestoneRequest{EventType: "not_a_thing"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.TriggerMilestone(ctx, profile.ID, request_models.TriggerMilestoneRequest{
		EventType: "level_up",
		Data:      json.RawMessage(`{broken`),
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestMarkCelebrationViewedIsIdempotent(t *testing.T) {
	svc, _, db, profile := newGamificationFixture(t)
	ctx := context.Background()

	celebration, err := svc.TriggerMilestone(ctx, profile.ID, request_models.TriggerMilestoneRequest{EventType: "level_up"})
	require.NoError(t, err)
	celebrationID := uuid.MustParse(celebration.ID)

	viewed, err := svc.MarkCelebrationViewed(ctx, profile.ID, celebrationID)
	require.NoError(t, err)
	assert.True(t, viewed.Viewed)

	// Second mark is a success no-op.
	viewed, err = svc.MarkCelebrationViewed(ctx, profile.ID, celebrationID)
	require.NoError(t, err)
	assert.True(t, viewed.Viewed)

	other := createTestProfile(t, db, "other@example.com")
	_, err = svc.MarkCelebrationViewed(ctx, other.ID, celebrationID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = svc.MarkCelebrationViewed(ctx, profile.ID, uuid.New())
	assert.ErrorIs(t, err, utils.ErrCelebrationNotFound)
}

func TestLeaderboardRanksDeterministically(t *testing.T) {
	svc, meditation, db, first := newGamificationFixture(t)
	ctx := context.Background()
	second := createTestProfile(t, db, "runnerup@example.com")

	completeSession(t, meditation, first.ID, 30)
	completeSession(t, meditation, second.ID, 30)
	completeSession(t, meditation, second.ID, 15)

	board, err := svc.Leaderboard(ctx, "meditation", "30d")
	require.NoError(t, err)
	require.Len(t, board.Entries, 2)
	assert.Equal(t, 1, board.Entries[0].Rank)
	assert.Equal(t, second.ID.String(), board.Entries[0].ProfileID)
	assert.Equal(t, int64(45), board.Entries[0].Minutes)
	assert.Equal(t, 2, board.Entries[1].Rank)
	assert.Equal(t, first.ID.String(), board.Entries[1].ProfileID)

	_, err = svc.Leaderboard(ctx, "crossfit", "30d")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	_, err = svc.Leaderboard(ctx, "overall", "2w")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestLeaderboardExcludesDeletedProfiles(t *testing.T) {
	svc, meditation, db, profile := newGamificationFixture(t)
	ctx := context.Background()

	completeSession(t, meditation, profile.ID, 30)
	require.NoError(t, repositories.NewProfileRepository(db).SoftDelete(ctx, profile.ID))

	board, err := svc.Leaderboard(ctx, "overall", "all")
	require.NoError(t, err)
	assert.Empty(t, board.Entries)
}
