package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellspring/internal/models/db_models"
	"wellspring/internal/repositories"
	"wellspring/pkg/utils"
)

// fakeLLM returns canned answers and counts invocations.
type fakeLLM struct {
	analyzeCalls int
	chatCalls    int
}

func (f *fakeLLM) AnalyzeMood(_ context.Context, _, _ string, _ []string) (*utils.MoodAnalysis, error) {
	f.analyzeCalls++
	return &utils.MoodAnalysis{
		Sentiment:  "positive",
		Score:      0.8,
		Energy:     "medium",
		Keywords:   []string{"rested"},
		Suggestion: "keep the morning routine",
	}, nil
}

func (f *fakeLLM) Chat(_ context.Context, _, _ string) (string, error) {
	f.chatCalls++
	return "take a short walk", nil
}

func newAIFixture(t *testing.T) (AIServiceInterface, *fakeLLM, SessionServiceInterface, *db_models.Profile) {
	t.Helper()

	db := newTestDB(t)
	sessionRepo := repositories.NewSessionRepository(db)
	gamification := NewGamificationService(repositories.NewGamificationRepository(db), sessionRepo, nil, testLogger())
	meditation := NewMeditationService(sessionRepo, gamification, testLogger())
	workout := NewWorkoutService(sessionRepo, gamification, testLogger())
	progress := NewProgressService(
		repositories.NewCheckinRepository(db),
		repositories.NewGoalRepository(db),
		sessionRepo,
		nil,
		nil,
		testLogger(),
	)

	llm := &fakeLLM{}
	svc := NewAIService(
		llm,
		nil,
		nil,
		repositories.NewProfileRepository(db),
		meditation,
		workout,
		progress,
		gamification,
		testLogger(),
	)
	profile := createTestProfile(t, db, "insight@example.com")
	return svc, llm, meditation, profile
}

func TestAnalyzeMoodBlankTextSkipsProvider(t *testing.T) {
	svc, llm, _, profile := newAIFixture(t)

	_, err := svc.AnalyzeMood(context.Background(), profile.ID, "   ", "en")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Equal(t, 0, llm.analyzeCalls)
}

func TestAnalyzeMoodDefaultsLanguage(t *testing.T) {
	svc, llm, _, profile := newAIFixture(t)

	analysis, err := svc.AnalyzeMood(context.Background(), profile.ID, "slept like a log", "")
	require.NoError(t, err)
	assert.Equal(t, "en", analysis.Language)
	assert.Equal(t, "positive", analysis.Sentiment)
	assert.Equal(t, 1, llm.analyzeCalls)
}

func TestChatGeneratesConversationID(t *testing.T) {
	svc, llm, _, profile := newAIFixture(t)
	ctx := context.Background()

	resp, err := svc.Chat(ctx, profile.ID, "feeling restless", "")
	require.NoError(t, err)
	assert.Equal(t, "take a short walk", resp.Reply)
	_, err = uuid.Parse(resp.ConversationID)
	assert.NoError(t, err)

	existing := uuid.NewString()
	resp, err = svc.Chat(ctx, profile.ID, "still restless", existing)
	require.NoError(t, err)
	assert.Equal(t, existing, resp.ConversationID)
	assert.Equal(t, 2, llm.chatCalls)

	_, err = svc.Chat(ctx, profile.ID, "  ", "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGenerateReport(t *testing.T) {
	svc, _, meditation, profile := newAIFixture(t)
	ctx := context.Background()

	completeSession(t, meditation, profile.ID, 20)

	report, raw, err := svc.GenerateReport(ctx, profile.ID, "json")
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Nil(t, raw)
	assert.Equal(t, profile.ID.String(), report.Profile.ID)
	assert.Equal(t, int64(1), report.Meditation.CompletedSessions)
	assert.Equal(t, int64(20), report.Meditation.TotalMinutes)
	assert.Equal(t, int64(0), report.Workout.CompletedSessions)
	assert.GreaterOrEqual(t, report.Level.Level, 1)

	_, pdfBytes, err := svc.GenerateReport(ctx, profile.ID, "pdf")
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))

	_, _, err = svc.GenerateReport(ctx, profile.ID, "docx")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, _, err = svc.GenerateReport(ctx, uuid.New(), "json")
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)
}
