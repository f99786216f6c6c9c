package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"wellspring/internal/models/response_models"
	"wellspring/internal/repositories"
	"wellspring/pkg/logger"
	"wellspring/pkg/utils"
)

const pastNotesLimit = 3

type AIServiceInterface interface {
	AnalyzeMood(ctx context.Context, profileID uuid.UUID, text, language string) (*response_models.MoodAnalysisResponse, error)
	Chat(ctx context.Context, profileID uuid.UUID, message, conversationID string) (*response_models.ChatResponse, error)
	GenerateReport(ctx context.Context, profileID uuid.UUID, format string) (*response_models.WellnessReport, []byte, error)
}

type AIService struct {
	llm           utils.LLMClientInterface
	embedder      utils.EmbeddingClientInterface
	embeddingRepo repositories.MoodEmbeddingRepository
	profileRepo   repositories.ProfileRepository
	meditation    SessionServiceInterface
	workout       SessionServiceInterface
	progress      ProgressServiceInterface
	gamification  GamificationServiceInterface
	log           *logger.Logger
}

func NewAIService(
	llm utils.LLMClientInterface,
	embedder utils.EmbeddingClientInterface,
	embeddingRepo repositories.MoodEmbeddingRepository,
	profileRepo repositories.ProfileRepository,
	meditation SessionServiceInterface,
	workout SessionServiceInterface,
	progress ProgressServiceInterface,
	gamification GamificationServiceInterface,
	log *logger.Logger,
) AIServiceInterface {
	return &AIService{
		llm:           llm,
		embedder:      embedder,
		embeddingRepo: embeddingRepo,
		profileRepo:   profileRepo,
		meditation:    meditation,
		workout:       workout,
		progress:      progress,
		gamification:  gamification,
		log:           log,
	}
}

func (a *AIService) AnalyzeMood(ctx context.Context, profileID uuid.UUID, text, language string) (*response_models.MoodAnalysisResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, utils.ErrInvalidInput
	}
	if language == "" {
		language = "en"
	}

	pastNotes := a.similarPastNotes(ctx, profileID, text)

	analysis, err := a.llm.AnalyzeMood(ctx, text, language, pastNotes)
	if err != nil {
		a.log.Error("mood analysis failed", "err", err)
		return nil, utils.ErrAIUnavailable
	}

	return &response_models.MoodAnalysisResponse{
		Sentiment:  analysis.Sentiment,
		Score:      analysis.Score,
		Energy:     analysis.Energy,
		Keywords:   analysis.Keywords,
		Suggestion: analysis.Suggestion,
		Language:   language,
	}, nil
}

// similarPastNotes retrieves the caller's most similar previous checkin
// notes to ground the analysis. Best effort: embedding or lookup
// failures only cost us the context, never the request.
func (a *AIService) similarPastNotes(ctx context.Context, profileID uuid.UUID, text string) []string {
	if a.embedder == nil || a.embeddingRepo == nil {
		return nil
	}

	vector, err := a.embedder.GetEmbedding(ctx, text)
	if err != nil {
		a.log.Warn("embedding lookup skipped", "err", err)
		return nil
	}

	neighbors, err := a.embeddingRepo.NearestByVector(profileID.String(), vector, pastNotesLimit)
	if err != nil {
		a.log.Warn("similar note lookup failed", "err", err)
		return nil
	}

	notes := make([]string, 0, len(neighbors))
	for _, n := range neighbors {
		if n.Note != "" {
			notes = append(notes, n.Note)
		}
	}
	return notes
}

func (a *AIService) Chat(ctx context.Context, profileID uuid.UUID, message, conversationID string) (*response_models.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, utils.ErrInvalidInput
	}
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	reply, err := a.llm.Chat(ctx, message, conversationID)
	if err != nil {
		a.log.Error("chat completion failed", "err", err)
		return nil, utils.ErrAIUnavailable
	}

	return &response_models.ChatResponse{
		Reply:          reply,
		ConversationID: conversationID,
	}, nil
}

// GenerateReport assembles a wellness report over the last 30 days.
// format "json" returns the structured report, "pdf" renders it.
func (a *AIService) GenerateReport(ctx context.Context, profileID uuid.UUID, format string) (*response_models.WellnessReport, []byte, error) {
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "pdf" {
		return nil, nil, utils.ErrInvalidInput
	}

	profile, err := a.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, nil, utils.ErrProfileNotFound
	}

	meditationStats, err := a.meditation.Stats(ctx, profileID, "30d")
	if err != nil {
		return nil, nil, err
	}
	workoutStats, err := a.workout.Stats(ctx, profileID, "30d")
	if err != nil {
		return nil, nil, err
	}
	summary, err := a.progress.Summary(ctx, profileID, "30d")
	if err != nil {
		return nil, nil, err
	}
	level, err := a.gamification.Level(ctx, profileID)
	if err != nil {
		return nil, nil, err
	}

	report := &response_models.WellnessReport{
		GeneratedAt: time.Now().Unix(),
		Profile:     response_models.ToProfileResponse(profile),
		Meditation:  *meditationStats,
		Workout:     *workoutStats,
		Progress:    *summary,
		Level:       *level,
	}

	if format == "json" {
		return report, nil, nil
	}

	raw, err := renderReportPDF(report)
	if err != nil {
		a.log.Error("report pdf render failed", "err", err)
		return nil, nil, utils.ErrProviderError
	}
	return report, raw, nil
}

func renderReportPDF(report *response_models.WellnessReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "Wellness Report")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("%s  (%s)", report.Profile.DisplayName, report.Profile.Email))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Generated %s", time.Unix(report.GeneratedAt, 0).UTC().Format("2006-01-02 15:04 UTC")))
	pdf.Ln(12)

	section := func(title string, lines ...string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 9, title)
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		for _, line := range lines {
			pdf.Cell(0, 7, line)
			pdf.Ln(7)
		}
		pdf.Ln(4)
	}

	section("Meditation (30d)",
		fmt.Sprintf("Completed sessions: %d", report.Meditation.CompletedSessions),
		fmt.Sprintf("Total minutes: %d", report.Meditation.TotalMinutes),
		fmt.Sprintf("Current streak: %d days", report.Meditation.StreakDays),
	)
	section("Workout (30d)",
		fmt.Sprintf("Completed sessions: %d", report.Workout.CompletedSessions),
		fmt.Sprintf("Total minutes: %d", report.Workout.TotalMinutes),
		fmt.Sprintf("Current streak: %d days", report.Workout.StreakDays),
	)
	section("Mood & Goals (30d)",
		fmt.Sprintf("Mood checkins: %d (average %.1f)", report.Progress.MoodCheckins, report.Progress.AverageMood),
		fmt.Sprintf("Goals: %d active, %d completed", report.Progress.ActiveGoals, report.Progress.CompletedGoals),
	)
	section("Level",
		fmt.Sprintf("Level %d with %d points", report.Level.Level, report.Level.Points),
		fmt.Sprintf("Next level at %d minutes", report.Level.NextLevelAt),
	)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
