package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wellspring/internal/models/db_models"
	"wellspring/internal/models/request_models"
	"wellspring/internal/models/response_models"
	"wellspring/internal/repositories"
	"wellspring/pkg/logger"
	"wellspring/pkg/utils"
)

type ProgressServiceInterface interface {
	LogMoodCheckin(ctx context.Context, profileID uuid.UUID, request request_models.MoodCheckinRequest) (*response_models.MoodCheckinResponse, error)
	MoodHistory(ctx context.Context, profileID uuid.UUID, page, limit int, from, to int64) (*response_models.MoodHistoryResponse, error)
	CreateGoal(ctx context.Context, profileID uuid.UUID, request request_models.CreateGoalRequest) (*response_models.GoalResponse, error)
	UpdateGoal(ctx context.Context, profileID, goalID uuid.UUID, request request_models.UpdateGoalRequest) (*response_models.GoalResponse, error)
	ListGoals(ctx context.Context, profileID uuid.UUID, status string) ([]response_models.GoalResponse, error)
	Summary(ctx context.Context, profileID uuid.UUID, period string) (*response_models.ProgressSummaryResponse, error)
}

type ProgressService struct {
	checkinRepo   repositories.CheckinRepository
	goalRepo      repositories.GoalRepository
	sessionRepo   repositories.SessionRepository
	embeddings    utils.EmbeddingClientInterface
	embeddingRepo repositories.MoodEmbeddingRepository
	log           *logger.Logger
}

func NewProgressService(
	checkinRepo repositories.CheckinRepository,
	goalRepo repositories.GoalRepository,
	sessionRepo repositories.SessionRepository,
	embeddings utils.EmbeddingClientInterface,
	embeddingRepo repositories.MoodEmbeddingRepository,
	log *logger.Logger,
) ProgressServiceInterface {
	return &ProgressService{
		checkinRepo:   checkinRepo,
		goalRepo:      goalRepo,
		sessionRepo:   sessionRepo,
		embeddings:    embeddings,
		embeddingRepo: embeddingRepo,
		log:           log,
	}
}

func (p *ProgressService) LogMoodCheckin(ctx context.Context, profileID uuid.UUID, request request_models.MoodCheckinRequest) (*response_models.MoodCheckinResponse, error) {
	checkin := &db_models.MoodCheckin{
		ProfileID: profileID,
		Mood:      request.Mood,
		Note:      request.Note,
	}
	if err := p.checkinRepo.Insert(ctx, checkin); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Embedding storage is best effort: a provider outage never fails
	// the checkin itself.
	if request.Note != "" && p.embeddings != nil && p.embeddingRepo != nil {
		if vector, err := p.embeddings.GetEmbedding(ctx, request.Note); err != nil {
			p.log.Warn("mood embedding skipped", "err", err)
		} else {
			err := p.embeddingRepo.Insert(db_models.MoodEmbedding{
				CheckinID: checkin.ID.String(),
				ProfileID: profileID.String(),
				Note:      request.Note,
				Embedding: vector,
			})
			if err != nil {
				p.log.Warn("mood embedding insert failed", "err", err)
			}
		}
	}

	resp := response_models.ToMoodCheckinResponse(checkin)
	return &resp, nil
}

func (p *ProgressService) MoodHistory(ctx context.Context, profileID uuid.UUID, page, limit int, from, to int64) (*response_models.MoodHistoryResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if limit < 1 || limit > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	checkins, total, err := p.checkinRepo.ListByProfile(ctx, profileID, page, limit, from, to)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.MoodCheckinResponse, 0, len(checkins))
	for i := range checkins {
		items = append(items, response_models.ToMoodCheckinResponse(&checkins[i]))
	}

	return &response_models.MoodHistoryResponse{
		Checkins: items,
		Page:     page,
		Limit:    limit,
		Total:    total,
	}, nil
}

func (p *ProgressService) CreateGoal(ctx context.Context, profileID uuid.UUID, request request_models.CreateGoalRequest) (*response_models.GoalResponse, error) {
	goal := &db_models.Goal{
		ProfileID:   profileID,
		Title:       request.Title,
		TargetValue: request.TargetValue,
		Unit:        request.Unit,
		Status:      db_models.GoalActive,
	}
	if err := p.goalRepo.Insert(ctx, goal); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.ToGoalResponse(goal)
	return &resp, nil
}

func (p *ProgressService) UpdateGoal(ctx context.Context, profileID, goalID uuid.UUID, request request_models.UpdateGoalRequest) (*response_models.GoalResponse, error) {
	goal, err := p.goalRepo.FindByID(ctx, goalID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if goal == nil {
		return nil, utils.ErrGoalNotFound
	}
	if goal.ProfileID != profileID {
		return nil, utils.ErrForbidden
	}

	if request.CurrentValue != nil {
		goal.CurrentValue = *request.CurrentValue
		if goal.CurrentValue >= goal.TargetValue && goal.Status == db_models.GoalActive {
			goal.Status = db_models.GoalCompleted
		}
	}
	if request.Status != nil {
		goal.Status = db_models.GoalStatus(*request.Status)
	}

	if err := p.goalRepo.Update(ctx, goal); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.ToGoalResponse(goal)
	return &resp, nil
}

func (p *ProgressService) ListGoals(ctx context.Context, profileID uuid.UUID, status string) ([]response_models.GoalResponse, error) {
	goals, err := p.goalRepo.ListByProfile(ctx, profileID, db_models.GoalStatus(status))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.GoalResponse, 0, len(goals))
	for i := range goals {
		items = append(items, response_models.ToGoalResponse(&goals[i]))
	}
	return items, nil
}

func (p *ProgressService) Summary(ctx context.Context, profileID uuid.UUID, period string) (*response_models.ProgressSummaryResponse, error) {
	if !utils.ValidPeriod(period) {
		return nil, utils.ErrInvalidInput
	}
	if period == "" {
		period = "30d"
	}
	since := int64(0)
	if start := utils.PeriodStart(period, time.Now()); !start.IsZero() {
		since = start.Unix()
	}

	checkinCount, avgMood, err := p.checkinRepo.AverageMood(ctx, profileID, since)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	activeGoals, err := p.goalRepo.CountByStatus(ctx, profileID, db_models.GoalActive)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	completedGoals, err := p.goalRepo.CountByStatus(ctx, profileID, db_models.GoalCompleted)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	meditationCount, meditationMinutes, err := p.sessionRepo.CompletedTotals(ctx, profileID, db_models.SessionMeditation, since)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	workoutCount, workoutMinutes, err := p.sessionRepo.CompletedTotals(ctx, profileID, db_models.SessionWorkout, since)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ProgressSummaryResponse{
		Period:             period,
		MoodCheckins:       checkinCount,
		AverageMood:        avgMood,
		ActiveGoals:        activeGoals,
		CompletedGoals:     completedGoals,
		MeditationSessions: meditationCount,
		WorkoutSessions:    workoutCount,
		TotalMinutes:       meditationMinutes + workoutMinutes,
	}, nil
}
