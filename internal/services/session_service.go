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

// SessionServiceInterface is the lifecycle shared by meditation and
// workout sessions.
type SessionServiceInterface interface {
	Start(ctx context.Context, profileID uuid.UUID, request request_models.StartSessionRequest) (*response_models.SessionResponse, error)
	Complete(ctx context.Context, profileID, sessionID uuid.UUID, request request_models.CompleteSessionRequest) (*response_models.SessionResponse, error)
	SaveProgress(ctx context.Context, profileID, sessionID uuid.UUID, positionSeconds int) (*response_models.SessionResponse, error)
	Rate(ctx context.Context, profileID, sessionID uuid.UUID, rating int) (*response_models.SessionResponse, error)
	History(ctx context.Context, profileID uuid.UUID, page, limit int, from, to int64) (*response_models.SessionHistoryResponse, error)
	Stats(ctx context.Context, profileID uuid.UUID, period string) (*response_models.SessionStatsResponse, error)
}

type sessionService struct {
	kind        db_models.SessionKind
	sessionRepo repositories.SessionRepository
	milestones  MilestoneNotifier
	log         *logger.Logger
}

// MilestoneNotifier lets the gamification layer react to completed
// sessions without a package cycle.
type MilestoneNotifier interface {
	SessionCompleted(ctx context.Context, profileID uuid.UUID, kind db_models.SessionKind)
}

func NewMeditationService(sessionRepo repositories.SessionRepository, milestones MilestoneNotifier, log *logger.Logger) SessionServiceInterface {
	return &sessionService{
		kind:        db_models.SessionMeditation,
		sessionRepo: sessionRepo,
		milestones:  milestones,
		log:         log,
	}
}

func NewWorkoutService(sessionRepo repositories.SessionRepository, milestones MilestoneNotifier, log *logger.Logger) SessionServiceInterface {
	return &sessionService{
		kind:        db_models.SessionWorkout,
		sessionRepo: sessionRepo,
		milestones:  milestones,
		log:         log,
	}
}

func (s *sessionService) Start(ctx context.Context, profileID uuid.UUID, request request_models.StartSessionRequest) (*response_models.SessionResponse, error) {
	session := &db_models.Session{
		ProfileID: profileID,
		Kind:      s.kind,
		ContentID: request.ContentID,
		Status:    db_models.SessionInProgress,
		StartedAt: time.Now().Unix(),
	}

	if err := s.sessionRepo.Insert(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.ToSessionResponse(session)
	return &resp, nil
}

// Complete transitions in_progress -> completed. The ownership check runs
// before any mutation; a foreign session is never touched.
func (s *sessionService) Complete(ctx context.Context, profileID, sessionID uuid.UUID, request request_models.CompleteSessionRequest) (*response_models.SessionResponse, error) {
	session, err := s.findOwned(ctx, profileID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == db_models.SessionCompleted {
		return nil, utils.ErrSessionCompleted
	}

	now := time.Now().Unix()
	if now < session.StartedAt {
		now = session.StartedAt
	}
	session.Status = db_models.SessionCompleted
	session.CompletedAt = &now

	if request.DurationMinutes != nil {
		session.DurationMinutes = *request.DurationMinutes
	} else {
		elapsed := int((now - session.StartedAt) / 60)
		if elapsed < 1 {
			elapsed = 1
		}
		session.DurationMinutes = elapsed
	}
	if request.Notes != "" {
		session.Notes = request.Notes
	}
	if request.MoodBefore != nil {
		session.MoodBefore = request.MoodBefore
	}
	if request.MoodAfter != nil {
		session.MoodAfter = request.MoodAfter
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if s.milestones != nil {
		s.milestones.SessionCompleted(ctx, profileID, s.kind)
	}

	resp := response_models.ToSessionResponse(session)
	return &resp, nil
}

func (s *sessionService) SaveProgress(ctx context.Context, profileID, sessionID uuid.UUID, positionSeconds int) (*response_models.SessionResponse, error) {
	session, err := s.findOwned(ctx, profileID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == db_models.SessionCompleted {
		return nil, utils.ErrSessionCompleted
	}

	session.PositionSeconds = positionSeconds
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.ToSessionResponse(session)
	return &resp, nil
}

// Rate is the one amendment allowed on a completed session.
func (s *sessionService) Rate(ctx context.Context, profileID, sessionID uuid.UUID, rating int) (*response_models.SessionResponse, error) {
	session, err := s.findOwned(ctx, profileID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != db_models.SessionCompleted {
		return nil, utils.ErrInvalidInput
	}

	session.Rating = &rating
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.ToSessionResponse(session)
	return &resp, nil
}

func (s *sessionService) History(ctx context.Context, profileID uuid.UUID, page, limit int, from, to int64) (*response_models.SessionHistoryResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if limit < 1 || limit > 50 {
		return nil, utils.ErrInvalidPageSize
	}

	sessions, total, err := s.sessionRepo.ListByProfile(ctx, profileID, s.kind, page, limit, from, to)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.SessionResponse, 0, len(sessions))
	for i := range sessions {
		items = append(items, response_models.ToSessionResponse(&sessions[i]))
	}

	return &response_models.SessionHistoryResponse{
		Sessions: items,
		Page:     page,
		Limit:    limit,
		Total:    total,
	}, nil
}

func (s *sessionService) Stats(ctx context.Context, profileID uuid.UUID, period string) (*response_models.SessionStatsResponse, error) {
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

	count, minutes, err := s.sessionRepo.CompletedTotals(ctx, profileID, s.kind, since)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	stamps, err := s.sessionRepo.CompletedTimestamps(ctx, profileID, s.kind, 365)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	moodDelta, err := s.sessionRepo.AverageMoodDelta(ctx, profileID, s.kind, since)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	avgMinutes := 0.0
	if count > 0 {
		avgMinutes = float64(minutes) / float64(count)
	}

	return &response_models.SessionStatsResponse{
		Period:            period,
		CompletedSessions: count,
		TotalMinutes:      minutes,
		StreakDays:        StreakDays(stamps, time.Now()),
		AverageMoodDelta:  moodDelta,
		AverageMinutes:    avgMinutes,
	}, nil
}

func (s *sessionService) findOwned(ctx context.Context, profileID, sessionID uuid.UUID) (*db_models.Session, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if session == nil || session.Kind != s.kind {
		return nil, utils.ErrSessionNotFound
	}
	if session.ProfileID != profileID {
		return nil, utils.ErrForbidden
	}
	return session, nil
}

// StreakDays counts consecutive UTC days with at least one completion,
// ending today or yesterday. Timestamps must be newest first.
func StreakDays(stamps []int64, now time.Time) int {
	if len(stamps) == 0 {
		return 0
	}

	days := make(map[string]bool, len(stamps))
	for _, ts := range stamps {
		days[utils.DayKey(ts)] = true
	}

	cursor := now.UTC()
	if !days[cursor.Format("2006-01-02")] {
		// A streak survives until the end of the current day.
		cursor = cursor.AddDate(0, 0, -1)
		if !days[cursor.Format("2006-01-02")] {
			return 0
		}
	}

	streak := 0
	for days[cursor.Format("2006-01-02")] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
