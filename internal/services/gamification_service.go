package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"

	"wellspring/internal/models/db_models"
	"wellspring/internal/models/request_models"
	"wellspring/internal/models/response_models"
	"wellspring/internal/repositories"
	"wellspring/pkg/logger"
	"wellspring/pkg/utils"
)

const (
	leaderboardLimit    = 100
	leaderboardCacheTTL = 60 * time.Second
)

type GamificationServiceInterface interface {
	Badges(ctx context.Context, profileID uuid.UUID) ([]response_models.BadgeResponse, error)
	Level(ctx context.Context, profileID uuid.UUID) (*response_models.LevelResponse, error)
	Rewards(ctx context.Context, profileID uuid.UUID) (*response_models.RewardsResponse, error)
	Leaderboard(ctx context.Context, category, period string) (*response_models.LeaderboardResponse, error)
	TriggerMilestone(ctx context.Context, profileID uuid.UUID, request request_models.TriggerMilestoneRequest) (*response_models.CelebrationResponse, error)
	MarkCelebrationViewed(ctx context.Context, profileID, celebrationID uuid.UUID) (*response_models.CelebrationResponse, error)

	MilestoneNotifier
}

type GamificationService struct {
	repo        repositories.GamificationRepository
	sessionRepo repositories.SessionRepository
	cache       *redis.Client
	log         *logger.Logger
}

func NewGamificationService(
	repo repositories.GamificationRepository,
	sessionRepo repositories.SessionRepository,
	cache *redis.Client,
	log *logger.Logger,
) GamificationServiceInterface {
	return &GamificationService{
		repo:        repo,
		sessionRepo: sessionRepo,
		cache:       cache,
		log:         log,
	}
}

func (g *GamificationService) Badges(ctx context.Context, profileID uuid.UUID) ([]response_models.BadgeResponse, error) {
	badges, err := g.repo.ListBadges(ctx, profileID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.BadgeResponse, 0, len(badges))
	for i := range badges {
		items = append(items, response_models.ToBadgeResponse(&badges[i]))
	}
	return items, nil
}

// Level derives from lifetime completed minutes:
// level = floor(sqrt(minutes/10)) + 1.
func (g *GamificationService) Level(ctx context.Context, profileID uuid.UUID) (*response_models.LevelResponse, error) {
	count, minutes, err := g.sessionRepo.CompletedTotals(ctx, profileID, "", 0)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	level := int(math.Sqrt(float64(minutes)/10.0)) + 1
	nextAt := int64(10 * level * level)

	return &response_models.LevelResponse{
		Level:         level,
		Points:        minutes,
		NextLevelAt:   nextAt,
		TotalMinutes:  minutes,
		TotalSessions: count,
	}, nil
}

func (g *GamificationService) Rewards(ctx context.Context, profileID uuid.UUID) (*response_models.RewardsResponse, error) {
	badgeCount, err := g.repo.CountBadges(ctx, profileID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	celebrations, err := g.repo.ListUnviewedCelebrations(ctx, profileID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.CelebrationResponse, 0, len(celebrations))
	for i := range celebrations {
		items = append(items, response_models.ToCelebrationResponse(&celebrations[i]))
	}

	return &response_models.RewardsResponse{
		BadgeCount:   badgeCount,
		Celebrations: items,
	}, nil
}

func (g *GamificationService) Leaderboard(ctx context.Context, category, period string) (*response_models.LeaderboardResponse, error) {
	if category == "" {
		category = "overall"
	}
	if period == "" {
		period = "30d"
	}

	var kind db_models.SessionKind
	switch category {
	case "overall":
		kind = ""
	case "meditation":
		kind = db_models.SessionMeditation
	case "workout":
		kind = db_models.SessionWorkout
	default:
		return nil, utils.ErrInvalidInput
	}
	if !utils.ValidPeriod(period) {
		return nil, utils.ErrInvalidInput
	}

	cacheKey := fmt.Sprintf("leaderboard:%s:%s", category, period)
	if g.cache != nil {
		if raw, err := g.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached response_models.LeaderboardResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	since := int64(0)
	if start := utils.PeriodStart(period, time.Now()); !start.IsZero() {
		since = start.Unix()
	}

	rows, err := g.repo.LeaderboardRows(ctx, kind, since, leaderboardLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	entries := make([]response_models.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, response_models.LeaderboardEntry{
			Rank:        i + 1,
			ProfileID:   row.ProfileID,
			DisplayName: row.DisplayName,
			Minutes:     row.Minutes,
			Sessions:    row.Sessions,
		})
	}

	resp := &response_models.LeaderboardResponse{
		Category: category,
		Period:   period,
		Entries:  entries,
	}

	if g.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := g.cache.Set(ctx, cacheKey, raw, leaderboardCacheTTL).Err(); err != nil {
				g.log.Warn("leaderboard cache write failed", "err", err)
			}
		}
	}

	return resp, nil
}

func (g *GamificationService) TriggerMilestone(ctx context.Context, profileID uuid.UUID, request request_models.TriggerMilestoneRequest) (*response_models.CelebrationResponse, error) {
	if !db_models.ValidCelebrationEvent(request.EventType) {
		return nil, utils.ErrInvalidInput
	}

	data := datatypes.JSON("{}")
	if len(request.Data) > 0 {
		if !json.Valid(request.Data) {
			return nil, utils.ErrInvalidInput
		}
		data = datatypes.JSON(request.Data)
	}

	celebration := &db_models.Celebration{
		ProfileID: profileID,
		EventType: db_models.CelebrationEvent(request.EventType),
		Data:      data,
	}
	if err := g.repo.InsertCelebration(ctx, celebration); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.ToCelebrationResponse(celebration)
	return &resp, nil
}

// MarkCelebrationViewed flips viewed exactly once. Marking an already
// viewed celebration is a success no-op.
func (g *GamificationService) MarkCelebrationViewed(ctx context.Context, profileID, celebrationID uuid.UUID) (*response_models.CelebrationResponse, error) {
	celebration, err := g.repo.FindCelebration(ctx, celebrationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if celebration == nil {
		return nil, utils.ErrCelebrationNotFound
	}
	if celebration.ProfileID != profileID {
		return nil, utils.ErrForbidden
	}

	if !celebration.Viewed {
		if err := g.repo.MarkCelebrationViewed(ctx, celebrationID); err != nil {
			return nil, utils.ErrDatabaseError
		}
		celebration.Viewed = true
	}

	resp := response_models.ToCelebrationResponse(celebration)
	return &resp, nil
}

// SessionCompleted awards milestone badges and celebrations after a
// session completes. Failures only log; they never fail the completion.
func (g *GamificationService) SessionCompleted(ctx context.Context, profileID uuid.UUID, kind db_models.SessionKind) {
	count, minutes, err := g.sessionRepo.CompletedTotals(ctx, profileID, "", 0)
	if err != nil {
		g.log.Warn("milestone check failed", "err", err)
		return
	}

	if count == 1 {
		g.award(ctx, profileID, "first_session", "First Step",
			"Completed your very first session", db_models.EventFirstSession)
	}
	if minutes >= 100 {
		g.award(ctx, profileID, "minutes_100", "Century",
			"Logged 100 total minutes", db_models.EventMinutes100)
	}

	stamps, err := g.sessionRepo.CompletedTimestamps(ctx, profileID, "", 365)
	if err != nil {
		g.log.Warn("milestone streak check failed", "err", err)
		return
	}
	streak := StreakDays(stamps, time.Now())
	if streak >= 7 {
		g.award(ctx, profileID, "streak_7", "One Week Strong",
			"Seven days in a row", db_models.EventStreak7)
	}
	if streak >= 30 {
		g.award(ctx, profileID, "streak_30", "Habit Formed",
			"Thirty days in a row", db_models.EventStreak30)
	}
}

// award grants a badge once per profile, with a celebration on first
// grant.
func (g *GamificationService) award(ctx context.Context, profileID uuid.UUID, code, name, description string, event db_models.CelebrationEvent) {
	has, err := g.repo.HasBadge(ctx, profileID, code)
	if err != nil || has {
		return
	}

	badge := &db_models.Badge{
		ProfileID:   profileID,
		Code:        code,
		Name:        name,
		Description: description,
	}
	if err := g.repo.InsertBadge(ctx, badge); err != nil {
		g.log.Warn("badge insert failed", "code", code, "err", err)
		return
	}

	celebration := &db_models.Celebration{
		ProfileID: profileID,
		EventType: event,
		Data:      datatypes.JSON(fmt.Sprintf(`{"badge":%q}`, code)),
	}
	if err := g.repo.InsertCelebration(ctx, celebration); err != nil {
		g.log.Warn("celebration insert failed", "code", code, "err", err)
	}
}
