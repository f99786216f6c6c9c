package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wellspring/internal/models/db_models"
)

// LeaderboardRow is one aggregated ranking row.
type LeaderboardRow struct {
	ProfileID   string `gorm:"column:profile_id"`
	DisplayName string `gorm:"column:display_name"`
	Minutes     int64  `gorm:"column:minutes"`
	Sessions    int64  `gorm:"column:sessions"`
}

type GamificationRepository interface {
	InsertBadge(ctx context.Context, badge *db_models.Badge) error
	ListBadges(ctx context.Context, profileID uuid.UUID) ([]db_models.Badge, error)
	CountBadges(ctx context.Context, profileID uuid.UUID) (int64, error)
	HasBadge(ctx context.Context, profileID uuid.UUID, code string) (bool, error)

	InsertCelebration(ctx context.Context, celebration *db_models.Celebration) error
	FindCelebration(ctx context.Context, id uuid.UUID) (*db_models.Celebration, error)
	MarkCelebrationViewed(ctx context.Context, id uuid.UUID) error
	ListUnviewedCelebrations(ctx context.Context, profileID uuid.UUID) ([]db_models.Celebration, error)

	LeaderboardRows(ctx context.Context, kind db_models.SessionKind, since int64, limit int) ([]LeaderboardRow, error)
}

type gamificationRepository struct {
	db *gorm.DB
}

func NewGamificationRepository(db *gorm.DB) GamificationRepository {
	return &gamificationRepository{db: db}
}

func (r *gamificationRepository) InsertBadge(ctx context.Context, badge *db_models.Badge) error {
	return r.db.WithContext(ctx).Create(badge).Error
}

func (r *gamificationRepository) ListBadges(ctx context.Context, profileID uuid.UUID) ([]db_models.Badge, error) {
	var badges []db_models.Badge
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at desc").
		Find(&badges).Error
	if err != nil {
		return nil, err
	}
	return badges, nil
}

func (r *gamificationRepository) CountBadges(ctx context.Context, profileID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Badge{}).
		Where("profile_id = ?", profileID).
		Count(&n).Error
	return n, err
}

func (r *gamificationRepository) HasBadge(ctx context.Context, profileID uuid.UUID, code string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Badge{}).
		Where("profile_id = ? AND code = ?", profileID, code).
		Count(&n).Error
	return n > 0, err
}

func (r *gamificationRepository) InsertCelebration(ctx context.Context, celebration *db_models.Celebration) error {
	return r.db.WithContext(ctx).Create(celebration).Error
}

func (r *gamificationRepository) FindCelebration(ctx context.Context, id uuid.UUID) (*db_models.Celebration, error) {
	var celebration db_models.Celebration
	err := r.db.WithContext(ctx).First(&celebration, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &celebration, nil
}

func (r *gamificationRepository) MarkCelebrationViewed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&db_models.Celebration{}).
		Where("id = ?", id).
		Update("viewed", true).Error
}

func (r *gamificationRepository) ListUnviewedCelebrations(ctx context.Context, profileID uuid.UUID) ([]db_models.Celebration, error) {
	var celebrations []db_models.Celebration
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND viewed = ?", profileID, false).
		Order("created_at desc").
		Find(&celebrations).Error
	if err != nil {
		return nil, err
	}
	return celebrations, nil
}

// LeaderboardRows ranks profiles by completed minutes. Ties break on
// profile_id ascending so the ordering is deterministic across refreshes.
func (r *gamificationRepository) LeaderboardRows(ctx context.Context, kind db_models.SessionKind, since int64, limit int) ([]LeaderboardRow, error) {
	q := r.db.WithContext(ctx).Model(&db_models.Session{}).
		Select("sessions.profile_id as profile_id, profiles.display_name as display_name, COALESCE(SUM(sessions.duration_minutes), 0) as minutes, COUNT(*) as sessions").
		Joins("JOIN profiles ON profiles.id = sessions.profile_id AND profiles.deleted_at IS NULL").
		Where("sessions.status = ?", db_models.SessionCompleted)
	if kind != "" {
		q = q.Where("sessions.kind = ?", kind)
	}
	if since > 0 {
		q = q.Where("sessions.completed_at >= ?", since)
	}

	var rows []LeaderboardRow
	err := q.Group("sessions.profile_id, profiles.display_name").
		Order("minutes desc, profile_id asc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
