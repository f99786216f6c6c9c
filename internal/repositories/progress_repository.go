package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wellspring/internal/models/db_models"
)

type CheckinRepository interface {
	Insert(ctx context.Context, checkin *db_models.MoodCheckin) error
	ListByProfile(ctx context.Context, profileID uuid.UUID, page, limit int, from, to int64) ([]db_models.MoodCheckin, int64, error)
	AverageMood(ctx context.Context, profileID uuid.UUID, since int64) (count int64, average float64, err error)
}

type checkinRepository struct {
	db *gorm.DB
}

func NewCheckinRepository(db *gorm.DB) CheckinRepository {
	return &checkinRepository{db: db}
}

func (r *checkinRepository) Insert(ctx context.Context, checkin *db_models.MoodCheckin) error {
	return r.db.WithContext(ctx).Create(checkin).Error
}

func (r *checkinRepository) ListByProfile(ctx context.Context, profileID uuid.UUID, page, limit int, from, to int64) ([]db_models.MoodCheckin, int64, error) {
	q := r.db.WithContext(ctx).Model(&db_models.MoodCheckin{}).
		Where("profile_id = ?", profileID)
	if from > 0 {
		q = q.Where("created_at >= ?", from)
	}
	if to > 0 {
		q = q.Where("created_at <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var checkins []db_models.MoodCheckin
	err := q.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&checkins).Error
	if err != nil {
		return nil, 0, err
	}
	return checkins, total, nil
}

func (r *checkinRepository) AverageMood(ctx context.Context, profileID uuid.UUID, since int64) (int64, float64, error) {
	type row struct {
		Count   int64
		Average *float64
	}
	var res row
	q := r.db.WithContext(ctx).Model(&db_models.MoodCheckin{}).
		Select("COUNT(*) as count, AVG(mood) as average").
		Where("profile_id = ?", profileID)
	if since > 0 {
		q = q.Where("created_at >= ?", since)
	}
	if err := q.Scan(&res).Error; err != nil {
		return 0, 0, err
	}
	avg := 0.0
	if res.Average != nil {
		avg = *res.Average
	}
	return res.Count, avg, nil
}

type GoalRepository interface {
	Insert(ctx context.Context, goal *db_models.Goal) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Goal, error)
	Update(ctx context.Context, goal *db_models.Goal) error
	ListByProfile(ctx context.Context, profileID uuid.UUID, status db_models.GoalStatus) ([]db_models.Goal, error)
	CountByStatus(ctx context.Context, profileID uuid.UUID, status db_models.GoalStatus) (int64, error)
}

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Insert(ctx context.Context, goal *db_models.Goal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Goal, error) {
	var goal db_models.Goal
	err := r.db.WithContext(ctx).First(&goal, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *db_models.Goal) error {
	return r.db.WithContext(ctx).Save(goal).Error
}

func (r *goalRepository) ListByProfile(ctx context.Context, profileID uuid.UUID, status db_models.GoalStatus) ([]db_models.Goal, error) {
	q := r.db.WithContext(ctx).Where("profile_id = ?", profileID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var goals []db_models.Goal
	if err := q.Order("created_at desc").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *goalRepository) CountByStatus(ctx context.Context, profileID uuid.UUID, status db_models.GoalStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Goal{}).
		Where("profile_id = ? AND status = ?", profileID, status).
		Count(&n).Error
	return n, err
}
