package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wellspring/internal/models/db_models"
)

type SessionRepository interface {
	Insert(ctx context.Context, session *db_models.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Session, error)
	Update(ctx context.Context, session *db_models.Session) error
	ListByProfile(ctx context.Context, profileID uuid.UUID, kind db_models.SessionKind, page, limit int, from, to int64) ([]db_models.Session, int64, error)
	CompletedTotals(ctx context.Context, profileID uuid.UUID, kind db_models.SessionKind, since int64) (count int64, minutes int64, err error)
	CompletedTimestamps(ctx context.Context, profileID uuid.UUID, kind db_models.SessionKind, limit int) ([]int64, error)
	AverageMoodDelta(ctx context.Context, profileID uuid.UUID, kind db_models.SessionKind, since int64) (float64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Insert(ctx context.Context, session *db_models.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Session, error) {
	var session db_models.Session
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Update(ctx context.Context, session *db_models.Session) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *sessionRepository) ListByProfile(ctx context.Context, profileID uuid.UUID, kind db_models.SessionKind, page, limit int, from, to int64) ([]db_models.Session, int64, error) {
	q := r.db.WithContext(ctx).Model(&db_models.Session{}).
		Where("profile_id = ? AND kind = ?", profileID, kind)
	if from > 0 {
		q = q.Where("started_at >= ?", from)
	}
	if to > 0 {
		q = q.Where("started_at <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sessions []db_models.Session
	err := q.Order("started_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

func (r *sessionRepository) CompletedTotals(ctx context.Context, profileID uuid.UUID, kind db_models.SessionKind, since int64) (int64, int64, error) {
	type row struct {
		Count   int64
		Minutes int64
	}
	var res row
	q := r.db.WithContext(ctx).Model(&db_models.Session{}).
		Select("COUNT(*) as count, COALESCE(SUM(duration_minutes), 0) as minutes").
		Where("profile_id = ? AND status = ?", profileID, db_models.SessionCompleted)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if since > 0 {
		q = q.Where("completed_at >= ?", since)
	}
	if err := q.Scan(&res).Error; err != nil {
		return 0, 0, err
	}
	return res.Count, res.Minutes, nil
}

// CompletedTimestamps returns completion times newest first, for streak
// computation in the service layer.
func (r *sessionRepository) CompletedTimestamps(ctx context.Context, profileID uuid.UUID, kind db_models.SessionKind, limit int) ([]int64, error) {
	var stamps []int64
	q := r.db.WithContext(ctx).Model(&db_models.Session{}).
		Where("profile_id = ? AND status = ?", profileID, db_models.SessionCompleted)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	err := q.Order("completed_at desc").Limit(limit).Pluck("completed_at", &stamps).Error
	if err != nil {
		return nil, err
	}
	return stamps, nil
}

func (r *sessionRepository) AverageMoodDelta(ctx context.Context, profileID uuid.UUID, kind db_models.SessionKind, since int64) (float64, error) {
	var delta *float64
	q := r.db.WithContext(ctx).Model(&db_models.Session{}).
		Select("AVG(mood_after - mood_before)").
		Where("profile_id = ? AND kind = ? AND status = ?", profileID, kind, db_models.SessionCompleted).
		Where("mood_before IS NOT NULL AND mood_after IS NOT NULL")
	if since > 0 {
		q = q.Where("completed_at >= ?", since)
	}
	if err := q.Scan(&delta).Error; err != nil {
		return 0, err
	}
	if delta == nil {
		return 0, nil
	}
	return *delta, nil
}
