package repositories

import (
	"context"

	"gorm.io/gorm"

	"wellspring/internal/models/db_models"
)

type AudioRepository interface {
	ListTracksByKind(ctx context.Context, kind db_models.AudioKind) ([]db_models.AudioTrack, error)
	ListCategories(ctx context.Context) ([]string, error)
	InsertFeedback(ctx context.Context, feedback *db_models.AudioFeedback) error
}

type audioRepository struct {
	db *gorm.DB
}

func NewAudioRepository(db *gorm.DB) AudioRepository {
	return &audioRepository{db: db}
}

func (r *audioRepository) ListTracksByKind(ctx context.Context, kind db_models.AudioKind) ([]db_models.AudioTrack, error) {
	var tracks []db_models.AudioTrack
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("category asc, title asc").
		Find(&tracks).Error
	if err != nil {
		return nil, err
	}
	return tracks, nil
}

func (r *audioRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&db_models.AudioTrack{}).
		Distinct("category").
		Where("category <> ''").
		Order("category asc").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *audioRepository) InsertFeedback(ctx context.Context, feedback *db_models.AudioFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}
