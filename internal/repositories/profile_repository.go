package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wellspring/internal/models/db_models"
)

type ProfileRepository interface {
	Insert(ctx context.Context, profile *db_models.Profile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Profile, error)
	Update(ctx context.Context, profile *db_models.Profile) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Insert(ctx context.Context, profile *db_models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).First(&profile, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *db_models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Profile{}, "id = ?", id).Error
}
