package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wellspring/internal/models/db_models"
)

type IdentityRepository interface {
	Insert(ctx context.Context, identity *db_models.Identity) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Identity, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Identity, error)
	Update(ctx context.Context, identity *db_models.Identity) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, pageSize int, afterID uuid.UUID) ([]db_models.Identity, error)
}

type identityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) IdentityRepository {
	return &identityRepository{db: db}
}

func (r *identityRepository) Insert(ctx context.Context, identity *db_models.Identity) error {
	return r.db.WithContext(ctx).Create(identity).Error
}

func (r *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Identity, error) {
	var identity db_models.Identity
	err := r.db.WithContext(ctx).First(&identity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &identity, nil
}

func (r *identityRepository) FindByEmail(ctx context.Context, email string) (*db_models.Identity, error) {
	var identity db_models.Identity
	err := r.db.WithContext(ctx).First(&identity, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &identity, nil
}

func (r *identityRepository) Update(ctx context.Context, identity *db_models.Identity) error {
	return r.db.WithContext(ctx).Save(identity).Error
}

func (r *identityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Identity{}, "id = ?", id).Error
}

// List pages by id so the cursor stays stable across inserts.
func (r *identityRepository) List(ctx context.Context, pageSize int, afterID uuid.UUID) ([]db_models.Identity, error) {
	var identities []db_models.Identity
	q := r.db.WithContext(ctx).Order("id asc").Limit(pageSize)
	if afterID != uuid.Nil {
		q = q.Where("id > ?", afterID)
	}
	if err := q.Find(&identities).Error; err != nil {
		return nil, err
	}
	return identities, nil
}
