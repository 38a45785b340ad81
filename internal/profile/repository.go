// File: internal/profile/repository.go
package profile

import (
	"context"
	"errors"

	"careerhub_backend/internal/common"
	"careerhub_backend/internal/platform/database"

	"gorm.io/gorm"
)

// Repository defines the interface for profile data operations.
type Repository interface {
	FindByUserID(ctx context.Context, userID string) (*Profile, error)
	Create(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM profile repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) FindByUserID(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("No profile found for this user.")
		}
		return nil, database.Classify(err)
	}
	return &p, nil
}

func (r *gormRepository) Create(ctx context.Context, p *Profile) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return database.Classify(err)
	}
	return nil
}

func (r *gormRepository) Update(ctx context.Context, p *Profile) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return database.Classify(err)
	}
	return nil
}
