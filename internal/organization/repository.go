// File: internal/organization/repository.go
package organization

import (
	"context"
	"errors"

	"careerhub_backend/internal/common"
	"careerhub_backend/internal/platform/database"

	"gorm.io/gorm"
)

// Repository defines the interface for organization data operations.
type Repository interface {
	FindByOwner(ctx context.Context, ownerID string) (*Organization, error)
	Create(ctx context.Context, org *Organization) error
	Update(ctx context.Context, org *Organization) error
	// DeleteByOwner removes the organization owned by ownerID. Deleting a
	// non-existent record is success, not an error.
	DeleteByOwner(ctx context.Context, ownerID string) error
	// DeleteOrphaned removes organizations whose owner's profile no longer
	// holds the organization_owner role. Returns the number of rows removed.
	DeleteOrphaned(ctx context.Context) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM organization repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) FindByOwner(ctx context.Context, ownerID string) (*Organization, error) {
	var org Organization
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("No organization found for this owner.")
		}
		return nil, database.Classify(err)
	}
	return &org, nil
}

func (r *gormRepository) Create(ctx context.Context, org *Organization) error {
	if err := r.db.WithContext(ctx).Create(org).Error; err != nil {
		return database.Classify(err)
	}
	return nil
}

func (r *gormRepository) Update(ctx context.Context, org *Organization) error {
	if err := r.db.WithContext(ctx).Save(org).Error; err != nil {
		return database.Classify(err)
	}
	return nil
}

func (r *gormRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&Organization{}).Error
	if err != nil {
		return database.Classify(err)
	}
	return nil
}

func (r *gormRepository) DeleteOrphaned(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("owner_id NOT IN (SELECT user_id FROM user_profiles WHERE role = ?)", common.RoleOrganizationOwner).
		Delete(&Organization{})
	if res.Error != nil {
		return 0, database.Classify(res.Error)
	}
	return res.RowsAffected, nil
}
