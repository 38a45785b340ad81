// File: internal/organization/repository_test.go
package organization_test

import (
	"context"
	"testing"
	"time"

	"careerhub_backend/internal/common"
	"careerhub_backend/internal/organization"
	"careerhub_backend/internal/profile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepositoryTest(t *testing.T) (organization.Repository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, db.Migrator().DropTable(&organization.Organization{}, &profile.Profile{}))
	require.NoError(t, db.AutoMigrate(&profile.Profile{}, &organization.Organization{}))

	return organization.NewGORMRepository(db), db
}

func newOrg(ownerID, name string) *organization.Organization {
	now := time.Now()
	return &organization.Organization{
		BaseModel: common.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		OwnerID:   ownerID,
		Slug:      organization.AllocateSlug(name, ownerID),
		Name:      name,
		Industry:  "consulting",
		SizeRange: "1-10",
	}
}

func TestRepositoryCreateAndFindByOwner(t *testing.T) {
	repo, _ := setupRepositoryTest(t)
	ctx := context.Background()

	org := newOrg("owner-one-12345678", "Acme")
	require.NoError(t, repo.Create(ctx, org))

	found, err := repo.FindByOwner(ctx, "owner-one-12345678")
	require.NoError(t, err)
	assert.Equal(t, org.Slug, found.Slug)
	assert.Equal(t, "Acme", found.Name)
}

func TestRepositoryFindByOwnerNotFound(t *testing.T) {
	repo, _ := setupRepositoryTest(t)

	_, err := repo.FindByOwner(context.Background(), "no-such-owner")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRepositoryDuplicateSlugIsConflict(t *testing.T) {
	repo, _ := setupRepositoryTest(t)
	ctx := context.Background()

	first := newOrg("owner-one-12345678", "Acme")
	require.NoError(t, repo.Create(ctx, first))

	// Same owner submitting the same create concurrently yields the same
	// slug; the second insert must classify as a conflict.
	duplicate := newOrg("owner-one-12345678", "Acme")
	err := repo.Create(ctx, duplicate)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestRepositoryDeleteByOwnerIsIdempotent(t *testing.T) {
	repo, _ := setupRepositoryTest(t)
	ctx := context.Background()

	org := newOrg("owner-one-12345678", "Acme")
	require.NoError(t, repo.Create(ctx, org))

	require.NoError(t, repo.DeleteByOwner(ctx, "owner-one-12345678"))
	// Deleting again must succeed: "no matching record" is not an error.
	require.NoError(t, repo.DeleteByOwner(ctx, "owner-one-12345678"))

	_, err := repo.FindByOwner(ctx, "owner-one-12345678")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRepositoryDeleteOrphaned(t *testing.T) {
	repo, db := setupRepositoryTest(t)
	ctx := context.Background()

	now := time.Now()
	owner := &profile.Profile{
		BaseModel:     common.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:        "owner-kept-12345678",
		Role:          common.RoleOrganizationOwner,
		RoleConfirmed: true,
	}
	demoted := &profile.Profile{
		BaseModel:     common.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:        "owner-gone-12345678",
		Role:          common.RoleJobSeeker,
		RoleConfirmed: true,
	}
	require.NoError(t, db.Create(owner).Error)
	require.NoError(t, db.Create(demoted).Error)

	require.NoError(t, repo.Create(ctx, newOrg("owner-kept-12345678", "Kept Org")))
	require.NoError(t, repo.Create(ctx, newOrg("owner-gone-12345678", "Stranded Org")))

	removed, err := repo.DeleteOrphaned(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.FindByOwner(ctx, "owner-kept-12345678")
	assert.NoError(t, err, "organization of a current owner must survive the sweep")

	_, err = repo.FindByOwner(ctx, "owner-gone-12345678")
	assert.ErrorIs(t, err, common.ErrNotFound, "stranded organization must be removed")
}
