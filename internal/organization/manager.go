// File: internal/organization/manager.go
package organization

import (
	"context"
	"errors"
	"time"

	"careerhub_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager reconciles the organization record owned by a user against the
// user's desired role. Every operation is idempotent: re-running a call with
// the same inputs leaves the store in the same state.
type Manager struct {
	repo   Repository
	logger *zap.Logger
}

// NewManager creates a new organization manager.
func NewManager(repo Repository, logger *zap.Logger) *Manager {
	return &Manager{
		repo:   repo,
		logger: logger.Named("OrgManager"),
	}
}

// Cleanup removes the organization owned by ownerID when the desired role no
// longer claims one. A missing record counts as success.
func (m *Manager) Cleanup(ctx context.Context, ownerID string, desiredRole common.Role) error {
	if desiredRole == common.RoleOrganizationOwner {
		return nil
	}
	if err := m.repo.DeleteByOwner(ctx, ownerID); err != nil {
		m.logger.Error("Failed to delete organization during cleanup",
			zap.String("ownerID", ownerID), zap.Error(err))
		return err
	}
	return nil
}

// Reconcile brings the owner's organization record in line with the desired
// role: delete when the role does not claim one, update in place when one
// exists, insert with a freshly allocated slug otherwise.
func (m *Manager) Reconcile(ctx context.Context, ownerID string, desiredRole common.Role, input *Input) error {
	if desiredRole != common.RoleOrganizationOwner {
		return m.Cleanup(ctx, ownerID, desiredRole)
	}

	if input == nil {
		return common.NewValidationAPIError("Organization details are required for the organization_owner role.")
	}

	existing, err := m.repo.FindByOwner(ctx, ownerID)
	if err == nil {
		// Rename does not reallocate the slug: external references to it
		// must keep resolving.
		existing.Name = input.Name
		existing.Industry = input.Industry
		existing.SizeRange = input.SizeRange
		if err := m.repo.Update(ctx, existing); err != nil {
			m.logger.Error("Failed to update organization",
				zap.String("ownerID", ownerID), zap.Error(err))
			return err
		}
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	now := time.Now()
	org := &Organization{
		BaseModel: common.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerID:   ownerID,
		Slug:      AllocateSlug(input.Name, ownerID),
		Name:      input.Name,
		Industry:  input.Industry,
		SizeRange: input.SizeRange,
	}

	if err := m.repo.Create(ctx, org); err != nil {
		if errors.Is(err, common.ErrConflict) {
			// A duplicated concurrent call with the same owner already
			// inserted the record. The desired state holds; succeed silently.
			m.logger.Debug("Organization insert conflicted with an equivalent record",
				zap.String("ownerID", ownerID), zap.String("slug", org.Slug))
			return nil
		}
		m.logger.Error("Failed to create organization",
			zap.String("ownerID", ownerID), zap.Error(err))
		return err
	}

	m.logger.Info("Organization created",
		zap.String("ownerID", ownerID), zap.String("slug", org.Slug))
	return nil
}
