// File: internal/profile/service.go
package profile

import (
	"context"
	"errors"
	"time"

	"careerhub_backend/internal/common"
	"careerhub_backend/internal/organization"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service coordinates a full role-transition request. A request moves through
// validating, cleanup, profile write and tenant reconciliation in that fixed
// order; the first failure aborts the remaining steps. There is no
// cross-statement transaction and no compensating rollback: every step is
// independently idempotent, so re-running the whole request with the same
// inputs is always safe.
type Service struct {
	repo   Repository
	orgs   *organization.Manager
	logger *zap.Logger
}

// NewService creates a new profile service.
func NewService(repo Repository, orgs *organization.Manager, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		orgs:   orgs,
		logger: logger.Named("RoleCoordinator"),
	}
}

// AssignedRole is the confirmed outcome of a role assignment.
type AssignedRole struct {
	Role          common.Role
	RoleConfirmed bool
}

// AssignRole validates the request, removes any organization the new role no
// longer claims, writes the profile, and reconciles the tenant resource.
// Cleanup runs before the profile write so that a stale organization record
// never coexists with a profile that no longer claims ownership.
func (s *Service) AssignRole(ctx context.Context, userID string, desiredRole common.Role, orgInput *organization.Input) (*AssignedRole, error) {
	// Validating
	if userID == "" {
		return nil, common.ErrUnauthorized
	}
	if !common.ValidRole(desiredRole) {
		return nil, common.NewValidationAPIError(map[string]string{
			"role": "The role field must be one of: job_seeker, organization_owner, independent_contractor.",
		})
	}
	if desiredRole == common.RoleOrganizationOwner {
		if err := validateOrgInput(orgInput); err != nil {
			return nil, err
		}
	} else {
		// Selecting a non-owner role discards any stray organization payload.
		orgInput = nil
	}

	// CleaningUp
	if err := s.orgs.Cleanup(ctx, userID, desiredRole); err != nil {
		s.logger.Error("Role assignment aborted during cleanup",
			zap.String("userID", userID), zap.String("role", desiredRole.String()), zap.Error(err))
		return nil, err
	}

	// WritingProfile. Explicit existence check then branch: the store's
	// native upsert could not be relied upon when the unique key and the
	// conflict target disagreed.
	existing, err := s.repo.FindByUserID(ctx, userID)
	switch {
	case err == nil:
		applyRole(existing, desiredRole, orgInput)
		if err := s.repo.Update(ctx, existing); err != nil {
			s.logger.Error("Role assignment aborted during profile update",
				zap.String("userID", userID), zap.Error(err))
			return nil, err
		}
	case errors.Is(err, common.ErrNotFound):
		now := time.Now()
		created := &Profile{
			BaseModel: common.BaseModel{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			UserID: userID,
		}
		applyRole(created, desiredRole, orgInput)
		if err := s.repo.Create(ctx, created); err != nil {
			s.logger.Error("Role assignment aborted during profile insert",
				zap.String("userID", userID), zap.Error(err))
			return nil, err
		}
	default:
		s.logger.Error("Role assignment aborted during profile lookup",
			zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	// ReconcilingTenant. Cleanup already ran, so this only ever creates or
	// updates when the target role is organization_owner.
	if err := s.orgs.Reconcile(ctx, userID, desiredRole, orgInput); err != nil {
		s.logger.Error("Role assignment aborted during tenant reconciliation",
			zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Role assigned",
		zap.String("userID", userID), zap.String("role", desiredRole.String()))
	return &AssignedRole{Role: desiredRole, RoleConfirmed: true}, nil
}

// RoleStatus reports the user's current role and whether role selection has
// been completed. A user without a profile has no role yet and is not
// confirmed; that is a normal state, not an error.
func (s *Service) RoleStatus(ctx context.Context, userID string) (common.Role, bool, error) {
	p, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return p.Role, p.RoleConfirmed, nil
}

// GetProfile retrieves the profile for the given user.
func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func validateOrgInput(input *organization.Input) error {
	details := make(map[string]string)
	if input == nil {
		return common.NewValidationAPIError(map[string]string{
			"organization": "Organization details are required for the organization_owner role.",
		})
	}
	if input.Name == "" {
		details["organization.name"] = "The name field is required."
	}
	if input.Industry == "" {
		details["organization.industry"] = "The industry field is required."
	}
	if input.SizeRange == "" {
		details["organization.size_range"] = "The size_range field is required."
	}
	if len(details) > 0 {
		return common.NewValidationAPIError(details)
	}
	return nil
}

// applyRole sets the role fields on a profile. Organization-shadow hints are
// populated only for organization_owner and explicitly nulled otherwise.
func applyRole(p *Profile, role common.Role, orgInput *organization.Input) {
	p.Role = role
	p.RoleConfirmed = true
	if role == common.RoleOrganizationOwner && orgInput != nil {
		name, industry, size := orgInput.Name, orgInput.Industry, orgInput.SizeRange
		p.OrgNameHint = &name
		p.OrgIndustryHint = &industry
		p.OrgSizeHint = &size
	} else {
		p.OrgNameHint = nil
		p.OrgIndustryHint = nil
		p.OrgSizeHint = nil
	}
	p.UpdatedAt = time.Now()
}
