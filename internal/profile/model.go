// File: internal/profile/model.go
package profile

import (
	"time"

	"careerhub_backend/internal/common"
	"careerhub_backend/internal/organization"

	"github.com/google/uuid"
)

// Profile represents the per-user profile record. There is at most one per
// user, keyed on the stable external user ID supplied by the authentication
// context.
type Profile struct {
	common.BaseModel             // Embeds ID, CreatedAt, UpdatedAt
	UserID           string      `gorm:"type:varchar(128);not null;uniqueIndex"`
	Role             common.Role `gorm:"type:varchar(32);not null"`
	RoleConfirmed    bool        `gorm:"not null;default:false"`

	// Denormalized convenience copies of the owned organization's attributes.
	// Meaningful only while Role is organization_owner; null otherwise.
	OrgNameHint     *string `gorm:"type:varchar(255)"`
	OrgIndustryHint *string `gorm:"type:varchar(100)"`
	OrgSizeHint     *string `gorm:"type:varchar(20)"`
}

// TableName specifies the table name for the Profile model.
func (Profile) TableName() string {
	return "user_profiles"
}

// --- DTOs for API requests/responses ---

// SelectRoleRequest defines the structure for a role-selection submission.
// Organization details are required when the chosen role is
// organization_owner and ignored otherwise.
type SelectRoleRequest struct {
	Role         string              `json:"role" binding:"required,oneof=job_seeker organization_owner independent_contractor"`
	Organization *organization.Input `json:"organization,omitempty" binding:"omitempty"`
}

// AssignedRoleResponse is returned after a successful role assignment.
type AssignedRoleResponse struct {
	Role          common.Role `json:"role"`
	RoleConfirmed bool        `json:"role_confirmed"`
}

// Response defines the structure for profile data sent in API responses.
type Response struct {
	ID              uuid.UUID   `json:"id"`
	UserID          string      `json:"user_id"`
	Role            common.Role `json:"role"`
	RoleConfirmed   bool        `json:"role_confirmed"`
	OrgNameHint     *string     `json:"org_name_hint,omitempty"`
	OrgIndustryHint *string     `json:"org_industry_hint,omitempty"`
	OrgSizeHint     *string     `json:"org_size_hint,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// ToResponse converts a Profile model to a Response DTO.
func ToResponse(p *Profile) Response {
	return Response{
		ID:              p.ID,
		UserID:          p.UserID,
		Role:            p.Role,
		RoleConfirmed:   p.RoleConfirmed,
		OrgNameHint:     p.OrgNameHint,
		OrgIndustryHint: p.OrgIndustryHint,
		OrgSizeHint:     p.OrgSizeHint,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
