// File: internal/organization/model.go
package organization

import (
	"time"

	"careerhub_backend/internal/common"

	"github.com/google/uuid"
)

// Organization represents the tenant resource owned by a single
// organization_owner user. At most one exists per owner; the slug is unique
// across all organizations.
type Organization struct {
	common.BaseModel        // Embeds ID, CreatedAt, UpdatedAt
	OwnerID          string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Slug             string `gorm:"type:varchar(160);not null;uniqueIndex"`
	Name             string `gorm:"type:varchar(255);not null"`
	Industry         string `gorm:"type:varchar(100);not null"`
	SizeRange        string `gorm:"type:varchar(20);not null"`
}

// TableName specifies the table name for the Organization model.
func (Organization) TableName() string {
	return "organizations"
}

// --- DTOs for API requests/responses ---

// Input carries the caller-supplied organization attributes. SizeRange is a
// constrained enumeration, mirrored by a check constraint in the store.
type Input struct {
	Name      string `json:"name" binding:"required,max=255"`
	Industry  string `json:"industry" binding:"required,max=100"`
	SizeRange string `json:"size_range" binding:"required,oneof=1-10 11-50 51-200 201-500 500+"`
}

// Response defines the structure for organization data sent in API responses.
type Response struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	SizeRange string    `json:"size_range"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResponse converts an Organization model to a Response DTO.
func ToResponse(org *Organization) Response {
	return Response{
		ID:        org.ID,
		Slug:      org.Slug,
		Name:      org.Name,
		Industry:  org.Industry,
		SizeRange: org.SizeRange,
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}
