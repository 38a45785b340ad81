// File: internal/common/roles.go
package common

// Role is the single authoritative platform role of a user. A user holds
// exactly one role at a time and may switch between them.
type Role string

const (
	RoleJobSeeker             Role = "job_seeker"
	RoleOrganizationOwner     Role = "organization_owner"
	RoleIndependentContractor Role = "independent_contractor"
)

// ValidRole reports whether r is one of the platform roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleJobSeeker, RoleOrganizationOwner, RoleIndependentContractor:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
