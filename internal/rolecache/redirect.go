// File: internal/rolecache/redirect.go
package rolecache

import (
	"careerhub_backend/internal/common"
)

// View identifies a navigable destination that depends on role state.
type View string

const (
	// ViewLanding is the generic entry point after authentication.
	ViewLanding View = "landing"
	// ViewRoleSelection is where users without a confirmed role are sent.
	ViewRoleSelection View = "role_selection"

	ViewJobSeeker             View = "job_seeker"
	ViewOrganizationOwner     View = "organization_owner"
	ViewIndependentContractor View = "independent_contractor"
)

// ViewForRole returns the role-specific view for a role. Unknown roles land
// on role selection.
func ViewForRole(role common.Role) View {
	switch role {
	case common.RoleJobSeeker:
		return ViewJobSeeker
	case common.RoleOrganizationOwner:
		return ViewOrganizationOwner
	case common.RoleIndependentContractor:
		return ViewIndependentContractor
	}
	return ViewRoleSelection
}

// PathForView maps a view to its route.
func PathForView(v View) string {
	switch v {
	case ViewRoleSelection:
		return "/role-selection"
	case ViewJobSeeker:
		return "/jobseeker"
	case ViewOrganizationOwner:
		return "/organization"
	case ViewIndependentContractor:
		return "/contractor"
	}
	return "/start"
}

func roleSpecific(v View) bool {
	switch v {
	case ViewJobSeeker, ViewOrganizationOwner, ViewIndependentContractor:
		return true
	}
	return false
}

// Decide evaluates the redirect table for one navigation: users without a
// confirmed role go to role selection, the landing view forwards to the
// role-specific view, and a role-specific view for a different role forwards
// to the correct one. A view that is already the right destination stays put,
// so applying Decide to its own result never redirects again.
func Decide(current View, status Status) (View, bool) {
	var dest View
	switch {
	case !status.Confirmed:
		dest = ViewRoleSelection
	case current == ViewLanding:
		dest = ViewForRole(status.Role)
	case roleSpecific(current) && current != ViewForRole(status.Role):
		dest = ViewForRole(status.Role)
	default:
		dest = current
	}
	return dest, dest != current
}
