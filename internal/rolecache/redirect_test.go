// File: internal/rolecache/redirect_test.go
package rolecache

import (
	"testing"

	"careerhub_backend/internal/common"

	"github.com/stretchr/testify/assert"
)

func confirmed(role common.Role) Status {
	return Status{Role: role, Confirmed: true}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name         string
		current      View
		status       Status
		wantDest     View
		wantRedirect bool
	}{
		{
			name:         "unconfirmed user on landing goes to role selection",
			current:      ViewLanding,
			status:       Status{},
			wantDest:     ViewRoleSelection,
			wantRedirect: true,
		},
		{
			name:         "unconfirmed user on a role view goes to role selection",
			current:      ViewOrganizationOwner,
			status:       Status{},
			wantDest:     ViewRoleSelection,
			wantRedirect: true,
		},
		{
			name:         "unconfirmed user already on role selection stays",
			current:      ViewRoleSelection,
			status:       Status{},
			wantDest:     ViewRoleSelection,
			wantRedirect: false,
		},
		{
			name:         "confirmed job seeker on landing forwards to job seeker view",
			current:      ViewLanding,
			status:       confirmed(common.RoleJobSeeker),
			wantDest:     ViewJobSeeker,
			wantRedirect: true,
		},
		{
			name:         "confirmed owner on landing forwards to organization view",
			current:      ViewLanding,
			status:       confirmed(common.RoleOrganizationOwner),
			wantDest:     ViewOrganizationOwner,
			wantRedirect: true,
		},
		{
			name:         "confirmed contractor on landing forwards to contractor view",
			current:      ViewLanding,
			status:       confirmed(common.RoleIndependentContractor),
			wantDest:     ViewIndependentContractor,
			wantRedirect: true,
		},
		{
			name:         "confirmed owner on the job seeker view is corrected",
			current:      ViewJobSeeker,
			status:       confirmed(common.RoleOrganizationOwner),
			wantDest:     ViewOrganizationOwner,
			wantRedirect: true,
		},
		{
			name:         "confirmed job seeker on the contractor view is corrected",
			current:      ViewIndependentContractor,
			status:       confirmed(common.RoleJobSeeker),
			wantDest:     ViewJobSeeker,
			wantRedirect: true,
		},
		{
			name:         "confirmed owner on the organization view stays",
			current:      ViewOrganizationOwner,
			status:       confirmed(common.RoleOrganizationOwner),
			wantDest:     ViewOrganizationOwner,
			wantRedirect: false,
		},
		{
			name:         "confirmed user on role selection stays",
			current:      ViewRoleSelection,
			status:       confirmed(common.RoleJobSeeker),
			wantDest:     ViewRoleSelection,
			wantRedirect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest, redirect := Decide(tt.current, tt.status)
			assert.Equal(t, tt.wantDest, dest)
			assert.Equal(t, tt.wantRedirect, redirect)
		})
	}
}

// Decide applied to its own result must never redirect again; a redirect
// chain always terminates after one hop.
func TestDecideNeverLoops(t *testing.T) {
	views := []View{ViewLanding, ViewRoleSelection, ViewJobSeeker, ViewOrganizationOwner, ViewIndependentContractor}
	statuses := []Status{
		{},
		confirmed(common.RoleJobSeeker),
		confirmed(common.RoleOrganizationOwner),
		confirmed(common.RoleIndependentContractor),
	}

	for _, v := range views {
		for _, st := range statuses {
			dest, _ := Decide(v, st)
			again, redirect := Decide(dest, st)
			assert.False(t, redirect, "view %q with role %q redirected twice", v, st.Role)
			assert.Equal(t, dest, again)
		}
	}
}

func TestViewForRoleUnknownRoleFallsBackToSelection(t *testing.T) {
	assert.Equal(t, ViewRoleSelection, ViewForRole(common.Role("moderator")))
}

func TestPathForView(t *testing.T) {
	assert.Equal(t, "/start", PathForView(ViewLanding))
	assert.Equal(t, "/role-selection", PathForView(ViewRoleSelection))
	assert.Equal(t, "/jobseeker", PathForView(ViewJobSeeker))
	assert.Equal(t, "/organization", PathForView(ViewOrganizationOwner))
	assert.Equal(t, "/contractor", PathForView(ViewIndependentContractor))
}
