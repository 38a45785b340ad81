// File: internal/organization/slug_test.go
package organization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocateSlug(t *testing.T) {
	tests := []struct {
		name     string
		orgName  string
		ownerID  string
		expected string
	}{
		{
			name:     "simple name",
			orgName:  "ABC Consulting",
			ownerID:  "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
			expected: "abc-consulting-a1b2c3d4",
		},
		{
			name:     "same name, different owner",
			orgName:  "ABC Consulting",
			ownerID:  "e5f6g7h8-1111-2222-3333-444455556666",
			expected: "abc-consulting-e5f6g7h8",
		},
		{
			name:     "symbols collapse to hyphens",
			orgName:  "Acme,  Inc.",
			ownerID:  "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
			expected: "acme-inc-a1b2c3d4",
		},
		{
			name:     "empty name falls back to placeholder",
			orgName:  "",
			ownerID:  "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
			expected: "org-a1b2c3d4",
		},
		{
			name:     "punctuation-only name falls back to placeholder",
			orgName:  "!!! ... ???",
			ownerID:  "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
			expected: "org-a1b2c3d4",
		},
		{
			name:     "accented letters transliterate",
			orgName:  "Café Brontë",
			ownerID:  "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
			expected: "cafe-bronte-a1b2c3d4",
		},
		{
			name:     "underscores are kept",
			orgName:  "acme_labs",
			ownerID:  "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
			expected: "acme_labs-a1b2c3d4",
		},
		{
			name:     "short owner id is used whole",
			orgName:  "Acme",
			ownerID:  "abc123",
			expected: "acme-abc123",
		},
		{
			name:     "mixed-case owner id is lowered",
			orgName:  "Acme",
			ownerID:  "A1B2C3D4E5F6",
			expected: "acme-a1b2c3d4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AllocateSlug(tt.orgName, tt.ownerID))
		})
	}
}

func TestAllocateSlugDeterministic(t *testing.T) {
	first := AllocateSlug("ABC Consulting", "a1b2c3d4-e5f6-7890-abcd-ef1234567890")
	second := AllocateSlug("ABC Consulting", "a1b2c3d4-e5f6-7890-abcd-ef1234567890")
	assert.Equal(t, first, second, "allocation must be deterministic for the same inputs")
}

func TestAllocateSlugNeverEmpty(t *testing.T) {
	for _, name := range []string{"", " ", "---", "!!!", "..."} {
		got := AllocateSlug(name, "a1b2c3d4-e5f6-7890-abcd-ef1234567890")
		assert.NotEmpty(t, got, "name %q must still produce a slug", name)
		assert.NotEqual(t, "-", got[:1], "slug must not start with a hyphen")
	}
}
