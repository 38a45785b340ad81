// File: internal/organization/slug.go
package organization

import (
	"strings"

	"github.com/gosimple/slug"
)

const (
	// slugOwnerPrefixLen is how many leading characters of the owner's ID are
	// appended to the slug. The owner ID is globally unique per user and a
	// user owns at most one organization, so the resulting slug is unique
	// across the whole store without a read-before-write check.
	slugOwnerPrefixLen = 8

	// slugFallbackBase is used when the display name normalizes to nothing
	// (empty or punctuation-only names).
	slugFallbackBase = "org"
)

// AllocateSlug produces the globally unique, human-readable identifier for an
// organization from its display name and owning user's ID. Deterministic,
// no I/O; it never fails and never returns an empty string. The base follows
// the slug library's normalization: accented letters transliterate to ASCII
// ("Café" yields "cafe") and underscores survive as-is rather than becoming
// hyphens.
func AllocateSlug(name, ownerID string) string {
	base := slug.Make(name)
	if base == "" {
		base = slugFallbackBase
	}

	suffix := strings.ToLower(ownerID)
	if len(suffix) > slugOwnerPrefixLen {
		suffix = suffix[:slugOwnerPrefixLen]
	}

	return base + "-" + suffix
}
