package platform

import "strings"

// Version is an operating system version as a (major, minor) pair.
// Patch-level differences never affect tag compatibility.
type Version struct {
	Major int
	Minor int
}

// Compare returns -1, 0, or 1 depending on whether v is older than, equal
// to, or newer than o.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major != o.Major:
		if v.Major < o.Major {
			return -1
		}
		return 1
	case v.Minor != o.Minor:
		if v.Minor < o.Minor {
			return -1
		}
		return 1
	}
	return 0
}

// AtLeast reports whether v >= o.
func (v Version) AtLeast(o Version) bool { return v.Compare(o) >= 0 }

// AtMost reports whether v <= o.
func (v Version) AtMost(o Version) bool { return v.Compare(o) <= 0 }

// Normalize converts a reported platform or ABI string into tag form by
// replacing "." and "-" with "_".
func Normalize(s string) string {
	return strings.NewReplacer(".", "_", "-", "_").Replace(s)
}

// GenericPlatforms returns the single-element platform list for operating
// systems without a dedicated enumerator: just the normalized reported
// platform string (e.g., "win-amd64" → "win_amd64").
func GenericPlatforms(reported string) []string {
	return []string{Normalize(reported)}
}
