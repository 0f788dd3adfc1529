package platform

import "strings"

// GlibcProbe answers whether the host provides glibc >= major.minor.
// Injecting the probe keeps enumeration free of host calls; tests use fixed
// stubs and hostenv supplies a real implementation. A nil probe is treated
// as "no compatible glibc", which disables every manylinux tier.
type GlibcProbe func(major, minor int) bool

// GlibcVersion builds a probe for a machine known to carry the given glibc
// version, for describing environments other than the local host. Glibc
// majors are not backward compatible, so the major must match exactly.
func GlibcVersion(major, minor int) GlibcProbe {
	return func(wantMajor, wantMinor int) bool {
		return major == wantMajor && minor >= wantMinor
	}
}

// manylinuxTier pairs a manylinux profile name with the minimum glibc
// version it guarantees.
type manylinuxTier struct {
	name  string
	glibc Version
}

// manylinuxSupport lists the known tiers, newest first.
// manylinux1: CentOS 5 w/ glibc 2.5. manylinux2010: CentOS 6 w/ glibc 2.12.
var manylinuxSupport = []manylinuxTier{
	{"manylinux2010", Version{2, 12}},
	{"manylinux1", Version{2, 5}},
}

// LinuxPlatforms returns the ordered Linux platform strings for the reported
// platform (e.g., "linux-x86_64"). The newest manylinux tier the host glibc
// satisfies comes first, followed by every older tier (support for a later
// manylinux implies support for the earlier ones), with the bare linux
// platform string as the final fallback.
//
// A 32-bit interpreter on a 64-bit x86 host is reported as linux_i686.
func LinuxPlatforms(reported string, is32bit bool, probe GlibcProbe) []string {
	linux := Normalize(reported)
	if linux == "linux_x86_64" && is32bit {
		linux = "linux_i686"
	}

	var platforms []string
	for i, tier := range manylinuxSupport {
		if probe != nil && probe(tier.glibc.Major, tier.glibc.Minor) {
			for _, t := range manylinuxSupport[i:] {
				platforms = append(platforms, strings.Replace(linux, "linux", t.name, 1))
			}
			break
		}
	}
	return append(platforms, linux)
}
