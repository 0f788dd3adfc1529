package platform

import (
	"fmt"
	"strings"
)

// MacArch normalizes the CPU architecture reported by a macOS host for the
// running interpreter. A 32-bit interpreter on a ppc64 machine runs as "ppc"
// and on anything else as "i386"; a 64-bit interpreter uses the reported
// architecture unchanged.
func MacArch(rawArch string, is32bit bool) string {
	if !is32bit {
		return rawArch
	}
	if strings.HasPrefix(rawArch, "ppc") {
		return "ppc"
	}
	return "i386"
}

// MacBinaryFormats returns the binary-format suffixes a macOS release can
// execute for the given CPU architecture, most specific first.
//
// An empty result means the architecture never shipped on that OS version;
// callers must not fall back to "universal" in that case, which is why the
// empty branches return before the final append.
func MacBinaryFormats(version Version, cpuArch string) []string {
	formats := []string{cpuArch}
	switch cpuArch {
	case "x86_64":
		if !version.AtLeast(Version{10, 4}) {
			return nil
		}
		formats = append(formats, "intel", "fat64", "fat32")
	case "i386":
		if !version.AtLeast(Version{10, 4}) {
			return nil
		}
		formats = append(formats, "intel", "fat32", "fat")
	case "ppc64":
		// Only shipped on 10.4 and 10.5.
		if !version.AtLeast(Version{10, 4}) || !version.AtMost(Version{10, 5}) {
			return nil
		}
		formats = append(formats, "fat64")
	case "ppc":
		if !version.AtMost(Version{10, 6}) {
			return nil
		}
		formats = append(formats, "fat32", "fat")
	}
	return append(formats, "universal")
}

// MacPlatforms returns the ordered macOS platform strings for the given OS
// version and CPU architecture. rawArch is normalized with [MacArch] first.
//
// The OS minor version is walked downward to 0 with the major version held
// fixed: a wheel built against an older release still installs on a newer
// one, at lower priority. The result is empty when the architecture predates
// or postdates every covered release (e.g., x86_64 below 10.4).
func MacPlatforms(version Version, rawArch string, is32bit bool) []string {
	arch := MacArch(rawArch, is32bit)
	var platforms []string
	for minor := version.Minor; minor >= 0; minor-- {
		compat := Version{version.Major, minor}
		for _, format := range MacBinaryFormats(compat, arch) {
			platforms = append(platforms, fmt.Sprintf("macosx_%d_%d_%s", compat.Major, compat.Minor, format))
		}
	}
	return platforms
}
