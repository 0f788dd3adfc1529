package hostenv

import (
	"os/exec"
	"strings"
	"sync"

	"github.com/matzehuels/wheeltag/pkg/platform"
)

var (
	glibcOnce    sync.Once
	glibcVersion platform.Version
	glibcFound   bool
)

// GlibcAtLeast is a [platform.GlibcProbe] backed by the host C library. It
// reports whether the system glibc is at least major.minor, and false on
// hosts without glibc (musl, non-Linux). The detected version is cached for
// the process lifetime.
func GlibcAtLeast(major, minor int) bool {
	glibcOnce.Do(func() {
		glibcVersion, glibcFound = detectGlibc()
	})
	if !glibcFound {
		return false
	}
	// Same semantics as the glibc symbol check: the major must match
	// exactly, only the minor is a minimum.
	return glibcVersion.Major == major && glibcVersion.Minor >= minor
}

// detectGlibc asks the system for its glibc version. getconf is the
// canonical source; ldd is the fallback for systems without getconf.
func detectGlibc() (platform.Version, bool) {
	// "glibc 2.31"
	if out, err := exec.Command("getconf", "GNU_LIBC_VERSION").Output(); err == nil {
		fields := strings.Fields(string(out))
		if len(fields) == 2 && fields[0] == "glibc" {
			if v, err := parseVersion(fields[1]); err == nil {
				return v, true
			}
		}
	}

	// "ldd (GNU libc) 2.31"; version is the last field of the first line.
	if out, err := exec.Command("ldd", "--version").Output(); err == nil {
		line, _, _ := strings.Cut(string(out), "\n")
		if strings.Contains(strings.ToLower(line), "libc") {
			fields := strings.Fields(line)
			if len(fields) > 0 {
				if v, err := parseVersion(fields[len(fields)-1]); err == nil {
					return v, true
				}
			}
		}
	}

	return platform.Version{}, false
}
