package tags

import (
	"fmt"
	"strings"

	"github.com/matzehuels/wheeltag/pkg/errors"
	"github.com/matzehuels/wheeltag/pkg/platform"
)

// Operating system names understood by [SysTags]. Anything else takes the
// generic single-platform path.
const (
	OSDarwin = "darwin"
	OSLinux  = "linux"
)

// Environment describes the interpreter and host a compatibility query runs
// against. It is constructed once per query, by the caller directly or by
// hostenv from host detection or a descriptor file, and never mutated by
// this package.
type Environment struct {
	// Implementation is the interpreter implementation name, either full
	// ("cpython", "pypy", "jython") or already abbreviated ("cp", "pp").
	Implementation string

	// Version is the language version (e.g., 3.7).
	Version Version

	// ImplVersion is the implementation's own version where that differs
	// from the language version. Only PyPy uses it for its interpreter tag.
	ImplVersion Version

	// ABI is the interpreter's ABI string (e.g., "cp37m"). Empty means
	// unknown; that is fatal for CPython and degrades to "none" elsewhere.
	ABI string

	// OS is the operating system name ("darwin", "linux", anything else is
	// treated generically).
	OS string

	// Arch is the CPU architecture as reported by the host (e.g., "x86_64").
	Arch string

	// OSVersion is the OS release as a (major, minor) pair. Only macOS
	// enumeration consults it.
	OSVersion platform.Version

	// Platform is the reported platform string for Linux and generic hosts
	// (e.g., "linux-x86_64", "win-amd64"). Derived from OS and Arch when
	// empty.
	Platform string

	// Is32Bit marks a 32-bit interpreter, possibly on a 64-bit host.
	Is32Bit bool

	// GlibcProbe answers glibc version queries during Linux enumeration.
	// A nil probe disables every manylinux tier.
	GlibcProbe platform.GlibcProbe
}

// shortName returns the abbreviated implementation name ("cp", "pp", ...).
func (e *Environment) shortName() string {
	name := strings.ToLower(e.Implementation)
	if short, ok := interpreterShortNames[name]; ok {
		return short
	}
	return name
}

// InterpreterTag returns the interpreter field of the environment's most
// specific tags: "cp37" for CPython 3.7, "pp360" for PyPy 6.0 on Python 3,
// "{name}{major}{minor}" for anything else.
func (e *Environment) InterpreterTag() string {
	switch name := e.shortName(); name {
	case "cp":
		return fmt.Sprintf("cp%d%d", e.Version.Major, e.Version.Minor)
	case "pp":
		return fmt.Sprintf("pp%d%d%d", e.Version.Major, e.ImplVersion.Major, e.ImplVersion.Minor)
	default:
		return fmt.Sprintf("%s%d%d", name, e.Version.Major, e.Version.Minor)
	}
}

// reportedPlatform returns the platform string handed to the Linux and
// generic enumerators.
func (e *Environment) reportedPlatform() string {
	if e.Platform != "" {
		return e.Platform
	}
	return e.OS + "-" + e.Arch
}

// genericABI returns the normalized ABI for non-CPython families, falling
// back to "none" when the environment exposes no ABI.
func (e *Environment) genericABI() string {
	if e.ABI == "" {
		return "none"
	}
	return platform.Normalize(strings.ToLower(e.ABI))
}

// validate checks the fields every family needs.
func (e *Environment) validate() error {
	if e.Implementation == "" {
		return errors.New(errors.ErrCodeInvalidEnv, "environment has no interpreter implementation")
	}
	if e.Version.Major <= 0 {
		return errors.New(errors.ErrCodeInvalidEnv, "environment has no interpreter version")
	}
	return nil
}

// SysTags returns the ordered sequence of tags the described environment
// accepts, from most specific to most generic. The order is established at
// generation time and is never re-sorted; the last entry is always the
// py{major}0-none-any catch-all.
//
// Returns an UNSUPPORTED_ABI error for a CPython environment without an ABI
// string: guessing an ABI would silently select incompatible binaries.
func SysTags(env Environment) ([]Tag, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}

	var platforms []string
	switch env.OS {
	case OSDarwin:
		platforms = platform.MacPlatforms(env.OSVersion, env.Arch, env.Is32Bit)
	case OSLinux:
		platforms = platform.LinuxPlatforms(env.reportedPlatform(), env.Is32Bit, env.GlibcProbe)
	default:
		platforms = platform.GenericPlatforms(env.reportedPlatform())
	}

	switch env.shortName() {
	case "cp":
		if env.ABI == "" {
			return nil, errors.New(errors.ErrCodeUnsupportedAbi,
				"CPython environment reports no ABI; supply one explicitly")
		}
		return CPythonTags(env.Version, env.ABI, platforms), nil
	case "pp":
		return PyPyTags(env.Version, env.InterpreterTag(), env.genericABI(), platforms), nil
	default:
		return GenericTags(env.InterpreterTag(), env.Version, env.genericABI(), platforms), nil
	}
}
