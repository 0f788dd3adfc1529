package hostenv

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/matzehuels/wheeltag/pkg/errors"
	"github.com/matzehuels/wheeltag/pkg/tags"
)

// introspectScript prints the interpreter facts the tag engine needs as a
// single JSON object on stdout. It must run on both Python 2.7 and 3.x.
const introspectScript = `
import json, platform, sys, sysconfig
try:
    from distutils import util
    plat = util.get_platform()
except Exception:
    plat = sysconfig.get_platform()
info = {
    "implementation": platform.python_implementation(),
    "version": [sys.version_info[0], sys.version_info[1]],
    "soabi": sysconfig.get_config_var("SOABI") or "",
    "platform": plat,
    "os": sys.platform,
    "mac_ver": platform.mac_ver()[0],
    "machine": platform.machine(),
    "is_32bit": sys.maxsize <= 2**32,
}
if hasattr(sys, "pypy_version_info"):
    info["impl_version"] = [sys.pypy_version_info.major, sys.pypy_version_info.minor]
print(json.dumps(info))
`

// introspection mirrors the JSON printed by introspectScript.
type introspection struct {
	Implementation string `json:"implementation"`
	Version        []int  `json:"version"`
	SOABI          string `json:"soabi"`
	Platform       string `json:"platform"`
	OS             string `json:"os"`
	MacVer         string `json:"mac_ver"`
	Machine        string `json:"machine"`
	Is32Bit        bool   `json:"is_32bit"`
	ImplVersion    []int  `json:"impl_version"`
}

// Interrogate runs the given Python interpreter and builds an Environment
// from what it reports about itself. python is the executable name or path
// (e.g., "python3", "/usr/bin/pypy").
func Interrogate(ctx context.Context, python string) (*tags.Environment, error) {
	out, err := exec.CommandContext(ctx, python, "-c", introspectScript).Output()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidEnv, err, "interrogate %s", python)
	}

	var info introspection
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidEnv, err, "interrogate %s: unexpected output", python)
	}
	if len(info.Version) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidEnv, "interrogate %s: no version reported", python)
	}

	env := &tags.Environment{
		Implementation: info.Implementation,
		Version:        tags.Version{Major: info.Version[0], Minor: info.Version[1]},
		OS:             normalizeOS(info.OS),
		Arch:           info.Machine,
		Platform:       info.Platform,
		Is32Bit:        info.Is32Bit,
	}
	if len(info.ImplVersion) >= 2 {
		env.ImplVersion = tags.Version{Major: info.ImplVersion[0], Minor: info.ImplVersion[1]}
	}
	if env.OS == tags.OSDarwin && info.MacVer != "" {
		v, err := parseVersion(info.MacVer)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidEnv, err, "interrogate %s: mac_ver", python)
		}
		env.OSVersion = v
	}
	env.ABI = abiFromSOABI(info.Implementation, env.Version, info.SOABI)
	if env.OS == tags.OSLinux {
		env.GlibcProbe = GlibcAtLeast
	}
	return env, nil
}

// abiFromSOABI derives the ABI tag from a SOABI config value. CPython's
// SOABI looks like "cpython-37m-x86_64-linux-gnu"; the ABI tag keeps only
// the version-and-flags field ("cp37m"). Other implementations use the
// normalized SOABI as-is.
func abiFromSOABI(implementation string, v tags.Version, soabi string) string {
	if soabi == "" {
		return ""
	}
	if strings.EqualFold(implementation, "cpython") {
		parts := strings.SplitN(soabi, "-", 3)
		if len(parts) >= 2 {
			return "cp" + parts[1]
		}
		return fmt.Sprintf("cp%d%d", v.Major, v.Minor)
	}
	return strings.NewReplacer(".", "_", "-", "_").Replace(soabi)
}

// normalizeOS maps Python's sys.platform values onto the names SysTags
// dispatches on.
func normalizeOS(sysPlatform string) string {
	switch {
	case sysPlatform == "darwin":
		return tags.OSDarwin
	case strings.HasPrefix(sysPlatform, "linux"):
		return tags.OSLinux
	default:
		return sysPlatform
	}
}
