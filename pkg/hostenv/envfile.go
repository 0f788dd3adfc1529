package hostenv

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wheeltag/pkg/errors"
	"github.com/matzehuels/wheeltag/pkg/platform"
	"github.com/matzehuels/wheeltag/pkg/tags"
)

// envFile is the TOML shape of an environment descriptor:
//
//	implementation = "cpython"
//	version = "3.7"
//	abi = "cp37m"
//	os = "linux"
//	arch = "x86_64"
//
// Optional keys: platform (reported platform string), os_version (macOS),
// impl_version (PyPy), is_32bit, glibc (Linux, enables manylinux tags).
type envFile struct {
	Implementation string `toml:"implementation"`
	Version        string `toml:"version"`
	ABI            string `toml:"abi"`
	OS             string `toml:"os"`
	Arch           string `toml:"arch"`
	Platform       string `toml:"platform"`
	OSVersion      string `toml:"os_version"`
	ImplVersion    string `toml:"impl_version"`
	Is32Bit        bool   `toml:"is_32bit"`
	Glibc          string `toml:"glibc"`
}

// Load reads a TOML environment descriptor from path.
func Load(path string) (*tags.Environment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidEnv, err, "read environment file %s", path)
	}
	env, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidEnv, err, "parse environment file %s", path)
	}
	return env, nil
}

// Parse decodes a TOML environment descriptor.
func Parse(data []byte) (*tags.Environment, error) {
	var f envFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Implementation == "" {
		return nil, fmt.Errorf("missing required key %q", "implementation")
	}
	if f.Version == "" {
		return nil, fmt.Errorf("missing required key %q", "version")
	}

	version, err := parseVersion(f.Version)
	if err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}

	env := &tags.Environment{
		Implementation: f.Implementation,
		Version:        tags.Version{Major: version.Major, Minor: version.Minor},
		ABI:            f.ABI,
		OS:             f.OS,
		Arch:           f.Arch,
		Platform:       f.Platform,
		Is32Bit:        f.Is32Bit,
	}
	if f.OSVersion != "" {
		v, err := parseVersion(f.OSVersion)
		if err != nil {
			return nil, fmt.Errorf("os_version: %w", err)
		}
		env.OSVersion = v
	}
	if f.ImplVersion != "" {
		v, err := parseVersion(f.ImplVersion)
		if err != nil {
			return nil, fmt.Errorf("impl_version: %w", err)
		}
		env.ImplVersion = tags.Version{Major: v.Major, Minor: v.Minor}
	}
	if f.Glibc != "" {
		v, err := parseVersion(f.Glibc)
		if err != nil {
			return nil, fmt.Errorf("glibc: %w", err)
		}
		env.GlibcProbe = platform.GlibcVersion(v.Major, v.Minor)
	}
	return env, nil
}

// parseVersion reads "major.minor" (extra dotted components are ignored, so
// "3.7.4" works).
func parseVersion(s string) (platform.Version, error) {
	parts := strings.SplitN(s, ".", 3)
	if len(parts) < 2 {
		return platform.Version{}, fmt.Errorf("version %q: expected major.minor", s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return platform.Version{}, fmt.Errorf("version %q: %w", s, err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return platform.Version{}, fmt.Errorf("version %q: %w", s, err)
	}
	return platform.Version{Major: major, Minor: minor}, nil
}
