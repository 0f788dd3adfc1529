package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/wheeltag/pkg/errors"
	"github.com/matzehuels/wheeltag/pkg/platform"
	"github.com/matzehuels/wheeltag/pkg/tags"
)

// envPayload is the wire form of an environment, shared by the tags query
// parameters and the check request body. It mirrors the TOML descriptor
// format of hostenv.
type envPayload struct {
	Implementation string `json:"implementation"`
	Version        string `json:"version"`
	ABI            string `json:"abi,omitempty"`
	OS             string `json:"os,omitempty"`
	Arch           string `json:"arch,omitempty"`
	Platform       string `json:"platform,omitempty"`
	OSVersion      string `json:"os_version,omitempty"`
	ImplVersion    string `json:"impl_version,omitempty"`
	Is32Bit        bool   `json:"is_32bit,omitempty"`
	Glibc          string `json:"glibc,omitempty"`
}

// envFromQuery reads an envPayload from URL query parameters.
func envFromQuery(q url.Values) (envPayload, error) {
	p := envPayload{
		Implementation: q.Get("implementation"),
		Version:        q.Get("version"),
		ABI:            q.Get("abi"),
		OS:             q.Get("os"),
		Arch:           q.Get("arch"),
		Platform:       q.Get("platform"),
		OSVersion:      q.Get("os_version"),
		ImplVersion:    q.Get("impl_version"),
		Glibc:          q.Get("glibc"),
	}
	if raw := q.Get("is_32bit"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return p, errors.New(errors.ErrCodeInvalidInput, "is_32bit: %v", err)
		}
		p.Is32Bit = v
	}
	return p, nil
}

// environment converts the payload into an Environment for the tag engine.
func (p envPayload) environment() (*tags.Environment, error) {
	if p.Implementation == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "missing required field %q", "implementation")
	}
	if p.Version == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "missing required field %q", "version")
	}

	version, err := parseVersion(p.Version)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "version")
	}

	env := &tags.Environment{
		Implementation: p.Implementation,
		Version:        tags.Version{Major: version.Major, Minor: version.Minor},
		ABI:            p.ABI,
		OS:             p.OS,
		Arch:           p.Arch,
		Platform:       p.Platform,
		Is32Bit:        p.Is32Bit,
	}
	if p.OSVersion != "" {
		v, err := parseVersion(p.OSVersion)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "os_version")
		}
		env.OSVersion = v
	}
	if p.ImplVersion != "" {
		v, err := parseVersion(p.ImplVersion)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "impl_version")
		}
		env.ImplVersion = tags.Version{Major: v.Major, Minor: v.Minor}
	}
	if p.Glibc != "" {
		v, err := parseVersion(p.Glibc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "glibc")
		}
		env.GlibcProbe = platform.GlibcVersion(v.Major, v.Minor)
	}
	return env, nil
}

// cacheKey returns a canonical form of the payload for cache lookups.
func (p envPayload) cacheKey() string {
	return strings.Join([]string{
		p.Implementation, p.Version, p.ABI, p.OS, p.Arch,
		p.Platform, p.OSVersion, p.ImplVersion, strconv.FormatBool(p.Is32Bit), p.Glibc,
	}, "|")
}

// parseVersion reads "major.minor", ignoring extra dotted components.
func parseVersion(s string) (platform.Version, error) {
	parts := strings.SplitN(s, ".", 3)
	if len(parts) < 2 {
		return platform.Version{}, errors.New(errors.ErrCodeInvalidInput, "version %q: expected major.minor", s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return platform.Version{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "version %q", s)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return platform.Version{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "version %q", s)
	}
	return platform.Version{Major: major, Minor: minor}, nil
}
