package tags

import (
	"sort"
	"strings"
)

// Tag is one (interpreter, abi, platform) compatibility triple. All fields
// are lowercased at construction; Tag values are comparable and can be used
// as map keys. The zero Tag is valid but matches nothing meaningful.
type Tag struct {
	interpreter string
	abi         string
	platform    string
}

// NewTag constructs a Tag, lowercasing all three fields.
func NewTag(interpreter, abi, platform string) Tag {
	return Tag{
		interpreter: strings.ToLower(interpreter),
		abi:         strings.ToLower(abi),
		platform:    strings.ToLower(platform),
	}
}

// Interpreter returns the interpreter field (e.g., "cp37").
func (t Tag) Interpreter() string { return t.interpreter }

// Abi returns the ABI field (e.g., "cp37m", "abi3", "none").
func (t Tag) Abi() string { return t.abi }

// Platform returns the platform field (e.g., "manylinux1_x86_64", "any").
func (t Tag) Platform() string { return t.platform }

// String returns the canonical wire form "interpreter-abi-platform".
// This form must match byte-for-byte across packaging tools.
func (t Tag) String() string {
	return t.interpreter + "-" + t.abi + "-" + t.platform
}

// Set is an unordered collection of unique tags, keyed by the normalized
// triple. Parsing compressed tag strings produces a Set because the artifact
// side of a compatibility check carries no priority.
type Set map[Tag]struct{}

// NewSet builds a Set from the given tags.
func NewSet(ts ...Tag) Set {
	s := make(Set, len(ts))
	for _, t := range ts {
		s[t] = struct{}{}
	}
	return s
}

// Add inserts t into the set.
func (s Set) Add(t Tag) { s[t] = struct{}{} }

// Contains reports whether t is in the set.
func (s Set) Contains(t Tag) bool {
	_, ok := s[t]
	return ok
}

// Sorted returns the set's tags ordered by their string form. Sets have no
// inherent order; this exists for stable display and test output.
func (s Set) Sorted() []Tag {
	out := make([]Tag, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Strings returns the sorted wire forms of the set's tags.
func (s Set) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, t := range sorted {
		out[i] = t.String()
	}
	return out
}
