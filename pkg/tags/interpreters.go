package tags

import "fmt"

// Version is an interpreter language version as a (major, minor) pair.
type Version struct {
	Major int
	Minor int
}

// interpreterShortNames maps implementation names to their tag abbreviations.
// Unknown implementations keep their lowercased name.
var interpreterShortNames = map[string]string{
	"python":     "py", // Generic.
	"cpython":    "cp",
	"pypy":       "pp",
	"ironpython": "ip",
	"jython":     "jy",
}

// sequence accumulates an ordered tag sequence, dropping duplicates at
// insertion so no post-filtering pass is needed.
type sequence struct {
	tags []Tag
	seen map[Tag]struct{}
}

func newSequence() *sequence {
	return &sequence{seen: make(map[Tag]struct{})}
}

func (s *sequence) add(t Tag) {
	if _, ok := s.seen[t]; ok {
		return
	}
	s.seen[t] = struct{}{}
	s.tags = append(s.tags, t)
}

// interpreterRange yields generic interpreter versions in descending order:
// the exact version, the major-only version, then every older minor release
// down to and including {major}0.
func interpreterRange(v Version) []string {
	versions := []string{
		fmt.Sprintf("py%d%d", v.Major, v.Minor),
		fmt.Sprintf("py%d", v.Major),
	}
	for minor := v.Minor - 1; minor >= 0; minor-- {
		versions = append(versions, fmt.Sprintf("py%d%d", v.Major, minor))
	}
	return versions
}

// independentTags appends the implementation-independent tail shared by
// every generator:
//
//   - py*-none-<platform>
//   - <interpreter>-none-any
//   - py*-none-any
//
// The platform varies fastest and the version slowest, so more recent
// interpreter versions keep priority across all platforms.
func independentTags(interpreter string, v Version, platforms []string, seq *sequence) {
	for _, version := range interpreterRange(v) {
		for _, platform := range platforms {
			seq.add(NewTag(version, "none", platform))
		}
	}
	seq.add(NewTag(interpreter, "none", "any"))
	for _, version := range interpreterRange(v) {
		seq.add(NewTag(version, "none", "any"))
	}
}

// CPythonTags returns the ordered tag sequence for a CPython interpreter.
// For each platform the ABI variants run exact ABI, then the abi3 stable
// ABI, then none, so the tightest-matching binary wins. After the current
// release, abi3 wheels built for older releases still apply: the stable ABI
// first appeared in minor version 2, hence the cutoff at minor > 1.
func CPythonTags(v Version, abi string, platforms []string) []Tag {
	interpreter := fmt.Sprintf("cp%d%d", v.Major, v.Minor)

	seq := newSequence()
	for _, platform := range platforms {
		seq.add(NewTag(interpreter, abi, platform))
	}
	for _, platform := range platforms {
		seq.add(NewTag(interpreter, "abi3", platform))
	}
	for _, platform := range platforms {
		seq.add(NewTag(interpreter, "none", platform))
	}
	for minor := v.Minor - 1; minor > 1; minor-- {
		for _, platform := range platforms {
			seq.add(NewTag(fmt.Sprintf("cp%d%d", v.Major, minor), "abi3", platform))
		}
	}
	independentTags(interpreter, v, platforms, seq)
	return seq.tags
}

// PyPyTags returns the ordered tag sequence for a PyPy-like interpreter.
// PyPy has no stable-ABI story, so the only variants are the exact ABI and
// none.
func PyPyTags(v Version, interpreter, abi string, platforms []string) []Tag {
	seq := newSequence()
	for _, platform := range platforms {
		seq.add(NewTag(interpreter, abi, platform))
	}
	for _, platform := range platforms {
		seq.add(NewTag(interpreter, "none", platform))
	}
	independentTags(interpreter, v, platforms, seq)
	return seq.tags
}

// GenericTags returns the ordered tag sequence for any other interpreter
// family. The abi-less variants are only emitted separately when the ABI is
// not already "none".
func GenericTags(interpreter string, v Version, abi string, platforms []string) []Tag {
	seq := newSequence()
	for _, platform := range platforms {
		seq.add(NewTag(interpreter, abi, platform))
	}
	if abi != "none" {
		for _, platform := range platforms {
			seq.add(NewTag(interpreter, "none", platform))
		}
	}
	independentTags(interpreter, v, platforms, seq)
	return seq.tags
}
