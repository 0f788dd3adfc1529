// Package tags computes and parses PEP 425 platform compatibility tags:
// (interpreter, abi, platform) triples that decide whether a prebuilt wheel
// is installable in a given environment.
//
// # Overview
//
// The package has two independent halves:
//
//   - Generation: [SysTags] takes an [Environment] descriptor and returns the
//     ordered sequence of tags that environment accepts, most specific first.
//     Position encodes priority; the last entry is always the
//     py{major}0-none-any catch-all.
//   - Parsing: [ParseTag] expands a (possibly compressed) tag string into the
//     concrete tags it denotes, and [ParseWheelFilename] does the same for a
//     wheel file name.
//
// Whether a wheel fits an environment is plain intersection of the two
// results; [BestMatch] returns the highest-priority hit.
//
// # Generating tags
//
//	env := tags.Environment{
//	    Implementation: "cpython",
//	    Version:        tags.Version{Major: 3, Minor: 7},
//	    ABI:            "cp37m",
//	    OS:             "linux",
//	    Arch:           "x86_64",
//	    GlibcProbe:     hostenv.GlibcAtLeast,
//	}
//	seq, err := tags.SysTags(env)
//
// The sequence starts with the tightest match (exact interpreter, exact ABI,
// most specific platform) and degrades through the stable ABI, older
// interpreter releases, and older platform tiers down to the pure-Python
// catch-all.
//
// # Parsing tags
//
//	set, err := tags.ParseTag("py2.py3-none-any")
//	// {py2-none-any, py3-none-any}
//
//	set, err = tags.ParseWheelFilename("pip-18.0-py2.py3-none-any.whl")
//	// {py2-none-any, py3-none-any}
//
// Compressed segments (dot-separated alternatives) expand to the full
// cross-product. Parsed results are sets: order carries no meaning on the
// artifact side.
//
// # Purity
//
// Everything here is synchronous, deterministic computation over the inputs.
// The one host-dependent question, "does this system have glibc >= X.Y?",
// is injected via [github.com/matzehuels/wheeltag/pkg/platform.GlibcProbe].
package tags
