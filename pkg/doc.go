// Package pkg provides the core libraries for wheeltag.
//
// # Overview
//
// Wheeltag answers one question in both directions: which binary
// distributions can this Python environment install, and which environments
// can install this distribution. Environments are described by ordered
// compatibility tag sequences; wheels declare tag sets in their filenames;
// the intersection decides installability.
//
// The pkg directory is organized around that flow:
//
//	Interpreter / descriptor file
//	         ↓
//	    [hostenv] package (detect or load an Environment)
//	         ↓
//	    [tags] package (tag sequences, parsing, matching)
//	         ↓
//	    [wheels] package (wheel files and wheelhouse scans)
//	         ↓
//	    CLI output / HTTP API / diagrams
//
// # Quick Start
//
// Compute the tags of the local interpreter and check a wheel:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/wheeltag/pkg/hostenv"
//	    "github.com/matzehuels/wheeltag/pkg/tags"
//	    "github.com/matzehuels/wheeltag/pkg/wheels"
//	)
//
//	env, _ := hostenv.Interrogate(context.Background(), "python3")
//	seq, _ := tags.SysTags(*env)
//	res := wheels.Check(seq, "numpy-1.17.0-cp37-cp37m-manylinux1_x86_64.whl")
//
// # Main Packages
//
// [tags] - The tag engine. Tag and Set types, wire-format parsing for tags
// and wheel filenames, per-interpreter sequence generators (CPython, PyPy,
// generic) and sequence matching.
//
// [platform] - Platform string enumeration: macOS version/architecture
// walks, Linux manylinux tiers behind an injectable glibc probe, and the
// generic fallback.
//
// [hostenv] - Environment construction: interrogating a live interpreter,
// loading TOML descriptor files, and probing the host glibc.
//
// [wheels] - Wheel filename verdicts and wheelhouse directory scans.
//
// [api] - The HTTP surface over the tag engine (chi router, JSON error
// envelope).
//
// [taggraph] - Tag sequences as Graphviz priority chain diagrams.
//
// [cache] - Byte-level caching with file, Redis and null backends.
//
// [errors] - Structured errors with machine-readable codes shared by the
// CLI and the HTTP API.
//
// [observability] - Optional metric hooks for cache and request events.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/tags/...     # Specific package
//	go test -run Example       # Examples only
//
// [tags]: https://pkg.go.dev/github.com/matzehuels/wheeltag/pkg/tags
// [platform]: https://pkg.go.dev/github.com/matzehuels/wheeltag/pkg/platform
// [hostenv]: https://pkg.go.dev/github.com/matzehuels/wheeltag/pkg/hostenv
// [wheels]: https://pkg.go.dev/github.com/matzehuels/wheeltag/pkg/wheels
// [api]: https://pkg.go.dev/github.com/matzehuels/wheeltag/pkg/api
// [taggraph]: https://pkg.go.dev/github.com/matzehuels/wheeltag/pkg/taggraph
// [cache]: https://pkg.go.dev/github.com/matzehuels/wheeltag/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/wheeltag/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/wheeltag/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/wheeltag/pkg/buildinfo
package pkg
