// Package hostenv constructs [tags.Environment] descriptors from the outside
// world, keeping the tag engine itself free of host calls.
//
// Three sources are supported:
//
//   - [Interrogate]: run a Python interpreter and read its implementation,
//     version, ABI, and platform from a small introspection script.
//   - [Load] / [Parse]: read a TOML descriptor file, for describing
//     environments other than the local one (cross-checking a deploy target,
//     CI matrices, tests).
//   - [GlibcAtLeast]: the real glibc probe injected into Linux enumeration.
//
// Everything here is a thin wrapper; no compatibility logic lives in this
// package.
package hostenv
