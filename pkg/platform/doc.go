// Package platform enumerates the platform strings a concrete operating
// system, CPU architecture, and OS version combination can install binary
// artifacts for.
//
// # Overview
//
// Each enumerator returns an ordered list of platform strings, most specific
// first. Position encodes priority: a wheel built for an earlier entry is a
// better match than one built for a later entry.
//
//   - [MacPlatforms]: macOS binary-format fallback chains across OS minor
//     versions (x86_64 → intel → fat64 → fat32 → universal, walking the OS
//     version downward).
//   - [LinuxPlatforms]: manylinux libc-compatibility tiers, newest satisfied
//     tier first, bare linux platform last.
//   - [GenericPlatforms]: single normalized platform string for everything
//     else.
//
// # glibc probing
//
// Linux enumeration needs to know whether the host glibc satisfies a
// manylinux tier's minimum version. That check is injected as a [GlibcProbe]
// so this package performs no host calls and stays testable with stub probes.
// See [github.com/matzehuels/wheeltag/pkg/hostenv] for a real probe.
//
// # Compatibility tables
//
// The macOS binary-format table and the manylinux tier table are fixed
// contracts, not extension points. Adding newer manylinux tiers or macOS
// formats changes which artifacts get selected and is a policy decision.
package platform
