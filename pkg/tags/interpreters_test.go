package tags

import (
	"reflect"
	"testing"
)

func tagStrings(ts []Tag) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	return out
}

// assertUnique fails when any tag appears twice in the sequence.
func assertUnique(t *testing.T, seq []Tag) {
	t.Helper()
	seen := make(map[Tag]int, len(seq))
	for i, tag := range seq {
		if prev, ok := seen[tag]; ok {
			t.Errorf("tag %v appears at both index %d and %d", tag, prev, i)
		}
		seen[tag] = i
	}
}

func TestInterpreterRange(t *testing.T) {
	got := interpreterRange(Version{3, 3})
	want := []string{"py33", "py3", "py32", "py31", "py30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("interpreterRange(3.3) = %v, want %v", got, want)
	}
}

func TestInterpreterRange_MinorZero(t *testing.T) {
	got := interpreterRange(Version{4, 0})
	want := []string{"py40", "py4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("interpreterRange(4.0) = %v, want %v", got, want)
	}
}

func TestCPythonTags(t *testing.T) {
	got := CPythonTags(Version{3, 3}, "cp33m", []string{"plat1", "plat2"})

	wantPrefix := []string{
		"cp33-cp33m-plat1",
		"cp33-cp33m-plat2",
		"cp33-abi3-plat1",
		"cp33-abi3-plat2",
		"cp33-none-plat1",
		"cp33-none-plat2",
		"cp32-abi3-plat1",
		"cp32-abi3-plat2",
	}
	gotStrings := tagStrings(got)
	if len(gotStrings) < len(wantPrefix) || !reflect.DeepEqual(gotStrings[:len(wantPrefix)], wantPrefix) {
		t.Errorf("CPythonTags prefix = %v, want %v", gotStrings[:min(len(gotStrings), len(wantPrefix))], wantPrefix)
	}

	if last := gotStrings[len(gotStrings)-1]; last != "py30-none-any" {
		t.Errorf("last tag = %q, want %q", last, "py30-none-any")
	}
	assertUnique(t, got)
}

func TestCPythonTags_FullSequence(t *testing.T) {
	got := tagStrings(CPythonTags(Version{3, 3}, "cp33m", []string{"plat1", "plat2"}))
	want := []string{
		// Exact ABI, stable ABI, no ABI for the current release.
		"cp33-cp33m-plat1", "cp33-cp33m-plat2",
		"cp33-abi3-plat1", "cp33-abi3-plat2",
		"cp33-none-plat1", "cp33-none-plat2",
		// Stable-ABI wheels from older releases (3.2 is the first with abi3).
		"cp32-abi3-plat1", "cp32-abi3-plat2",
		// Implementation-independent tail.
		"py33-none-plat1", "py33-none-plat2",
		"py3-none-plat1", "py3-none-plat2",
		"py32-none-plat1", "py32-none-plat2",
		"py31-none-plat1", "py31-none-plat2",
		"py30-none-plat1", "py30-none-plat2",
		"cp33-none-any",
		"py33-none-any", "py3-none-any", "py32-none-any", "py31-none-any", "py30-none-any",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CPythonTags sequence =\n%v\nwant\n%v", got, want)
	}
}

func TestCPythonTags_NoStableABIBelow32(t *testing.T) {
	got := tagStrings(CPythonTags(Version{3, 2}, "cp32m", []string{"plat"}))
	for _, s := range got {
		if s == "cp31-abi3-plat" || s == "cp30-abi3-plat" {
			t.Errorf("sequence contains %q; abi3 does not exist before 3.2", s)
		}
	}
}

func TestPyPyTags(t *testing.T) {
	got := tagStrings(PyPyTags(Version{3, 6}, "pp360", "pypy3_60", []string{"plat"}))
	want := []string{
		"pp360-pypy3_60-plat",
		"pp360-none-plat",
		"py36-none-plat", "py3-none-plat", "py35-none-plat", "py34-none-plat",
		"py33-none-plat", "py32-none-plat", "py31-none-plat", "py30-none-plat",
		"pp360-none-any",
		"py36-none-any", "py3-none-any", "py35-none-any", "py34-none-any",
		"py33-none-any", "py32-none-any", "py31-none-any", "py30-none-any",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PyPyTags sequence =\n%v\nwant\n%v", got, want)
	}
}

func TestGenericTags(t *testing.T) {
	got := tagStrings(GenericTags("jy27", Version{2, 7}, "none", []string{"plat"})[:2])
	// With abi "none" there is no separate abi-less block; the independent
	// tail follows immediately.
	want := []string{"jy27-none-plat", "py27-none-plat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenericTags prefix = %v, want %v", got, want)
	}
}

func TestGenericTags_WithABI(t *testing.T) {
	got := tagStrings(GenericTags("ip27", Version{2, 7}, "net40", []string{"plat"})[:2])
	want := []string{"ip27-net40-plat", "ip27-none-plat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenericTags prefix = %v, want %v", got, want)
	}
}

func TestGenerators_CatchAllLast(t *testing.T) {
	sequences := map[string][]Tag{
		"cpython": CPythonTags(Version{3, 7}, "cp37m", []string{"linux_x86_64"}),
		"pypy":    PyPyTags(Version{3, 6}, "pp360", "none", []string{"linux_x86_64"}),
		"generic": GenericTags("ip37", Version{3, 7}, "none", []string{"win_amd64"}),
	}

	for name, seq := range sequences {
		t.Run(name, func(t *testing.T) {
			if len(seq) == 0 {
				t.Fatal("empty sequence")
			}
			last := seq[len(seq)-1]
			if last.Interpreter() != "py30" || last.Abi() != "none" || last.Platform() != "any" {
				t.Errorf("last tag = %v, want py30-none-any", last)
			}
			assertUnique(t, seq)
		})
	}
}
