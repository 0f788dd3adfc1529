package tags

import "testing"

func TestBestMatch(t *testing.T) {
	seq := []Tag{
		NewTag("cp37", "cp37m", "manylinux1_x86_64"),
		NewTag("cp37", "abi3", "manylinux1_x86_64"),
		NewTag("py3", "none", "any"),
	}

	artifact := NewSet(NewTag("py3", "none", "any"))
	rank, tag, ok := BestMatch(seq, artifact)
	if !ok {
		t.Fatal("BestMatch found no match")
	}
	if rank != 2 {
		t.Errorf("rank = %d, want 2", rank)
	}
	if tag != NewTag("py3", "none", "any") {
		t.Errorf("tag = %v, want py3-none-any", tag)
	}
}

func TestBestMatch_PrefersEarlierTag(t *testing.T) {
	seq := []Tag{
		NewTag("cp37", "cp37m", "manylinux1_x86_64"),
		NewTag("py3", "none", "any"),
	}

	// Artifact declares both; the higher-priority one wins.
	artifact := NewSet(
		NewTag("py3", "none", "any"),
		NewTag("cp37", "cp37m", "manylinux1_x86_64"),
	)
	rank, _, ok := BestMatch(seq, artifact)
	if !ok || rank != 0 {
		t.Errorf("rank = %d (ok=%v), want 0", rank, ok)
	}
}

func TestSupported(t *testing.T) {
	seq := []Tag{NewTag("py3", "none", "any")}

	if !Supported(seq, NewSet(NewTag("py3", "none", "any"))) {
		t.Error("Supported() = false for matching artifact")
	}
	if Supported(seq, NewSet(NewTag("cp27", "cp27mu", "linux_i686"))) {
		t.Error("Supported() = true for non-matching artifact")
	}
	if Supported(nil, NewSet(NewTag("py3", "none", "any"))) {
		t.Error("Supported() = true for empty sequence")
	}
}
