package taggraph

import (
	"strings"
	"testing"

	"github.com/matzehuels/wheeltag/pkg/tags"
)

func testSeq() []tags.Tag {
	return []tags.Tag{
		tags.NewTag("cp37", "cp37m", "linux_x86_64"),
		tags.NewTag("cp37", "abi3", "linux_x86_64"),
		tags.NewTag("py37", "none", "linux_x86_64"),
		tags.NewTag("py30", "none", "any"),
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testSeq(), Options{})

	for _, want := range []string{
		`"cp37-cp37m-linux_x86_64"`,
		`"cp37-cp37m-linux_x86_64" -> "cp37-abi3-linux_x86_64"`,
		`"py37-none-linux_x86_64" -> "py30-none-any"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %s", want)
		}
	}
	if got := strings.Count(dot, "->"); got != 3 {
		t.Errorf("ToDOT() has %d edges, want 3", got)
	}
}

func TestToDOT_Styles(t *testing.T) {
	dot := ToDOT(testSeq(), Options{})

	if !strings.Contains(dot, "fillcolor=lightblue") {
		t.Error("ToDOT() binary tags should be highlighted")
	}
	if !strings.Contains(dot, "fillcolor=lightgrey") {
		t.Error("ToDOT() universal tags should be dashed grey")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(testSeq(), Options{Detailed: true})

	if !strings.Contains(dot, "rank: 0") {
		t.Error("ToDOT() detailed labels should include the rank")
	}
	if !strings.Contains(dot, "abi: cp37m") {
		t.Error("ToDOT() detailed labels should include the abi")
	}
}

func TestToDOT_Limit(t *testing.T) {
	dot := ToDOT(testSeq(), Options{Limit: 2})

	if strings.Contains(dot, "py30-none-any") {
		t.Error("ToDOT() should drop tags past the limit")
	}
	if got := strings.Count(dot, "->"); got != 1 {
		t.Errorf("ToDOT() has %d edges, want 1", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	svg := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00">` + "\n</svg>")
	got := string(normalizeViewBox(svg))

	if !strings.Contains(got, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("normalizeViewBox() = %s", got)
	}
	if !strings.Contains(got, `width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", got)
	}
}
