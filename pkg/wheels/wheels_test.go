package wheels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/wheeltag/pkg/tags"
)

func testSequence(t *testing.T) []tags.Tag {
	t.Helper()
	seq, err := tags.SysTags(tags.Environment{
		Implementation: "cpython",
		Version:        tags.Version{Major: 3, Minor: 7},
		ABI:            "cp37m",
		OS:             tags.OSLinux,
		Arch:           "x86_64",
		GlibcProbe:     func(major, minor int) bool { return major == 2 && minor <= 12 },
	})
	if err != nil {
		t.Fatalf("SysTags failed: %v", err)
	}
	return seq
}

func TestCheck(t *testing.T) {
	seq := testSequence(t)

	tests := []struct {
		name      string
		filename  string
		supported bool
		match     string
	}{
		{
			name:      "pure python wheel",
			filename:  "gidgethub-3.0.0-py3-none-any.whl",
			supported: true,
			match:     "py3-none-any",
		},
		{
			name:      "native manylinux wheel",
			filename:  "numpy-1.15.0-cp37-cp37m-manylinux1_x86_64.whl",
			supported: true,
			match:     "cp37-cp37m-manylinux1_x86_64",
		},
		{
			name:      "wrong interpreter",
			filename:  "numpy-1.15.0-cp27-cp27mu-manylinux1_x86_64.whl",
			supported: false,
		},
		{
			name:      "wrong platform",
			filename:  "numpy-1.15.0-cp37-cp37m-win_amd64.whl",
			supported: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(seq, tt.filename)
			if res.Supported != tt.supported {
				t.Errorf("Supported = %v, want %v", res.Supported, tt.supported)
			}
			if tt.match != "" && res.Match != tt.match {
				t.Errorf("Match = %q, want %q", res.Match, tt.match)
			}
		})
	}
}

func TestCheck_RankOrdering(t *testing.T) {
	seq := testSequence(t)

	native := Check(seq, "numpy-1.15.0-cp37-cp37m-manylinux1_x86_64.whl")
	pure := Check(seq, "six-1.11.0-py2.py3-none-any.whl")

	if !native.Supported || !pure.Supported {
		t.Fatal("both wheels should be supported")
	}
	if native.Rank >= pure.Rank {
		t.Errorf("native wheel rank %d should beat pure wheel rank %d", native.Rank, pure.Rank)
	}
}

func TestCheck_Malformed(t *testing.T) {
	res := Check(testSequence(t), "garbage.whl")
	if res.Error == "" {
		t.Error("expected a parse error for malformed filename")
	}
	if res.Supported {
		t.Error("malformed wheel must not be reported as supported")
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"gidgethub-3.0.0-py3-none-any.whl",
		"numpy-1.15.0-cp27-cp27mu-manylinux1_x86_64.whl",
		"garbage.whl",
		"README.txt", // ignored, not a wheel
	}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	report, err := ScanDir(dir, testSequence(t))
	if err != nil {
		t.Fatalf("ScanDir failed: %v", err)
	}

	if len(report.Results) != 3 {
		t.Errorf("len(Results) = %d, want 3", len(report.Results))
	}
	if report.Supported != 1 {
		t.Errorf("Supported = %d, want 1", report.Supported)
	}
	if report.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", report.Skipped)
	}
}

func TestScanDir_Nested(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "linux")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "six-1.11.0-py2.py3-none-any.whl"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	report, err := ScanDir(dir, testSequence(t))
	if err != nil {
		t.Fatalf("ScanDir failed: %v", err)
	}
	if len(report.Results) != 1 || report.Supported != 1 {
		t.Errorf("nested wheel not found: %+v", report)
	}
}

func TestScanDir_MissingDir(t *testing.T) {
	if _, err := ScanDir(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
		t.Error("ScanDir succeeded on missing directory, want error")
	}
}
