package tags

import (
	"reflect"
	"testing"

	"github.com/matzehuels/wheeltag/pkg/errors"
)

func TestParseTag_Simple(t *testing.T) {
	got, err := ParseTag("py3-none-any")
	if err != nil {
		t.Fatalf("ParseTag failed: %v", err)
	}
	want := NewSet(NewTag("py3", "none", "any"))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTag = %v, want %v", got.Strings(), want.Strings())
	}
}

func TestParseTag_RoundTrip(t *testing.T) {
	for _, tag := range []Tag{
		NewTag("py3", "none", "any"),
		NewTag("cp37", "cp37m", "manylinux1_x86_64"),
		NewTag("pp360", "pypy3_60", "macosx_10_13_x86_64"),
	} {
		got, err := ParseTag(tag.String())
		if err != nil {
			t.Fatalf("ParseTag(%q) failed: %v", tag, err)
		}
		if len(got) != 1 || !got.Contains(tag) {
			t.Errorf("ParseTag(%q) = %v, want {%v}", tag, got.Strings(), tag)
		}
	}
}

func TestParseTag_MultiInterpreter(t *testing.T) {
	got, err := ParseTag("py2.py3-none-any")
	if err != nil {
		t.Fatalf("ParseTag failed: %v", err)
	}
	want := NewSet(NewTag("py2", "none", "any"), NewTag("py3", "none", "any"))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTag = %v, want %v", got.Strings(), want.Strings())
	}
}

func TestParseTag_MultiPlatform(t *testing.T) {
	text := "cp37-cp37m-macosx_10_6_intel.macosx_10_9_intel.macosx_10_9_x86_64.macosx_10_10_intel.macosx_10_10_x86_64"
	got, err := ParseTag(text)
	if err != nil {
		t.Fatalf("ParseTag failed: %v", err)
	}

	want := make(Set)
	for _, platform := range []string{
		"macosx_10_6_intel",
		"macosx_10_9_intel",
		"macosx_10_9_x86_64",
		"macosx_10_10_intel",
		"macosx_10_10_x86_64",
	} {
		want.Add(NewTag("cp37", "cp37m", platform))
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTag = %v, want %v", got.Strings(), want.Strings())
	}
}

func TestParseTag_CrossProduct(t *testing.T) {
	got, err := ParseTag("py2.py3-none.abi3-any.linux_x86_64")
	if err != nil {
		t.Fatalf("ParseTag failed: %v", err)
	}
	// 2 interpreters x 2 abis x 2 platforms.
	if len(got) != 8 {
		t.Errorf("len = %d, want 8", len(got))
	}
}

func TestParseTag_Malformed(t *testing.T) {
	for _, text := range []string{"", "py3", "py3-none", "py3-none-any-extra"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseTag(text)
			if !errors.Is(err, errors.ErrCodeInvalidTag) {
				t.Errorf("ParseTag(%q) error = %v, want INVALID_TAG", text, err)
			}
		})
	}
}

func TestParseWheelFilename(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Set
	}{
		{
			name: "single tag",
			path: "gidgethub-3.0.0-py3-none-any.whl",
			want: NewSet(NewTag("py3", "none", "any")),
		},
		{
			name: "compressed interpreters",
			path: "pip-18.0-py2.py3-none-any.whl",
			want: NewSet(NewTag("py2", "none", "any"), NewTag("py3", "none", "any")),
		},
		{
			name: "dashed distribution name",
			path: "my-dist-1.0-py3-none-any.whl",
			want: NewSet(NewTag("py3", "none", "any")),
		},
		{
			name: "directory components stripped",
			path: "/wheelhouse/numpy-1.15.0-cp37-cp37m-manylinux1_x86_64.whl",
			want: NewSet(NewTag("cp37", "cp37m", "manylinux1_x86_64")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWheelFilename(tt.path)
			if err != nil {
				t.Fatalf("ParseWheelFilename(%q) failed: %v", tt.path, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseWheelFilename(%q) = %v, want %v", tt.path, got.Strings(), tt.want.Strings())
			}
		})
	}
}

func TestParseWheelFilename_Malformed(t *testing.T) {
	for _, path := range []string{"flit.whl", "pip-18.0.whl", "py3-none-any.whl"} {
		t.Run(path, func(t *testing.T) {
			_, err := ParseWheelFilename(path)
			if !errors.Is(err, errors.ErrCodeInvalidFilename) {
				t.Errorf("ParseWheelFilename(%q) error = %v, want INVALID_FILENAME", path, err)
			}
		})
	}
}
