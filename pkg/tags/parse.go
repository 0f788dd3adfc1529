package tags

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/wheeltag/pkg/errors"
)

// ParseTag expands a tag string into the set of concrete tags it denotes.
// Each of the three dash-separated segments may be a dot-separated list of
// alternatives ("py2.py3-none-any"); the result is the cross-product of all
// three lists.
//
// Returns an INVALID_TAG error when the text does not split into exactly
// three dash-separated segments.
func ParseTag(text string) (Set, error) {
	segments := strings.Split(text, "-")
	if len(segments) != 3 {
		return nil, errors.New(errors.ErrCodeInvalidTag,
			"tag %q: expected 3 dash-separated segments, got %d", text, len(segments))
	}

	set := make(Set)
	for _, interpreter := range strings.Split(segments[0], ".") {
		for _, abi := range strings.Split(segments[1], ".") {
			for _, platform := range strings.Split(segments[2], ".") {
				set.Add(NewTag(interpreter, abi, platform))
			}
		}
	}
	return set, nil
}

// ParseWheelFilename extracts the tag set a wheel file name declares.
// Directory components and the trailing extension are stripped; the tag text
// is the last three dash-separated fields of the remaining stem. The scan
// runs from the right because distribution names may themselves contain
// dashes ("my-dist-1.0-py3-none-any.whl").
//
// Returns an INVALID_FILENAME error when fewer than four dash-separated
// fields remain.
func ParseWheelFilename(path string) (Set, error) {
	stem := filepath.Base(path)
	stem = strings.TrimSuffix(stem, filepath.Ext(stem))

	// Walk back over the last three dashes to isolate the tag text.
	index := len(stem)
	for i := 0; i < 3; i++ {
		cut := strings.LastIndex(stem[:index], "-")
		if cut < 0 {
			return nil, errors.New(errors.ErrCodeInvalidFilename,
				"wheel filename %q: expected at least 4 dash-separated fields", filepath.Base(path))
		}
		index = cut
	}

	return ParseTag(stem[index+1:])
}
