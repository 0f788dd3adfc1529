// Package wheels inspects built wheel files against an environment's
// compatibility tag sequence.
//
// The heavy lifting happens in [tags]: this package only walks directories,
// parses filenames, and intersects the result with a generated sequence.
package wheels

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matzehuels/wheeltag/pkg/tags"
)

// Result is the verdict for a single wheel file.
type Result struct {
	Name      string `json:"name"`            // base filename
	Supported bool   `json:"supported"`       // whether any tag matched
	Rank      int    `json:"rank"`            // index of the best match in the environment sequence
	Match     string `json:"match,omitempty"` // wire form of the best matching tag
	Error     string `json:"error,omitempty"` // parse failure, mutually exclusive with Supported
}

// Report summarizes a directory scan.
type Report struct {
	Dir       string   `json:"dir"`
	Results   []Result `json:"results"`
	Supported int      `json:"supported"`
	Skipped   int      `json:"skipped"` // unparseable filenames
}

// Check matches one wheel filename against the environment's ordered tag
// sequence.
func Check(seq []tags.Tag, filename string) Result {
	res := Result{Name: filepath.Base(filename)}

	artifact, err := tags.ParseWheelFilename(filename)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	rank, match, ok := tags.BestMatch(seq, artifact)
	if !ok {
		return res
	}
	res.Supported = true
	res.Rank = rank
	res.Match = match.String()
	return res
}

// List returns the wheel files under dir, sorted by name. The walk follows
// subdirectories so a nested wheelhouse layout works.
func List(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".whl") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// ScanDir checks every wheel under dir against the environment's ordered tag
// sequence.
func ScanDir(dir string, seq []tags.Tag) (*Report, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	paths, err := List(dir)
	if err != nil {
		return nil, err
	}

	report := &Report{Dir: dir}
	for _, path := range paths {
		res := Check(seq, path)
		report.Results = append(report.Results, res)
		switch {
		case res.Error != "":
			report.Skipped++
		case res.Supported:
			report.Supported++
		}
	}
	return report, nil
}
