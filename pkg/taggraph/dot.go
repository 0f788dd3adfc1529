package taggraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/wheeltag/pkg/tags"
)

// Options configures priority chain rendering.
type Options struct {
	// Detailed includes the rank and the tag components in node labels.
	// When false, only the wire form is shown.
	Detailed bool

	// Limit caps the number of tags drawn (0 = all). Long CPython
	// sequences get unwieldy past a few dozen nodes.
	Limit int
}

// ToDOT converts an ordered tag sequence to Graphviz DOT format. Nodes are
// the tags, edges follow resolution order from the most specific tag down
// to the universal fallback.
func ToDOT(seq []tags.Tag, opts Options) string {
	if opts.Limit > 0 && opts.Limit < len(seq) {
		seq = seq[:opts.Limit]
	}

	var buf bytes.Buffer
	buf.WriteString("digraph priority {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for i, t := range seq {
		label := fmtLabel(i, t, opts.Detailed)
		attrs := fmtAttrs(t, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", t.String(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i := 1; i < len(seq); i++ {
		fmt.Fprintf(&buf, "  %q -> %q;\n", seq[i-1].String(), seq[i].String())
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(rank int, t tags.Tag, detailed bool) string {
	if !detailed {
		return t.String()
	}
	parts := []string{
		fmt.Sprintf("rank: %d", rank),
		fmt.Sprintf("abi: %s", t.Abi()),
		fmt.Sprintf("platform: %s", t.Platform()),
	}
	return t.Interpreter() + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(t tags.Tag, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case t.Abi() != "none":
		// Binary tags carry a compiled extension ABI.
		attrs = append(attrs, "fillcolor=lightblue")
	case t.Platform() == "any":
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg element so the viewBox starts at
// the origin and the pixel size matches it. Graphviz emits pt-based sizes
// that scale badly in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
