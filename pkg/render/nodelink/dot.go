package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/adharris/fvswalk/pkg/digraph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Cut is the set of vertex numbers (1-indexed, as in the output file
	// format) to shade red. Vertices not in Cut are left unfilled.
	Cut []int
}

// ToDOT converts a digraph and its SCC decomposition to Graphviz DOT
// format. Each component of sccs becomes its own labeled subgraph cluster;
// components of size 1 are drawn plainly, since a singleton cluster adds
// visual noise without conveying anything.
func ToDOT(g *digraph.Graph, sccs []*digraph.Graph, opts Options) string {
	cut := make(map[int]bool, len(opts.Cut))
	for _, n := range opts.Cut {
		cut[n] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for i, sub := range sccs {
		vertices := sub.Vertices()
		if len(vertices) == 1 {
			writeNode(&buf, "  ", sub.Number(vertices[0]), cut)
			continue
		}
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%q;\n", fmt.Sprintf("SCC %d", i))
		fmt.Fprintf(&buf, "    style=dashed;\n")
		for _, v := range vertices {
			writeNode(&buf, "    ", sub.Number(v), cut)
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, v := range g.Vertices() {
		for _, w := range g.OutEdges(v) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", numLabel(g.Number(v)), numLabel(g.Number(w)))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, indent string, number int, cut map[int]bool) {
	fillcolor := "white"
	if cut[number] {
		fillcolor = "firebrick1"
	}
	fmt.Fprintf(buf, "%s%q [label=%q, fillcolor=%q];\n", indent, numLabel(number), numLabel(number), fillcolor)
}

func numLabel(n int) string { return strconv.Itoa(n) }

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
