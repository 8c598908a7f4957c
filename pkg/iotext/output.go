package iotext

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/adharris/fvswalk/pkg/digraph"
	"github.com/adharris/fvswalk/pkg/errors"
)

// EncodeGraph writes g back out in the input format: vertex count, then
// for each vertex (in ascending Number order) its in-degree followed by
// its source vertex Numbers in ascending order.
//
// Unlike the format this package's input decoder was ported from,
// EncodeGraph writes an entry for every vertex, including one with
// in-degree zero - the vertex-count line and the per-vertex entry count
// must agree for the output to decode back into an isomorphic graph.
func EncodeGraph(w io.Writer, g *digraph.Graph) error {
	vertices := g.Vertices()
	sort.Slice(vertices, func(i, j int) bool { return g.Number(vertices[i]) < g.Number(vertices[j]) })

	if _, err := fmt.Fprintln(w, len(vertices)); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "writing vertex count")
	}

	for _, v := range vertices {
		sources := make([]int, 0, len(g.InEdges(v)))
		for _, u := range g.InEdges(v) {
			sources = append(sources, g.Number(u))
		}
		sort.Ints(sources)

		if _, err := fmt.Fprintf(w, "%d", len(sources)); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "writing in-degree for vertex %d", g.Number(v))
		}
		for _, s := range sources {
			if _, err := fmt.Fprintf(w, " %d", s); err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "writing source for vertex %d", g.Number(v))
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "writing newline")
		}
	}
	return nil
}

// ExportGraph writes g to the file at path in the input format.
func ExportGraph(g *digraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer f.Close()
	return EncodeGraph(f, g)
}

// DecodeCutSet reads a cut-set file: a vertex count M, followed by M
// vertex numbers. Unlike DecodeGraph, a count of zero is valid - a graph
// that is already acyclic has an empty cut set.
func DecodeCutSet(r io.Reader) ([]int, error) {
	s := newScanner(r)

	count, ok, err := s.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(errors.ErrCodeInputFormat, "missing vertex count")
	}
	if err := errors.ValidateOutputVertexCount(count); err != nil {
		return nil, err
	}

	cut := make([]int, 0, count)
	for i := 0; i < count; i++ {
		n, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.New(errors.ErrCodeInputFormat, "missing vertex number for entry %d (0-indexed)", i)
		}
		cut = append(cut, n)
	}

	if !s.atEnd() {
		return nil, errors.New(errors.ErrCodeInputFormat, "the input file contains extra data")
	}

	return cut, nil
}

// ImportCutSet opens the file at path and decodes it with [DecodeCutSet].
func ImportCutSet(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	cut, err := DecodeCutSet(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cut, nil
}

// EncodeCutSet writes cut as a vertex count followed by the cut vertex
// numbers, space-separated on one line.
func EncodeCutSet(w io.Writer, cut []int) error {
	if _, err := fmt.Fprintln(w, len(cut)); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "writing vertex count")
	}
	for i, n := range cut {
		if i > 0 {
			if _, err := fmt.Fprint(w, " "); err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "writing separator")
			}
		}
		if _, err := fmt.Fprintf(w, "%d", n); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "writing vertex %d", n)
		}
	}
	return nil
}

// ExportCutSet writes cut to the file at path in the cut-set format.
func ExportCutSet(cut []int, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer f.Close()
	return EncodeCutSet(f, cut)
}
