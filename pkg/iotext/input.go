// Package iotext decodes and encodes the whitespace-delimited text format
// used for solver input graphs and cut-set output files.
package iotext

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/adharris/fvswalk/pkg/digraph"
	"github.com/adharris/fvswalk/pkg/errors"
)

// scanner tokenizes whitespace-separated integers from a stream, tracking
// enough position to produce helpful error messages.
type scanner struct {
	sc *bufio.Scanner
}

func newScanner(r io.Reader) *scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &scanner{sc: sc}
}

// next reads the next whitespace-delimited integer token. ok is false if
// the stream is exhausted.
func (s *scanner) next() (int, bool, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return 0, false, err
		}
		return 0, false, nil
	}
	tok := s.sc.Text()
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false, errors.New(errors.ErrCodeInputFormat, "expected an integer, got %q", tok)
	}
	return n, true, nil
}

// atEnd reports whether only whitespace (or nothing) remains in the
// stream, equivalent to the source format's "only whitespace remaining"
// trailing-data check.
func (s *scanner) atEnd() bool {
	return !s.sc.Scan()
}

// DecodeGraph reads a solver input graph from r.
//
// Format: the vertex count N, followed by, for each vertex 1..N in order,
// its in-degree k followed by k source vertex numbers (each in [1, N]).
// Vertices are numbered 1..N. Trailing non-whitespace data is rejected.
func DecodeGraph(r io.Reader) (*digraph.Graph, error) {
	s := newScanner(r)

	numVertices, ok, err := s.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(errors.ErrCodeInputFormat, "missing vertex count")
	}
	if err := errors.ValidateVertexCount(numVertices); err != nil {
		return nil, err
	}

	g := digraph.New()
	indices := make([]int, numVertices)
	for i := 0; i < numVertices; i++ {
		indices[i] = g.AddVertex(i + 1)
	}

	for dest := 0; dest < numVertices; dest++ {
		inDegree, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.New(errors.ErrCodeInputFormat, "missing in-degree for vertex %d (0-indexed)", dest)
		}
		if err := errors.ValidateInDegree(inDegree, numVertices); err != nil {
			return nil, err
		}

		for j := 0; j < inDegree; j++ {
			sourceNumber, ok, err := s.next()
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, errors.New(errors.ErrCodeInputFormat, "missing source index for vertex %d (0-indexed)", dest)
			}
			if err := errors.ValidateSourceIndex(sourceNumber, numVertices); err != nil {
				return nil, err
			}
			g.AddEdge(indices[sourceNumber-1], indices[dest])
		}
	}

	if !s.atEnd() {
		return nil, errors.New(errors.ErrCodeInputFormat, "the input file contains extra data")
	}

	if err := errors.ValidateEdgeCount(g.NumEdges()); err != nil {
		return nil, err
	}

	return g, nil
}

// ImportGraph opens the file at path and decodes it with [DecodeGraph].
func ImportGraph(path string) (*digraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	g, err := DecodeGraph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
