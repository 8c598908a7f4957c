package nodelink

import (
	"strings"
	"testing"

	"github.com/adharris/fvswalk/pkg/digraph"
)

func TestToDOTClustersNonTrivialComponents(t *testing.T) {
	g := digraph.New()
	for n := 1; n <= 3; n++ {
		g.AddVertex(n)
	}
	v1, _ := g.IndexOf(1)
	v2, _ := g.IndexOf(2)
	v3, _ := g.IndexOf(3)
	g.AddEdge(v1, v2)
	g.AddEdge(v2, v3)
	g.AddEdge(v3, v1)

	sccs := digraph.Split(g)
	dot := ToDOT(g, sccs, Options{})

	if !strings.Contains(dot, "subgraph cluster_0") {
		t.Errorf("ToDOT() = %q, want a cluster for the 3-cycle", dot)
	}
}

func TestToDOTShadesCutVertices(t *testing.T) {
	g := digraph.New()
	g.AddVertex(1)
	sccs := digraph.Split(g)

	dot := ToDOT(g, sccs, Options{Cut: []int{1}})
	if !strings.Contains(dot, "firebrick1") {
		t.Errorf("ToDOT() with cut = %q, want a firebrick1 fill", dot)
	}
}
