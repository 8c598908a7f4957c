package reduce

import (
	"testing"

	"github.com/adharris/fvswalk/pkg/digraph"
)

func TestGreedyIdempotentOnAcyclicGraph(t *testing.T) {
	g := digraph.New()
	a := g.AddVertex(1)
	b := g.AddVertex(2)
	c := g.AddVertex(3)
	g.AddEdge(a, b)
	g.AddEdge(b, c)

	traffic := map[int]int{a: 5, b: 1, c: 9}
	cut := Greedy(g, traffic, nil)
	if len(cut) != 0 {
		t.Errorf("Greedy() on an acyclic graph cut %v, want empty", cut)
	}
}

// sampleAllCycles builds the literal five-vertex scenario: edges
// 3->1, 5->1, 1->2, 2->3, 1->4, 4->5, forming two cycles through vertex 1
// (1->2->3->1 and 1->4->5->1) that share no vertex besides 1.
func sampleAllCycles() (*digraph.Graph, map[int]int) {
	g := digraph.New()
	idx := make(map[int]int)
	for _, n := range []int{1, 2, 3, 4, 5} {
		idx[n] = g.AddVertex(n)
	}
	edges := [][2]int{{3, 1}, {5, 1}, {1, 2}, {2, 3}, {1, 4}, {4, 5}}
	for _, e := range edges {
		g.AddEdge(idx[e[0]], idx[e[1]])
	}
	return g, idx
}

func TestGreedyBreaksBothCyclesWithTwoVertexCut(t *testing.T) {
	g, idx := sampleAllCycles()

	// Traffic favors inserting the shared hub (vertex 1) first, so it is
	// never rolled back; one vertex from each arm is then forced out when
	// closing its cycle.
	traffic := map[int]int{
		idx[1]: 0,
		idx[3]: 1,
		idx[5]: 1,
		idx[2]: 2,
		idx[4]: 2,
	}

	cut := Greedy(g, traffic, nil)
	if len(cut) != 2 {
		t.Fatalf("Greedy() cut %v, want exactly 2 vertices", cut)
	}

	acyclic := digraph.New()
	remap := make(map[int]int)
	cutSet := make(map[int]bool, len(cut))
	for _, n := range cut {
		cutSet[n] = true
	}
	for _, v := range g.Vertices() {
		if !cutSet[g.Number(v)] {
			remap[v] = acyclic.AddVertex(g.Number(v))
		}
	}
	for _, v := range g.Vertices() {
		if cutSet[g.Number(v)] {
			continue
		}
		for _, w := range g.OutEdges(v) {
			if !cutSet[g.Number(w)] {
				acyclic.AddEdge(remap[v], remap[w])
			}
		}
	}
	if digraph.HasCycle(acyclic) {
		t.Errorf("graph with cut %v removed is still cyclic", cut)
	}
}

func TestGreedyReportsProgress(t *testing.T) {
	g, idx := sampleAllCycles()
	traffic := map[int]int{idx[1]: 1, idx[2]: 2, idx[3]: 3, idx[4]: 4, idx[5]: 5}

	var calls []int
	Greedy(g, traffic, func(processed, total int) {
		calls = append(calls, processed)
		if total != 5 {
			t.Errorf("onVertex total = %d, want 5", total)
		}
	})

	if len(calls) != 5 {
		t.Fatalf("onVertex called %d times, want 5", len(calls))
	}
	for i, c := range calls {
		if c != i+1 {
			t.Errorf("onVertex call %d reported processed=%d, want %d", i, c, i+1)
		}
	}
}

func TestGreedyCutsSelfLoopSingleton(t *testing.T) {
	// digraph.Split keeps a self-loop in its singleton component (see
	// digraph.TestSplitKeepsSelfLoopOnSingletonComponent); reduce.Greedy must
	// still cut that vertex, since a self-loop on its own is already a cycle.
	g := digraph.New()
	v := g.AddVertex(7)
	g.AddEdge(v, v)

	traffic := map[int]int{v: 0}
	cut := Greedy(g, traffic, nil)
	if len(cut) != 1 || cut[0] != 7 {
		t.Fatalf("Greedy() on a self-loop singleton cut %v, want [7]", cut)
	}
}

func TestGreedyTiesBreakByAscendingNumber(t *testing.T) {
	g := digraph.New()
	a := g.AddVertex(3)
	b := g.AddVertex(1)
	c := g.AddVertex(2)
	g.AddEdge(a, b)
	g.AddEdge(b, c)
	g.AddEdge(c, a)

	// All equal traffic: insertion order should be 1, 2, 3 by Number, and
	// the third insertion (vertex 3) is the one that closes the cycle.
	traffic := map[int]int{a: 0, b: 0, c: 0}
	cut := Greedy(g, traffic, nil)
	if len(cut) != 1 || cut[0] != 3 {
		t.Errorf("Greedy() cut = %v, want [3]", cut)
	}
}
