package digraph

import "testing"

func buildLine(numbers ...int) *Graph {
	g := New()
	idx := make([]int, len(numbers))
	for i, n := range numbers {
		idx[i] = g.AddVertex(n)
	}
	for i := 0; i+1 < len(idx); i++ {
		g.AddEdge(idx[i], idx[i+1])
	}
	return g
}

func TestAddVertexStableIndex(t *testing.T) {
	g := New()
	a := g.AddVertex(1)
	b := g.AddVertex(2)
	if a != 0 || b != 1 {
		t.Fatalf("AddVertex indices = %d, %d, want 0, 1", a, b)
	}
	if n := g.Number(a); n != 1 {
		t.Errorf("Number(a) = %d, want 1", n)
	}
}

func TestAddEdgeIdempotent(t *testing.T) {
	g := New()
	a := g.AddVertex(1)
	b := g.AddVertex(2)
	g.AddEdge(a, b)
	g.AddEdge(a, b)
	if got := g.NumEdges(); got != 1 {
		t.Errorf("NumEdges() = %d, want 1", got)
	}
	if got := len(g.OutEdges(a)); got != 1 {
		t.Errorf("OutEdges(a) has %d entries, want 1", got)
	}
}

func TestRemoveVertexClearsIncidentEdges(t *testing.T) {
	g := buildLine(1, 2, 3)
	mid, _ := g.IndexOf(2)
	g.RemoveVertex(mid)

	if g.NumVertices() != 2 {
		t.Errorf("NumVertices() = %d, want 2", g.NumVertices())
	}
	if g.NumEdges() != 0 {
		t.Errorf("NumEdges() = %d, want 0", g.NumEdges())
	}
	if _, ok := g.IndexOf(2); ok {
		t.Error("IndexOf(2) should report removed vertex as absent")
	}
}

func TestIndexOfUnknown(t *testing.T) {
	g := New()
	if _, ok := g.IndexOf(42); ok {
		t.Error("IndexOf on empty graph should report not found")
	}
}

func TestVerticesAndEdgesDeterministicOrder(t *testing.T) {
	g := buildLine(10, 20, 30)
	verts := g.Vertices()
	for i, v := range verts {
		if v != i {
			t.Fatalf("Vertices()[%d] = %d, want %d", i, v, i)
		}
	}
	edges := g.Edges()
	want := []Edge{{From: 0, To: 1}, {From: 1, To: 2}}
	if len(edges) != len(want) || edges[0] != want[0] || edges[1] != want[1] {
		t.Errorf("Edges() = %v, want %v", edges, want)
	}
}
