// Package reduce builds the largest acyclic induced subgraph a traffic
// ordering allows, vertex by vertex, and reports the vertices that had to
// be left out.
package reduce

import (
	"sort"

	"github.com/adharris/fvswalk/pkg/digraph"
)

// OnVertex reports progress while reducing a single component: processed
// counts completed insertion attempts (whether or not the vertex was kept),
// out of total candidate vertices.
type OnVertex func(processed, total int)

// Greedy builds the largest acyclic induced subgraph of component that a
// traffic-ascending insertion order allows, and returns the Numbers of the
// vertices that could not be added without introducing a cycle.
//
// Vertices are considered in ascending order of traffic[v], with ties
// broken by ascending vertex Number for reproducibility. Each vertex is
// tentatively added to the acyclic graph under construction along with
// every edge to or from a vertex already present; if that introduces a
// cycle, the vertex (and its just-added edges) is rolled back and its
// Number is reported as cut.
func Greedy(component *digraph.Graph, traffic map[int]int, onVertex OnVertex) []int {
	order := component.Vertices()
	sort.Slice(order, func(i, j int) bool {
		vi, vj := order[i], order[j]
		if traffic[vi] != traffic[vj] {
			return traffic[vi] < traffic[vj]
		}
		return component.Number(vi) < component.Number(vj)
	})

	acyclic := digraph.New()
	included := make(map[int]int, len(order)) // component index -> acyclic index

	for i, v := range order {
		newIdx := acyclic.AddVertex(component.Number(v))
		included[v] = newIdx

		for _, u := range component.InEdges(v) {
			if acyclicU, ok := included[u]; ok {
				acyclic.AddEdge(acyclicU, newIdx)
			}
		}
		for _, w := range component.OutEdges(v) {
			if acyclicW, ok := included[w]; ok {
				acyclic.AddEdge(newIdx, acyclicW)
			}
		}

		if digraph.HasCycle(acyclic) {
			acyclic.RemoveVertex(newIdx)
			delete(included, v)
		}

		if onVertex != nil {
			onVertex(i+1, len(order))
		}
	}

	var cut []int
	for _, v := range order {
		if _, ok := included[v]; !ok {
			cut = append(cut, component.Number(v))
		}
	}
	return cut
}
