package digraph

// Split partitions g into one induced subgraph per strongly connected
// component, using Tarjan's algorithm (a single O(|V|+|E|) DFS pass). Each
// returned subgraph contains exactly the vertices of its component, with
// their original Number labels, and exactly the edges of g whose endpoints
// both belong to that component; cross-component edges are dropped. The
// order of the returned subgraphs is unspecified but deterministic for a
// given g.
func Split(g *Graph) []*Graph {
	s := &tarjanState{
		g:       g,
		index:   make(map[int]int),
		lowlink: make(map[int]int),
		onStack: make(map[int]bool),
	}

	for _, v := range g.Vertices() {
		if _, seen := s.index[v]; !seen {
			s.strongConnect(v)
		}
	}

	components := make([][]int, s.numComponents)
	for _, v := range g.Vertices() {
		c := s.component[v]
		components[c] = append(components[c], v)
	}

	subgraphs := make([]*Graph, len(components))
	for c, members := range components {
		subgraphs[c] = inducedSubgraph(g, members)
	}
	return subgraphs
}

type tarjanState struct {
	g             *Graph
	counter       int
	index         map[int]int
	lowlink       map[int]int
	onStack       map[int]bool
	stack         []int
	component     map[int]int
	numComponents int
}

func (s *tarjanState) strongConnect(v int) {
	s.index[v] = s.counter
	s.lowlink[v] = s.counter
	s.counter++
	s.stack = append(s.stack, v)
	s.onStack[v] = true

	for _, w := range s.g.OutEdges(v) {
		if _, seen := s.index[w]; !seen {
			s.strongConnect(w)
			s.lowlink[v] = min(s.lowlink[v], s.lowlink[w])
		} else if s.onStack[w] {
			s.lowlink[v] = min(s.lowlink[v], s.index[w])
		}
	}

	if s.lowlink[v] == s.index[v] {
		if s.component == nil {
			s.component = make(map[int]int)
		}
		c := s.numComponents
		s.numComponents++
		for {
			w := s.stack[len(s.stack)-1]
			s.stack = s.stack[:len(s.stack)-1]
			s.onStack[w] = false
			s.component[w] = c
			if w == v {
				break
			}
		}
	}
}

// inducedSubgraph builds a fresh Graph containing exactly members (in
// ascending internal-index order of the source graph, for determinism) and
// the edges of g whose endpoints are both in members.
func inducedSubgraph(g *Graph, members []int) *Graph {
	sub := New()
	remap := make(map[int]int, len(members))
	for _, v := range members {
		remap[v] = sub.AddVertex(g.Number(v))
	}
	for _, v := range members {
		for _, w := range g.OutEdges(v) {
			if sv, ok := remap[w]; ok {
				sub.AddEdge(remap[v], sv)
			}
		}
	}
	return sub
}
