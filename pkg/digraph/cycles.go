package digraph

// HasCycle reports whether g contains a directed cycle. It does not mutate
// g. Detection is DFS with white/gray/black coloring: a gray->gray edge is
// a back-edge and proves a cycle.
func HasCycle(g *Graph) bool {
	const (
		white = iota
		gray
		black
	)

	color := make(map[int]int, g.NumVertices())
	var hasCycle bool

	var dfs func(v int)
	dfs = func(v int) {
		color[v] = gray
		for _, w := range g.OutEdges(v) {
			switch color[w] {
			case white:
				dfs(w)
				if hasCycle {
					return
				}
			case gray:
				hasCycle = true
				return
			}
		}
		color[v] = black
	}

	for _, v := range g.Vertices() {
		if color[v] == white {
			dfs(v)
			if hasCycle {
				return true
			}
		}
	}
	return false
}
