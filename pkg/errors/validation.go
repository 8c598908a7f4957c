package errors

const (
	// MinVertices and MaxVertices bound the vertex count of a solver input
	// graph.
	MinVertices = 2
	MaxVertices = 10000

	// MinEdges and MaxEdges bound the edge count of a solver input graph.
	MinEdges = 0
	MaxEdges = 100000
)

// ValidateVertexCount checks a decoded vertex count against the bounds a
// solver input graph must satisfy.
func ValidateVertexCount(n int) error {
	if n < MinVertices || n > MaxVertices {
		return New(ErrCodeInputFormat, "the number of vertices must be between %d and %d, got %d", MinVertices, MaxVertices, n)
	}
	return nil
}

// ValidateOutputVertexCount checks a decoded vertex count against the
// bounds a cut-set file must satisfy. Unlike ValidateVertexCount, zero is
// allowed: a graph that is already acyclic produces an empty cut set.
func ValidateOutputVertexCount(n int) error {
	if n > MaxVertices {
		return New(ErrCodeInputFormat, "the number of vertices must be between 0 and %d, got %d", MaxVertices, n)
	}
	return nil
}

// ValidateEdgeCount checks a computed edge count against the bounds a
// solver input graph must satisfy.
func ValidateEdgeCount(m int) error {
	if m < MinEdges || m > MaxEdges {
		return New(ErrCodeInputFormat, "the number of edges must be between %d and %d, got %d", MinEdges, MaxEdges, m)
	}
	return nil
}

// ValidateInDegree checks a decoded in-degree count k against the number of
// vertices n in the graph: k must be between 0 and n inclusive.
func ValidateInDegree(k, n int) error {
	if k < 0 || k > n {
		return New(ErrCodeInputFormat, "the number of in-vertices must be between 0 and %d, got %d", n, k)
	}
	return nil
}

// ValidateSourceIndex checks a decoded 1-indexed source vertex index against
// the number of vertices n in the graph. This corrects a defect in the
// original implementation, where the equivalent guard used && instead of
// ||, making the guard vacuously false and letting out-of-range indices
// through silently.
func ValidateSourceIndex(s, n int) error {
	if s < 1 || n < s {
		return New(ErrCodeDomainConstraint, "the source index must be between 1 and %d, got %d", n, s)
	}
	return nil
}

// ValidateAgents checks the --agents run parameter.
func ValidateAgents(agents int) error {
	if agents < 1 {
		return New(ErrCodeDomainConstraint, "agents must be positive, got %d", agents)
	}
	return nil
}

// ValidateSteps checks the --steps run parameter.
func ValidateSteps(steps int) error {
	if steps < 1 {
		return New(ErrCodeDomainConstraint, "steps must be positive, got %d", steps)
	}
	return nil
}

// ValidateBatches checks the --batches run parameter.
func ValidateBatches(batches int) error {
	if batches < 1 {
		return New(ErrCodeDomainConstraint, "batches must be positive, got %d", batches)
	}
	return nil
}

// ValidateChangeThreshold checks the --change-threshold run parameter.
func ValidateChangeThreshold(threshold float64) error {
	if threshold < 0 {
		return New(ErrCodeDomainConstraint, "change-threshold must be non-negative, got %v", threshold)
	}
	return nil
}
