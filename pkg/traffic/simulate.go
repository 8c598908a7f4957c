// Package traffic runs the batched random-walk simulation that estimates
// how central each vertex of a strongly connected component is to its
// cycles.
package traffic

import (
	"math"

	"github.com/adharris/fvswalk/pkg/digraph"
	"github.com/adharris/fvswalk/pkg/errors"
	"github.com/adharris/fvswalk/pkg/rng"
)

// OnBatch is invoked after each completed batch with the batch's index
// (0-based) and the summed absolute normalized traffic difference from the
// previous batch. It lets callers surface progress without coupling this package to
// a particular logger.
type OnBatch func(batchIndex int, delta float64)

// Params bundles the run parameters governing a simulation.
type Params struct {
	Agents          int
	Steps           int
	Batches         int
	ChangeThreshold float64
}

// Simulate runs up to params.Batches batches of params.Agents random walks,
// each params.Steps steps long, over component, and returns the
// unnormalized visit count for every vertex. Walks start at a uniformly
// random vertex and, at each step, move to a uniformly random out-neighbor
// of the current vertex; a deterministic move is taken without consulting
// gen when there is exactly one out-neighbor.
//
// Simulation stops early, before params.Batches batches, once the sum over
// all vertices of the absolute normalized traffic difference between
// consecutive batches drops below params.ChangeThreshold.
//
// Simulate returns an ErrCodeInvariant error if it visits a vertex with no
// outgoing edges: callers must only pass strongly connected components
// (singletons without a self-loop excluded), where every vertex has at
// least one out-edge.
func Simulate(component *digraph.Graph, gen *rng.MT19937, params Params, onBatch OnBatch) (map[int]int, error) {
	vertices := component.Vertices()
	traffic := make(map[int]int, len(vertices))
	for _, v := range vertices {
		traffic[v] = 0
	}

	prevNorm := make(map[int]float64, len(vertices))

	for batch := 0; batch < params.Batches; batch++ {
		for agent := 0; agent < params.Agents; agent++ {
			startIdx := gen.Intn(0, len(vertices))
			current := vertices[startIdx]

			for step := 0; step < params.Steps; step++ {
				outEdges := component.OutEdges(current)
				outDegree := len(outEdges)

				var next int
				switch outDegree {
				case 0:
					return nil, errors.New(errors.ErrCodeInvariant, "vertex %d has no outgoing edges; the component is not strongly connected", component.Number(current))
				case 1:
					next = outEdges[0]
				default:
					next = outEdges[gen.Intn(0, outDegree)]
				}

				traffic[next]++
				current = next
			}
		}

		total := float64((batch + 1) * params.Agents * params.Steps)
		var delta float64
		for _, v := range vertices {
			newNorm := float64(traffic[v]) / total
			delta += math.Abs(newNorm - prevNorm[v])
			prevNorm[v] = newNorm
		}

		if onBatch != nil {
			onBatch(batch, delta)
		}

		if delta < params.ChangeThreshold {
			break
		}
	}

	return traffic, nil
}
