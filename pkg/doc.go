// Package pkg provides the core libraries behind the fvswalk feedback
// vertex set solver and verifier.
//
// # Overview
//
// fvswalk computes a small feedback vertex set: a set of vertices whose
// removal makes a directed graph acyclic. It does so with a heuristic,
// not an exact algorithm, in four stages:
//
//  1. [digraph] - Split the graph into strongly connected components.
//  2. [rng] + [traffic] - Simulate random-walk traffic within each
//     non-trivial component to rank vertices by how central they are.
//  3. [reduce] - Greedily reinsert vertices in ascending-traffic order,
//     rolling back any insertion that would reintroduce a cycle.
//  4. [iotext] - Decode the input graph and encode the resulting cut set.
//
// # Architecture
//
//	input graph (iotext.DecodeGraph)
//	         |
//	  digraph.Split  -> one subgraph per SCC
//	         |
//	  traffic.Simulate (per non-trivial SCC, using rng.MT19937)
//	         |
//	  reduce.Greedy (per non-trivial SCC)
//	         |
//	  accumulated cut set (iotext.EncodeCutSet)
//
// [errors] supplies the structured error codes returned by every stage;
// [observability] lets the CLI layer observe progress through a stage
// without the core packages depending on a logging framework;
// [config] and [buildinfo] support the two CLI binaries, `fvssolve` and
// `fvsverify`, implemented in this module's internal/cli package.
//
// # Quick Start
//
//	g, err := iotext.ImportGraph("input.txt")
//	sccs := digraph.Split(g)
//
//	var cut []int
//	for _, sub := range sccs {
//	    if sub.NumEdges() == 0 {
//	        continue
//	    }
//	    traf, err := traffic.Simulate(sub, rng.Default(), traffic.Params{
//	        Agents: 1000, Steps: 1000, Batches: 250, ChangeThreshold: 0.001,
//	    }, nil)
//	    cut = append(cut, reduce.Greedy(sub, traf, nil)...)
//	}
//
//	err = iotext.ExportCutSet(cut, "output.txt")
//
// [digraph]: github.com/adharris/fvswalk/pkg/digraph
// [rng]: github.com/adharris/fvswalk/pkg/rng
// [traffic]: github.com/adharris/fvswalk/pkg/traffic
// [reduce]: github.com/adharris/fvswalk/pkg/reduce
// [iotext]: github.com/adharris/fvswalk/pkg/iotext
// [errors]: github.com/adharris/fvswalk/pkg/errors
// [observability]: github.com/adharris/fvswalk/pkg/observability
// [config]: github.com/adharris/fvswalk/pkg/config
// [buildinfo]: github.com/adharris/fvswalk/pkg/buildinfo
package pkg
