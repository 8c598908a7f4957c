// Package nodelink renders a decomposed digraph as a node-link diagram.
//
// # Overview
//
// This package supports the `fvssolve inspect` debug subcommand: it draws
// every vertex and edge of a digraph, grouping each strongly connected
// component into its own Graphviz cluster, and can shade a supplied cut
// set in red to show which vertices a solve run chose to remove.
//
// # Usage
//
//	sccs := digraph.Split(g)
//	dot := nodelink.ToDOT(g, sccs, nodelink.Options{Cut: cut})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
