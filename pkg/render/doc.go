// Package render provides the inspection-subcommand visualization pipeline.
//
// # Overview
//
// The [nodelink] subpackage renders a decomposed digraph as a Graphviz DOT
// document, grouping strongly connected components into labeled clusters
// and optionally highlighting a cut set. This exists only to support the
// `fvssolve inspect` debug subcommand (§4.M); it is not part of the solve
// or verify pipelines.
//
//	dot := nodelink.ToDOT(g, sccs, nodelink.Options{Cut: cutSet})
//	svg, err := nodelink.RenderSVG(dot)
//
// [nodelink]: github.com/adharris/fvswalk/pkg/render/nodelink
package render
