// Package dot exports graphs in Graphviz DOT form and renders them.
//
// # Overview
//
// The exporter consumes the [graph.Directed] contract only, so it works with
// both the mutable and the compiled representation. The output is a plain
// digraph: one node statement per enumerated node, one edge statement per
// (node, successor) pair, nothing else. No sorting is applied by the
// exporter itself - line order follows the graph's own enumeration, which is
// ascending and deterministic for a compiled graph and unspecified for a
// mutable one.
//
// # Usage
//
// Produce DOT text, then render it in-process:
//
//	text := dot.Marshal(g.Compile(), "deps")
//	svg, err := dot.RenderSVG(ctx, text)
//
// # Dependencies
//
// Rendering uses [github.com/goccy/go-graphviz]; the DOT writer itself has
// no dependencies beyond the graph contract.
package dot
