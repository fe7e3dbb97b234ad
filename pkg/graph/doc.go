// Package graph provides a mutable directed graph for incremental
// construction and an immutable compiled form optimized for traversal.
//
// # Overview
//
// Graphs are built edge by edge on a [DirectedGraph], which stores an
// adjacency map from each node to its successor set. Once construction is
// finished, [DirectedGraph.Compile] produces a [CompiledGraph]: a compressed
// sparse row (CSR) layout with a flat offset table and a sorted destinations
// array. The compiled form answers successor, degree, and edge-existence
// queries with slice lookups and binary search, with no per-node allocation
// at query time.
//
// # Basic Usage
//
// Create a graph with [New], add edges with [DirectedGraph.AddEdge], and
// compile it when the edge set is final:
//
//	g := graph.New()
//	g.AddEdge(0, 1)
//	g.AddEdge(1, 2)
//	g.AddEdge(0, 2)
//	c := g.Compile()
//	c.HasEdge(0, 2) // true, via binary search
//
// Compilation is a one-way snapshot: the compiled graph holds no reference
// to its source, and mutating the source afterwards has no effect on it.
//
// # The Directed Contract
//
// Algorithms in this package (and the DOT exporter in [pkg/dot]) are written
// against the [Directed] interface rather than a concrete type. Any
// representation that can enumerate its nodes, enumerate a node's
// successors, and test edge existence participates in every traversal.
// Both [DirectedGraph] and [CompiledGraph] satisfy it.
//
// # Traversal Views
//
// [DFS] and [BFS] return lazy iter.Seq sequences. State (frontier and
// visited set) is created when the sequence is ranged over, so each range
// starts a fresh, single-pass traversal. Breaking out of the loop releases
// all traversal state. [Topological] is eager: Kahn's algorithm runs at
// construction and the resulting order is inspected afterwards.
//
// Within a traversal, sibling order follows the underlying graph's
// successor enumeration: deterministic ascending on a [CompiledGraph],
// unspecified map order on a [DirectedGraph].
//
// # Node Identifiers
//
// [NodeID] is a dense small-integer space starting at 0. A node exists by
// being referenced as an edge endpoint; identifiers below the maximum that
// were never referenced occupy zero-width slots in the compiled form and are
// not enumerated. All query operations are total: unknown or out-of-range
// identifiers yield empty results rather than errors.
//
// # Concurrency
//
// DirectedGraph instances are not safe for concurrent mutation; callers must
// synchronize. A CompiledGraph is immutable after construction and safe for
// any number of concurrent readers.
//
// [pkg/dot]: github.com/trellisgraph/trellis/pkg/dot
package graph
