package graph

import "iter"

// NodeID identifies a node in a graph. The identifier space is dense,
// running from 0 up to the largest ID referenced by any edge.
type NodeID uint16

// Edge is an ordered (From, To) pair of node identifiers.
// Self-loops (From == To) are permitted.
type Edge struct {
	From NodeID
	To   NodeID
}

// Directed is the capability contract for graph-like types. Traversal
// algorithms and exporters are written once against this interface and apply
// unmodified to both [DirectedGraph] and [CompiledGraph], and to any future
// representation that satisfies it.
//
// Implementations must produce finite sequences; no enumeration order is
// required by the contract.
type Directed interface {
	// Nodes enumerates every known node identifier.
	Nodes() iter.Seq[NodeID]

	// Successors enumerates the successors of node. Unknown nodes yield
	// an empty sequence.
	Successors(node NodeID) iter.Seq[NodeID]

	// HasEdge reports whether the edge from -> to exists.
	HasEdge(from, to NodeID) bool
}

// DirectedGraph is a mutable directed graph backed by an adjacency map.
// Edges between the same ordered pair form a set, not a multiset: adding an
// existing edge is a no-op.
//
// Every node that appears as a destination is also a key in the adjacency
// map (with a possibly empty successor set), so node enumeration is complete
// and degree queries never fail for known nodes.
//
// The zero value is not usable - use [New]. DirectedGraph is not safe for
// concurrent mutation without external synchronization.
type DirectedGraph struct {
	adjacency map[NodeID]map[NodeID]struct{}
}

// New creates an empty directed graph.
func New() *DirectedGraph {
	return &DirectedGraph{adjacency: make(map[NodeID]map[NodeID]struct{})}
}

// AddEdge inserts the edge from -> to. Adding an edge that already exists is
// a no-op. The destination is registered as a node even if it never gains
// outgoing edges of its own.
func (g *DirectedGraph) AddEdge(from, to NodeID) {
	set, ok := g.adjacency[from]
	if !ok {
		set = make(map[NodeID]struct{})
		g.adjacency[from] = set
	}
	set[to] = struct{}{}

	if _, ok := g.adjacency[to]; !ok {
		g.adjacency[to] = make(map[NodeID]struct{})
	}
}

// RemoveEdge removes the edge from -> to if present. Removing an absent edge
// is a no-op, not an error. Neither endpoint is removed as a node, even if
// the removal empties the source's successor set.
func (g *DirectedGraph) RemoveEdge(from, to NodeID) {
	if set, ok := g.adjacency[from]; ok {
		delete(set, to)
	}
}

// HasEdge reports whether the edge from -> to exists.
// Returns false for any node that was never seen.
func (g *DirectedGraph) HasEdge(from, to NodeID) bool {
	set, ok := g.adjacency[from]
	if !ok {
		return false
	}
	_, ok = set[to]
	return ok
}

// Successors enumerates the successors of node in unspecified (map) order.
// Unknown nodes yield an empty sequence.
func (g *DirectedGraph) Successors(node NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for succ := range g.adjacency[node] {
			if !yield(succ) {
				return
			}
		}
	}
}

// Nodes enumerates all known node identifiers in unspecified (map) order.
func (g *DirectedGraph) Nodes() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for node := range g.adjacency {
			if !yield(node) {
				return
			}
		}
	}
}

// NodeCount returns the number of known nodes. A node is known once it has
// appeared as either endpoint of an added edge, regardless of later removals.
func (g *DirectedGraph) NodeCount() int { return len(g.adjacency) }

// EdgeCount returns the total number of edges, summed over all successor
// sets. O(nodes).
func (g *DirectedGraph) EdgeCount() int {
	total := 0
	for _, set := range g.adjacency {
		total += len(set)
	}
	return total
}

var _ Directed = (*DirectedGraph)(nil)
