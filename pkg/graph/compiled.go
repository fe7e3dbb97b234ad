package graph

import (
	"iter"
	"slices"
)

// CompiledGraph is an immutable directed graph in compressed sparse row
// (CSR) form: a flat offset table indexed by node ID and a destinations
// array holding every node's successors as a contiguous, ascending,
// duplicate-free run.
//
// offsets has maxNodeID+2 entries and is monotonically non-decreasing;
// offsets[n+1]-offsets[n] is n's out-degree and the final entry is the total
// edge count. Identifiers below the maximum that were never referenced
// occupy zero-width slots.
//
// A CompiledGraph is built once by [DirectedGraph.Compile], holds no
// reference to its source, and is safe for concurrent readers.
type CompiledGraph struct {
	offsets      []int
	destinations []NodeID
	maxNodeID    NodeID
	isDest       []bool // indexed by NodeID; true if the ID appears as a destination
}

// Compile produces an immutable CSR snapshot of the graph. It walks node
// identifiers 0..maxNodeID in ascending numeric order and appends each
// node's successors in sorted order, so compiled successor runs are always
// ascending and deterministic regardless of insertion order.
//
// Compile has no side effect on the graph and may be called repeatedly;
// each call yields an independent snapshot. It cannot fail: an empty graph
// compiles to a snapshot with maxNodeID 0 and no destinations.
func (g *DirectedGraph) Compile() *CompiledGraph {
	var maxID NodeID
	for node := range g.adjacency {
		if node > maxID {
			maxID = node
		}
	}

	c := &CompiledGraph{
		offsets:   make([]int, int(maxID)+2),
		maxNodeID: maxID,
		isDest:    make([]bool, int(maxID)+1),
	}

	offset := 0
	// int loop variable: maxID may be the full uint16 range.
	for node := 0; node <= int(maxID); node++ {
		c.offsets[node] = offset
		set, ok := g.adjacency[NodeID(node)]
		if !ok {
			continue
		}
		sorted := make([]NodeID, 0, len(set))
		for succ := range set {
			sorted = append(sorted, succ)
		}
		slices.Sort(sorted)
		c.destinations = append(c.destinations, sorted...)
		offset += len(sorted)
	}
	c.offsets[int(maxID)+1] = offset

	for _, dest := range c.destinations {
		c.isDest[dest] = true
	}
	return c
}

// successors returns the sorted destinations slice for node, or an empty
// slice for any node beyond the compiled range.
func (c *CompiledGraph) successors(node NodeID) []NodeID {
	if node > c.maxNodeID {
		return nil
	}
	return c.destinations[c.offsets[node]:c.offsets[int(node)+1]]
}

// Successors enumerates the successors of node in ascending order.
// Nodes beyond the compiled range yield an empty sequence.
func (c *CompiledGraph) Successors(node NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for _, succ := range c.successors(node) {
			if !yield(succ) {
				return
			}
		}
	}
}

// HasEdge reports whether the edge from -> to exists, by binary search over
// the sorted successor run of from. O(log degree).
func (c *CompiledGraph) HasEdge(from, to NodeID) bool {
	_, found := slices.BinarySearch(c.successors(from), to)
	return found
}

// OutDegree returns the number of successors of node, or 0 for nodes beyond
// the compiled range. O(1).
func (c *CompiledGraph) OutDegree(node NodeID) int {
	return len(c.successors(node))
}

// MaxNodeID returns the largest node identifier observed at compile time,
// or 0 for a graph compiled from an empty source.
func (c *CompiledGraph) MaxNodeID() NodeID { return c.maxNodeID }

// Nodes enumerates, in ascending order, every identifier in 0..maxNodeID
// that either has outgoing edges or appears as some node's destination.
// Identifiers that were never referenced are skipped.
func (c *CompiledGraph) Nodes() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for node := 0; node <= int(c.maxNodeID); node++ {
			if c.offsets[node] == c.offsets[node+1] && !c.isDest[node] {
				continue
			}
			if !yield(NodeID(node)) {
				return
			}
		}
	}
}

// Edges enumerates all edges in ascending-from, then ascending-to order.
// The sequence is finite and restartable: each range starts from scratch.
func (c *CompiledGraph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for from := 0; from <= int(c.maxNodeID); from++ {
			for _, to := range c.destinations[c.offsets[from]:c.offsets[from+1]] {
				if !yield(Edge{From: NodeID(from), To: to}) {
					return
				}
			}
		}
	}
}

// NodeCount returns the number of identifiers enumerated by [CompiledGraph.Nodes].
func (c *CompiledGraph) NodeCount() int {
	count := 0
	for range c.Nodes() {
		count++
	}
	return count
}

// EdgeCount returns the total number of edges. O(1).
func (c *CompiledGraph) EdgeCount() int { return len(c.destinations) }

var _ Directed = (*CompiledGraph)(nil)
