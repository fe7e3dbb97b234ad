package graph

import (
	"iter"
	"slices"
)

// DFS returns a lazy depth-first traversal of g starting at start.
//
// The sequence always begins with start and visits each reachable node
// exactly once. Sibling order is whatever the graph's successor enumeration
// yields, so a [CompiledGraph] traverses deterministically while a
// [DirectedGraph] follows map order.
//
// Frontier and visited state are created when the sequence is ranged over;
// each range is an independent single-pass traversal, and breaking out of
// the loop releases all traversal state.
func DFS(g Directed, start NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		stack := []NodeID{start}
		visited := make(map[NodeID]struct{})

		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			// Duplicates may sit on the stack; the visited check on pop
			// prevents re-yielding.
			if _, seen := visited[node]; seen {
				continue
			}
			visited[node] = struct{}{}

			if !yield(node) {
				return
			}
			for succ := range g.Successors(node) {
				if _, seen := visited[succ]; !seen {
					stack = append(stack, succ)
				}
			}
		}
	}
}

// BFS returns a lazy breadth-first traversal of g starting at start.
//
// The sequence begins with start, then visits nodes in non-decreasing
// distance from start. Order within a layer follows the graph's successor
// enumeration. Unlike [DFS], nodes are marked visited when enqueued, so the
// frontier never holds duplicates.
//
// Each range over the sequence is an independent single-pass traversal.
func BFS(g Directed, start NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		queue := []NodeID{start}
		visited := map[NodeID]struct{}{start: {}}

		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]

			if !yield(node) {
				return
			}
			for succ := range g.Successors(node) {
				if _, seen := visited[succ]; !seen {
					visited[succ] = struct{}{}
					queue = append(queue, succ)
				}
			}
		}
	}
}

// TopoOrder holds the result of a topological sort. It is computed eagerly
// by [Topological]; the order can be inspected any number of times.
type TopoOrder struct {
	order []NodeID
	total int
}

// Topological computes a topological order of g using Kahn's algorithm:
// nodes with zero in-degree are emitted first, decrementing the in-degree of
// their successors as they go.
//
// Nodes that sit on a directed cycle never reach zero in-degree and are
// absent from the order. A self-loop counts toward its own node's in-degree,
// so self-looping nodes are likewise excluded. Use [TopoOrder.Valid] or
// [TopoOrder.HasCycle] to check whether the order covers the whole graph.
//
// Zero-in-degree nodes are seeded in the graph's node enumeration order, so
// the result is deterministic for a [CompiledGraph].
func Topological(g Directed) *TopoOrder {
	inDegree := make(map[NodeID]int)
	for node := range g.Nodes() {
		inDegree[node] = 0
	}
	for node := range g.Nodes() {
		for succ := range g.Successors(node) {
			inDegree[succ]++
		}
	}

	var queue []NodeID
	for node := range g.Nodes() {
		if inDegree[node] == 0 {
			queue = append(queue, node)
		}
	}

	order := make([]NodeID, 0, len(inDegree))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		for succ := range g.Successors(node) {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	return &TopoOrder{order: order, total: len(inDegree)}
}

// Order returns a copy of the computed order. Nodes on cycles are absent.
func (t *TopoOrder) Order() []NodeID { return slices.Clone(t.order) }

// All enumerates the computed order. The sequence is finite and restartable.
func (t *TopoOrder) All() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for _, node := range t.order {
			if !yield(node) {
				return
			}
		}
	}
}

// Len returns the number of ordered nodes.
func (t *TopoOrder) Len() int { return len(t.order) }

// Valid reports whether the order accounts for every node in the graph.
// An empty graph is trivially valid.
func (t *TopoOrder) Valid() bool { return len(t.order) == t.total }

// HasCycle reports whether any node was left out of the order, which means
// the graph contains at least one directed cycle (self-loops included).
func (t *TopoOrder) HasCycle() bool { return !t.Valid() }
