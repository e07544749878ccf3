package lineage

import "github.com/epieffe/jwalker/graph"

// Node is the back-chained lineage record. Parent is nil for the start
// node of a search. Edge is the zero Edge for the start node; for every
// other node, Edge.Destination == Value.
//
// Node carries no engine-specific payload (g-cost, heuristic cache,
// frontier handle); callers that need one embed Node in their own struct.
type Node[N comparable] struct {
	Parent *Node[N]
	Edge   graph.Edge[N]
	Value  N
}

// Root creates a lineage node for a search's start value, with no parent
// and a zero edge.
func Root[N comparable](start N) *Node[N] {
	return &Node[N]{Value: start}
}

// Child creates a lineage node reached from parent via edge. The child's
// value is edge.Destination.
func Child[N comparable](parent *Node[N], edge graph.Edge[N]) *Node[N] {
	return &Node[N]{Parent: parent, Edge: edge, Value: edge.Destination}
}

// Path walks n's parent chain back to the root and returns the ordered
// edges from root to n. The start node contributes no edge. Returns nil
// (not an error) when n is itself the root.
func Path[N comparable](n *Node[N]) []graph.Edge[N] {
	var depth int
	for cur := n; cur != nil && cur.Parent != nil; cur = cur.Parent {
		depth++
	}
	if depth == 0 {
		return nil
	}

	edges := make([]graph.Edge[N], depth)
	i := depth - 1
	for cur := n; cur != nil && cur.Parent != nil; cur = cur.Parent {
		edges[i] = cur.Edge
		i--
	}

	return edges
}

// OnChain reports whether value appears among n's ancestors (inclusive of
// n itself). Used by the IDA* family for cycle avoidance via the explicit
// parent chain instead of a visited set, preserving O(depth) memory.
func OnChain[N comparable](n *Node[N], value N) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Value == value {
			return true
		}
	}
	return false
}

// GNode is the IDA*-family payload: a lineage Node plus the cost-from-start
// g. Both the sequential and parallel IDA* engines use this identical
// shape.
type GNode[N comparable] struct {
	*Node[N]
	G float64
}

// RootG creates a GNode for a search's start value with g == 0.
func RootG[N comparable](start N) *GNode[N] {
	return &GNode[N]{Node: Root(start)}
}

// ChildG creates a GNode reached from parent via edge, with g computed as
// parent.G + edge.Weight.
func ChildG[N comparable](parent *GNode[N], edge graph.Edge[N]) *GNode[N] {
	return &GNode[N]{Node: Child(parent.Node, edge), G: parent.G + edge.Weight}
}
