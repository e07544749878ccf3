// SPDX-License-Identifier: MIT

package builder

// Constructor applies a deterministic mutation to g. Constructors must
// validate their own parameters and return a sentinel error; they must
// never panic.
type Constructor[N comparable] func(g *Graph[N]) error

// BuildGraph creates a fresh Graph with opts, then applies cons in order.
// The first constructor error aborts with no partial cleanup.
func BuildGraph[N comparable](opts []Option[N], cons ...Constructor[N]) (*Graph[N], error) {
	g := New[N](opts...)
	for _, fn := range cons {
		if fn == nil {
			return nil, wrapf("BuildGraph", ErrNilConstructor)
		}
		if err := fn(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Path returns a Constructor that links nodes[0] -> nodes[1] -> ... with
// unit weight. Requires at least 2 nodes.
func Path[N comparable](nodes ...N) Constructor[N] {
	return func(g *Graph[N]) error {
		if len(nodes) < 2 {
			return wrapf("Path", ErrTooFewNodes)
		}
		for i := 0; i < len(nodes)-1; i++ {
			g.AddEdge(nodes[i], nodes[i+1], 1, "")
		}
		return nil
	}
}

// Cycle returns a Constructor that links nodes in a ring, including the
// closing edge from the last node back to the first. Requires at least 3
// nodes.
func Cycle[N comparable](nodes ...N) Constructor[N] {
	return func(g *Graph[N]) error {
		if len(nodes) < 3 {
			return wrapf("Cycle", ErrTooFewNodes)
		}
		for i := range nodes {
			g.AddEdge(nodes[i], nodes[(i+1)%len(nodes)], 1, "")
		}
		return nil
	}
}

// Star returns a Constructor that links center to every leaf with unit
// weight. Requires at least 1 leaf.
func Star[N comparable](center N, leaves ...N) Constructor[N] {
	return func(g *Graph[N]) error {
		if len(leaves) < 1 {
			return wrapf("Star", ErrTooFewNodes)
		}
		for _, leaf := range leaves {
			g.AddEdge(center, leaf, 1, "")
		}
		return nil
	}
}

// Complete returns a Constructor that links every pair of distinct nodes
// with unit weight. Requires at least 2 nodes.
func Complete[N comparable](nodes ...N) Constructor[N] {
	return func(g *Graph[N]) error {
		if len(nodes) < 2 {
			return wrapf("Complete", ErrTooFewNodes)
		}
		for i := range nodes {
			for j := i + 1; j < len(nodes); j++ {
				g.AddEdge(nodes[i], nodes[j], 1, "")
			}
		}
		return nil
	}
}
