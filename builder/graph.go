// SPDX-License-Identifier: MIT

package builder

import "github.com/epieffe/jwalker/graph"

// Graph is a mutable adjacency-list implementation of graph.Graph. The zero
// value is not usable; construct one with New.
type Graph[N comparable] struct {
	adj      map[N][]graph.Edge[N]
	directed bool
}

// Option configures a Graph at construction time.
type Option[N comparable] func(*Graph[N])

// WithDirected makes AddEdge add only the forward edge instead of both
// directions.
func WithDirected[N comparable]() Option[N] {
	return func(g *Graph[N]) { g.directed = true }
}

// New constructs an empty Graph.
func New[N comparable](opts ...Option[N]) *Graph[N] {
	g := &Graph[N]{adj: make(map[N][]graph.Edge[N])}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddNode ensures n is present in the graph, even if it has no outgoing
// edges. Returns g for chaining.
func (g *Graph[N]) AddNode(n N) *Graph[N] {
	if _, ok := g.adj[n]; !ok {
		g.adj[n] = nil
	}
	return g
}

// AddEdge adds a weighted edge from -> to. When the graph is undirected
// (the default), it also adds the reverse edge. Returns g for chaining.
func (g *Graph[N]) AddEdge(from, to N, weight float64, label string) *Graph[N] {
	g.AddNode(from)
	g.AddNode(to)
	g.adj[from] = append(g.adj[from], graph.Edge[N]{Label: label, Weight: weight, Destination: to})
	if !g.directed {
		g.adj[to] = append(g.adj[to], graph.Edge[N]{Label: label, Weight: weight, Destination: from})
	}
	return g
}

// Outgoing implements graph.Graph.
func (g *Graph[N]) Outgoing(n N) []graph.Edge[N] {
	return g.adj[n]
}

// Nodes returns every node added to the graph, via AddNode or as an
// endpoint of AddEdge, in no particular order.
func (g *Graph[N]) Nodes() []N {
	nodes := make([]N, 0, len(g.adj))
	for n := range g.adj {
		nodes = append(nodes, n)
	}
	return nodes
}
