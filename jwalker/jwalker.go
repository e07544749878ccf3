package jwalker

import (
	"github.com/epieffe/jwalker/bestfirst"
	"github.com/epieffe/jwalker/bfs"
	"github.com/epieffe/jwalker/graph"
	"github.com/epieffe/jwalker/greedy"
	"github.com/epieffe/jwalker/idastar"
	"github.com/epieffe/jwalker/localsearch"
	"github.com/epieffe/jwalker/parallelidastar"
)

// AStar constructs a best-first engine using h as the guiding heuristic
// with a multiplier of 1 (admissible-heuristic, shortest-path contract).
func AStar[N comparable](g graph.Graph[N], h graph.Heuristic[N], opts ...bestfirst.Option[N]) (*bestfirst.Engine[N], error) {
	return bestfirst.New[N](g, h, opts...)
}

// WeightedAStar constructs a best-first engine with h scaled by weight
// (weight > 1 trades optimality for fewer expansions).
func WeightedAStar[N comparable](g graph.Graph[N], h graph.Heuristic[N], weight float64, opts ...bestfirst.Option[N]) (*bestfirst.Engine[N], error) {
	all := append([]bestfirst.Option[N]{bestfirst.WithHeuristicMultiplier[N](weight)}, opts...)
	return bestfirst.New[N](g, h, all...)
}

// Dijkstra constructs a best-first engine with the zero heuristic,
// reducing the search to uniform-cost (Dijkstra's algorithm).
func Dijkstra[N comparable](g graph.Graph[N], opts ...bestfirst.Option[N]) (*bestfirst.Engine[N], error) {
	return bestfirst.New[N](g, graph.Zero[N](), opts...)
}

// Greedy constructs a greedy best-first engine, ordering the frontier by
// heuristic value alone.
func Greedy[N comparable](g graph.Graph[N], h graph.Heuristic[N], opts ...greedy.Option[N]) (*greedy.Engine[N], error) {
	return greedy.New[N](g, h, opts...)
}

// BFS constructs a breadth-first search engine.
func BFS[N comparable](g graph.Graph[N], target graph.Target[N], opts ...bfs.Option[N]) (*bfs.Engine[N], error) {
	return bfs.New[N](g, target, opts...)
}

// IDAStar constructs an iterative-deepening A* engine.
func IDAStar[N comparable](g graph.Graph[N], h graph.Heuristic[N], opts ...idastar.Option[N]) (*idastar.Engine[N], error) {
	return idastar.New[N](g, h, opts...)
}

// IDDFS constructs an iterative-deepening depth-first search engine (IDA*
// with the zero heuristic).
func IDDFS[N comparable](g graph.Graph[N], opts ...idastar.Option[N]) (*idastar.Engine[N], error) {
	return idastar.New[N](g, graph.Zero[N](), opts...)
}

// ParallelIDAStar constructs a work-stealing parallel IDA* engine.
func ParallelIDAStar[N comparable](g graph.Graph[N], h graph.Heuristic[N], opts ...parallelidastar.Option[N]) (*parallelidastar.Engine[N], error) {
	return parallelidastar.New[N](g, h, opts...)
}

// SteepestDescent constructs a local-search engine.
func SteepestDescent[N comparable](g graph.Graph[N], h graph.Heuristic[N], opts ...localsearch.Option[N]) (*localsearch.Engine[N], error) {
	return localsearch.New[N](g, h, opts...)
}
