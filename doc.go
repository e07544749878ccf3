// Package jwalker is a generic graph-search library: best-first (A*,
// weighted A*, Dijkstra), greedy best-first, breadth-first, iterative-
// deepening A* (sequential and work-stealing parallel), and steepest-
// descent local search, all operating over a caller-supplied lazily
// expanded directed weighted graph.
//
//	• Core primitives: Edge, Graph, Heuristic — supplied by the caller
//	• Frontier structures: a Fibonacci heap with decrease-key handles
//	• Search engines: bestfirst, greedy, bfs, idastar, parallelidastar
//	• Local search: steepest descent with a bounded plateau budget
//
// Every engine is parameterised by Go generics over a comparable node
// value, constructed via functional options, and invoked through a single
// Run entry point that returns a reconstructed edge path (or a single
// optimised node, for local search) and a found/not-found result.
//
// See the jwalker subpackage for one-call constructors.
package jwalker
