// Package bfs implements breadth-first search over a caller-supplied
// Graph, returning the path with fewest edges to the first node
// satisfying the target predicate. Edge weights are ignored entirely.
//
// The walker exposes OnEnqueue/OnDequeue hooks, a depth limit, and a
// neighbor filter, and honors context cancellation mid-traversal.
package bfs
