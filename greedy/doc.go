// Package greedy implements the greedy best-first search engine: a
// priority frontier keyed by the heuristic alone, with no relaxation. Each
// node enters the frontier at most once; rediscovering an already-known
// node is a no-op. The returned path is not guaranteed optimal.
package greedy
