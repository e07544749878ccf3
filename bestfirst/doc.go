// Package bestfirst implements the priority-frontier family of search
// engines: A*, weighted A*, and Dijkstra (the degenerate case of a
// zero heuristic). All three share one algorithm, parameterised by the
// heuristic and its multiplier.
//
// The frontier is a fibheap.Heap keyed by f = g + h*hMul. A node enters
// the "known" map the first time it is discovered; its fibheap handle is
// live while the node sits in the frontier, and is considered cleared
// once the node has been popped and expanded — that clearing is what the
// spec calls "settled".
//
// With hMul == 1 and a consistent heuristic, a popped node's g is final
// (A* optimality). hMul > 1 trades optimality for speed: the returned
// cost is bounded by hMul times optimal, but only if the supplied
// heuristic stays consistent — this package does not check that.
package bestfirst
