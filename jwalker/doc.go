// Package jwalker is the top-level facade over the search engines: best-
// first (A*, weighted A*, Dijkstra), greedy best-first, breadth-first,
// IDA*, parallel IDA*, and steepest-descent local search.
//
// Each constructor here is a thin wrapper around the corresponding engine
// package's New, so callers who only need one algorithm can depend on a
// single package and a single entry point.
package jwalker
