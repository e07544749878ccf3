// SPDX-License-Identifier: MIT

// Package builder provides a mutable adjacency-list graph.Graph
// implementation plus deterministic topology constructors, so callers can
// assemble a fixture without hand-writing an adjacency representation.
//
// One orchestrator, BuildGraph, applies a sequence of Constructor closures
// to a fresh Graph in order; each constructor validates its own parameters
// and returns a sentinel error rather than panicking.
package builder
