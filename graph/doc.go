// Package graph declares the two external collaborators every search engine
// in jwalker consults: a lazily-expanded directed weighted graph and an
// optional heuristic estimate. Both are supplied by the caller; this
// package owns no concrete graph storage (see the builder package for a
// convenience adjacency-list implementation).
//
// A node value N is opaque to the engines: it must support value equality
// and a stable hash over its lifetime, which Go's comparable constraint
// already guarantees for use as a map key.
package graph
