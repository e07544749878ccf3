// Package lineage implements the back-chained path-node record shared by
// every search engine in jwalker: a parent pointer plus the edge traversed
// from parent to self, used to reconstruct a start-to-target path by
// walking parents in reverse and reversing the collected edges.
//
// A lineage Node is created when a successor is first discovered by a
// frontier; it survives until its owning search terminates and is never
// shared across separate Run invocations.
package lineage
