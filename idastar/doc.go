// Package idastar implements IDA* (Iterative Deepening A*) and its
// uninformed degenerate case IDDFS: repeated cost-bounded depth-first
// search over an explicit stack, using the lineage parent chain instead
// of a visited set for cycle avoidance, which keeps memory at O(depth)
// rather than O(nodes seen).
//
// Each iteration explores every node whose f = g + h does not exceed the
// current bound; nodes that exceed it contribute to the next iteration's
// bound, which is the minimum such f observed. The search terminates when
// a target is found or an iteration produces no finite next bound.
package idastar
