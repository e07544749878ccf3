// Package parallelidastar implements a work-stealing parallel IDA*: each
// worker owns an explicit DFS stack bounded by the current iteration's
// cost bound; an idle worker steals a contiguous range from a busy
// neighbour's stack, and a Dijkstra–Safra-style token ring detects when
// no work remains in flight so an iteration can conclude.
//
// Per-worker processor state:
//
//   - stack: the worker's own lineage.GNode stack.
//   - head: the lowest stack index the worker still owns; entries below
//     head have been donated to thieves.
//   - excDepth: the upper bound (exclusive) of the range currently
//     offered to thieves — entries in [head, excDepth) are stealable;
//     entries at index >= excDepth remain private until the worker raises
//     excDepth after expanding a node.
//   - nextBound: this worker's contribution to the following iteration's
//     cost bound.
//   - colour: BLACK/WHITE, used only by the token-ring termination
//     protocol.
//
// A thief that successfully steals from a victim numerically below its
// own id paints that victim BLACK — the asymmetry the termination
// protocol relies on to prove no theft happened during a clean probe.
package parallelidastar
