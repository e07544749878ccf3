// Package fibheap implements a Fibonacci heap: a priority frontier with
// amortised O(1) Insert and DecreaseKey, and O(log n) ExtractMin, as
// described by Fredman and Tarjan.
//
// Internally the heap is a circular doubly-linked list of heap-ordered
// trees; each entry tracks its degree (child count) and whether it has
// already lost a child since last becoming a non-root ("marked").
// ExtractMin consolidates the root list so that at most one tree of each
// degree survives, using an auxiliary table sized by ⌈log_φ(n)⌉.
// DecreaseKey cuts a node from its parent when the heap property would be
// violated, cascading the cut upward through marked ancestors.
//
// Handles returned by Insert remain valid for the entry's lifetime and
// continue to refer to the same entry across tree restructurings; a
// cleared handle (one already popped by ExtractMin) is rejected by
// DecreaseKey with ErrStaleHandle rather than corrupting the heap.
//
// Complexity:
//
//   - Insert, DecreaseKey: amortised O(1)
//   - ExtractMin: amortised O(log n)
//   - IsEmpty, Len: O(1)
package fibheap
