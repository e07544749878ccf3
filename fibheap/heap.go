package fibheap

import "math"

// entry is one node of the circular, heap-ordered tree list backing a
// Heap. next/prev link siblings (including root-list membership); parent
// and child describe the tree structure.
type entry[V any] struct {
	key    float64
	value  V
	degree int
	marked bool

	next, prev    *entry[V]
	parent, child *entry[V]

	owner   *Heap[V]
	cleared bool
}

func newEntry[V any](owner *Heap[V], value V, key float64) *entry[V] {
	e := &entry[V]{owner: owner, value: value, key: key}
	e.next = e
	e.prev = e
	return e
}

// Handle references a single entry across the heap's lifetime. It remains
// meaningful after tree restructuring; Cleared reports whether the entry
// has already been popped by ExtractMin.
type Handle[V any] struct {
	e *entry[V]
}

// Value returns the value associated with the handle's entry.
func (h Handle[V]) Value() V { return h.e.value }

// Key returns the current key of the handle's entry.
func (h Handle[V]) Key() float64 { return h.e.key }

// Cleared reports whether the entry has been extracted from the heap.
func (h Handle[V]) Cleared() bool { return h.e == nil || h.e.cleared }

// Heap is a Fibonacci heap of values keyed by float64, ordered smallest
// key first. The zero value is an empty heap; New returns one.
type Heap[V any] struct {
	min  *entry[V]
	size int
}

// New returns an empty Fibonacci heap.
func New[V any]() *Heap[V] {
	return &Heap[V]{}
}

// Len returns the number of live entries in the heap.
func (h *Heap[V]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[V]) IsEmpty() bool { return h.size == 0 }

// Insert adds value with the given key and returns a stable handle to it.
// NaN keys are rejected with ErrNaNKey; +Inf/-Inf are admitted.
//
// Complexity: amortised O(1).
func (h *Heap[V]) Insert(key float64, value V) (Handle[V], error) {
	if math.IsNaN(key) {
		return Handle[V]{}, ErrNaNKey
	}

	e := newEntry(h, value, key)
	h.min = mergeLists(h.min, e)
	h.size++

	return Handle[V]{e: e}, nil
}

// ExtractMin removes and returns a handle to the entry with the smallest
// key. Fails with ErrEmpty when the heap holds no entries.
//
// Complexity: amortised O(log n).
func (h *Heap[V]) ExtractMin() (Handle[V], error) {
	if h.size == 0 {
		return Handle[V]{}, ErrEmpty
	}
	h.size--

	minElem := h.min

	if h.min.next == h.min {
		h.min = nil
	} else {
		h.min.prev.next = h.min.next
		h.min.next.prev = h.min.prev
		h.min = h.min.next
	}

	if minElem.child != nil {
		for cur := minElem.child; ; {
			cur.parent = nil
			cur = cur.next
			if cur == minElem.child {
				break
			}
		}
	}

	h.min = mergeLists(h.min, minElem.child)
	minElem.child = nil

	if h.min != nil {
		h.consolidate()
	}

	minElem.cleared = true
	minElem.next = nil
	minElem.prev = nil

	return Handle[V]{e: minElem}, nil
}

// consolidate merges root-list trees until at most one tree of each
// degree remains, sized by the degree table, then recomputes h.min.
func (h *Heap[V]) consolidate() {
	treeTable := make([]*entry[V], 0, degreeBound(h.size))

	toVisit := make([]*entry[V], 0, h.size)
	for cur := h.min; len(toVisit) == 0 || toVisit[0] != cur; cur = cur.next {
		toVisit = append(toVisit, cur)
	}

	for _, cur := range toVisit {
		for {
			for cur.degree >= len(treeTable) {
				treeTable = append(treeTable, nil)
			}
			if treeTable[cur.degree] == nil {
				treeTable[cur.degree] = cur
				break
			}

			other := treeTable[cur.degree]
			treeTable[cur.degree] = nil

			var lo, hi *entry[V]
			if other.key < cur.key {
				lo, hi = other, cur
			} else {
				lo, hi = cur, other
			}

			hi.next.prev = hi.prev
			hi.prev.next = hi.next
			hi.next = hi
			hi.prev = hi
			lo.child = mergeLists(lo.child, hi)
			hi.parent = lo
			hi.marked = false
			lo.degree++

			cur = lo
		}

		if cur.key <= h.min.key {
			h.min = cur
		}
	}
}

// degreeBound returns an upper bound on root-list degrees after n
// elements, ⌈log_φ(n)⌉ rounded up generously to avoid growth churn in the
// degree table.
func degreeBound(n int) int {
	if n < 2 {
		return 1
	}
	const invLogPhi = 2.0780869212350273 // 1 / log(phi)
	return int(math.Log(float64(n))*invLogPhi) + 2
}

// DecreaseKey lowers the key of a live entry referenced by handle. Fails
// with ErrIncreaseKey if newKey exceeds the entry's current key, and with
// ErrStaleHandle if the handle is stale, extracted, or foreign to h; such
// failures never corrupt heap state.
//
// Complexity: amortised O(1).
func (h *Heap[V]) DecreaseKey(handle Handle[V], newKey float64) error {
	e := handle.e
	if e == nil || e.cleared || e.owner != h {
		return ErrStaleHandle
	}
	if math.IsNaN(newKey) {
		return ErrNaNKey
	}
	if newKey > e.key {
		return ErrIncreaseKey
	}

	h.decreaseKeyUnchecked(e, newKey)

	return nil
}

func (h *Heap[V]) decreaseKeyUnchecked(e *entry[V], key float64) {
	e.key = key

	if e.parent != nil && e.key <= e.parent.key {
		h.cutNode(e)
	}

	if e.key <= h.min.key {
		h.min = e
	}
}

// cutNode detaches e from its parent, splices it into the root list, and
// cascades the cut upward through already-marked ancestors.
func (h *Heap[V]) cutNode(e *entry[V]) {
	e.marked = false

	if e.parent == nil {
		return
	}

	if e.next != e {
		e.next.prev = e.prev
		e.prev.next = e.next
	}

	if e.parent.child == e {
		if e.next != e {
			e.parent.child = e.next
		} else {
			e.parent.child = nil
		}
	}

	e.parent.degree--

	e.prev = e
	e.next = e
	h.min = mergeLists(h.min, e)

	parent := e.parent
	e.parent = nil

	if parent.marked {
		h.cutNode(parent)
	} else {
		parent.marked = true
	}
}

// mergeLists splices two disjoint circular root lists into one in O(1)
// time and returns a pointer to whichever root has the smaller key. If
// either argument is nil, the other is returned unchanged.
func mergeLists[V any](one, two *entry[V]) *entry[V] {
	switch {
	case one == nil:
		return two
	case two == nil:
		return one
	}

	oneNext := one.next
	one.next = two.next
	one.next.prev = one
	two.next = oneNext
	two.next.prev = two

	if one.key < two.key {
		return one
	}
	return two
}
