package fibheap

import "errors"

// Sentinel errors returned by the fibheap package.
var (
	// ErrNaNKey indicates that a key of NaN was passed to Insert or
	// DecreaseKey. NaN keys are rejected outright; +Inf and -Inf are
	// admitted (an +Inf key is effectively "never extracted before any
	// finite key").
	ErrNaNKey = errors.New("fibheap: key must not be NaN")

	// ErrIncreaseKey indicates DecreaseKey was called with a key greater
	// than the entry's current key.
	ErrIncreaseKey = errors.New("fibheap: new key exceeds current key")

	// ErrStaleHandle indicates a Handle that no longer references a live
	// entry (already extracted, or from a different heap) was passed to
	// DecreaseKey. This is a programmer error: it never corrupts heap
	// state.
	ErrStaleHandle = errors.New("fibheap: handle is stale or already extracted")

	// ErrEmpty indicates ExtractMin was called on an empty heap.
	ErrEmpty = errors.New("fibheap: heap is empty")
)
