package bfs

import "errors"

// Sentinel errors returned by the bfs package.
var (
	// ErrNilGraph indicates a nil Graph was passed to New.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrNilTarget indicates a nil Target predicate was passed to New.
	ErrNilTarget = errors.New("bfs: target predicate is nil")
)
