package idastar

import "errors"

// Sentinel errors returned by the idastar package.
var (
	// ErrNilGraph indicates a nil Graph was passed to New.
	ErrNilGraph = errors.New("idastar: graph is nil")

	// ErrNilHeuristic indicates a nil Heuristic was passed to New.
	ErrNilHeuristic = errors.New("idastar: heuristic is nil")
)
