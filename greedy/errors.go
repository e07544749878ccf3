package greedy

import "errors"

// Sentinel errors returned by the greedy package.
var (
	// ErrNilGraph indicates a nil Graph was passed to New.
	ErrNilGraph = errors.New("greedy: graph is nil")

	// ErrNilHeuristic indicates a nil Heuristic was passed to New.
	ErrNilHeuristic = errors.New("greedy: heuristic is nil")
)
