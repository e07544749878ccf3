package bestfirst

import "errors"

// Sentinel errors returned by the bestfirst package.
var (
	// ErrNilGraph indicates a nil Graph was passed to New.
	ErrNilGraph = errors.New("bestfirst: graph is nil")

	// ErrNilHeuristic indicates a nil Heuristic was passed to New.
	ErrNilHeuristic = errors.New("bestfirst: heuristic is nil")

	// ErrBadMultiplier indicates WithHeuristicMultiplier was given a value
	// less than 1.
	ErrBadMultiplier = errors.New("bestfirst: heuristic multiplier must be >= 1")
)
