package localsearch

import "errors"

var (
	// ErrNilGraph is returned by New when the graph is nil.
	ErrNilGraph = errors.New("localsearch: graph must not be nil")
	// ErrNilHeuristic is returned by New when the heuristic is nil.
	ErrNilHeuristic = errors.New("localsearch: heuristic must not be nil")
	// ErrNoStart is returned by Run when no start node is given and no
	// random-node supplier was configured.
	ErrNoStart = errors.New("localsearch: no start node and no supplier configured")
	// ErrBadMaxSides is the panic value for WithMaxSides given a negative
	// budget.
	ErrBadMaxSides = errors.New("localsearch: max sides must be >= 0")
)
