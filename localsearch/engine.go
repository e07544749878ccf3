package localsearch

import (
	"math/rand"

	"github.com/epieffe/jwalker/graph"
)

// Engine runs steepest descent with bounded plateau moves over a
// caller-supplied Graph and Heuristic.
type Engine[N comparable] struct {
	graph     graph.Graph[N]
	heuristic graph.Heuristic[N]
	supplier  func() N
	maxSides  int
	rng       *rand.Rand
}

// New constructs an Engine. g and h must be non-nil.
func New[N comparable](g graph.Graph[N], h graph.Heuristic[N], opts ...Option[N]) (*Engine[N], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}

	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine[N]{
		graph:     g,
		heuristic: h,
		supplier:  cfg.RandomNode,
		maxSides:  cfg.MaxSides,
		rng:       rngFromSeed(cfg.Seed),
	}, nil
}

// Run performs steepest descent from start (or, if start is nil, from the
// configured random-node supplier), invoking visit (if non-nil) once per
// node occupied, and returns the node where the search settled.
func (e *Engine[N]) Run(start *N, visit graph.Visit[N]) (N, error) {
	var cur N
	switch {
	case start != nil:
		cur = *start
	case e.supplier != nil:
		cur = e.supplier()
	default:
		var zero N
		return zero, ErrNoStart
	}

	curH := e.heuristic.Evaluate(cur)
	sides := 0

	for {
		if visit != nil {
			visit(cur)
		}

		var candidates []graph.Edge[N]
		bestH := curH
		for _, edge := range e.graph.Outgoing(cur) {
			h := e.heuristic.Evaluate(edge.Destination)
			if h > curH {
				continue
			}
			switch {
			case h < bestH:
				bestH = h
				candidates = candidates[:0]
				candidates = append(candidates, edge)
			case h == bestH:
				candidates = append(candidates, edge)
			}
		}

		if len(candidates) == 0 {
			return cur, nil
		}

		improved := bestH < curH
		if !improved {
			if sides >= e.maxSides {
				return cur, nil
			}
			sides++
		} else {
			sides = 0
		}

		choice := candidates[e.rng.Intn(len(candidates))]
		cur = choice.Destination
		curH = bestH
	}
}
