package idastar

import (
	"math"

	"github.com/epieffe/jwalker/graph"
	"github.com/epieffe/jwalker/lineage"
)

// Engine runs IDA* (or IDDFS, with graph.Zero as the heuristic) over a
// caller-supplied Graph.
type Engine[N comparable] struct {
	graph     graph.Graph[N]
	heuristic graph.Heuristic[N]
	target    graph.Target[N]
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

	return &Engine[N]{graph: g, heuristic: h, target: cfg.Target}, nil
}

func (e *Engine[N]) isTarget(value N, h float64) bool {
	if e.target != nil {
		return e.target(value)
	}
	return h == 0
}

// Run searches from start, invoking visit (if non-nil) once per expanded
// node. It returns the reconstructed edge path and true on success, or
// nil and false once no finite bound remains to explore.
func (e *Engine[N]) Run(start N, visit graph.Visit[N]) ([]graph.Edge[N], bool) {
	bound := e.heuristic.Evaluate(start)
	if math.IsInf(bound, 1) {
		return nil, false
	}

	for {
		nextBound := math.Inf(1)
		stack := []*lineage.GNode[N]{lineage.RootG(start)}

		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			h := e.heuristic.Evaluate(cur.Value)
			f := cur.G + h
			if f > bound {
				nextBound = math.Min(nextBound, f)
				continue
			}

			if visit != nil {
				visit(cur.Value)
			}

			if e.isTarget(cur.Value, h) {
				return lineage.Path(cur.Node), true
			}

			for _, edge := range e.graph.Outgoing(cur.Value) {
				if lineage.OnChain(cur.Node, edge.Destination) {
					continue
				}
				stack = append(stack, lineage.ChildG(cur, edge))
			}
		}

		if math.IsInf(nextBound, 1) {
			return nil, false
		}
		bound = nextBound
	}
}
