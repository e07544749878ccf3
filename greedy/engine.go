package greedy

import (
	"github.com/epieffe/jwalker/fibheap"
	"github.com/epieffe/jwalker/graph"
	"github.com/epieffe/jwalker/lineage"
)

// node is the greedy engine's payload: a lineage record plus the cached
// heuristic value it was ranked by.
type node[N comparable] struct {
	*lineage.Node[N]
	h float64
}

// Engine runs greedy best-first search over a caller-supplied Graph,
// ranking the frontier by heuristic value alone.
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

func (e *Engine[N]) isTarget(n *node[N]) bool {
	if e.target != nil {
		return e.target(n.Value)
	}
	return n.h == 0
}

// Run searches from start, invoking visit (if non-nil) once per popped
// node. Each node is discovered at most once: a later rediscovery of an
// already-known node is ignored, so the returned path is not guaranteed
// cost-optimal.
func (e *Engine[N]) Run(start N, visit graph.Visit[N]) ([]graph.Edge[N], bool) {
	frontier := fibheap.New[*node[N]]()
	known := make(map[N]bool)

	startNode := &node[N]{Node: lineage.Root(start), h: e.heuristic.Evaluate(start)}
	_, _ = frontier.Insert(startNode.h, startNode)
	known[start] = true

	for !frontier.IsEmpty() {
		popped, err := frontier.ExtractMin()
		if err != nil {
			break
		}
		cur := popped.Value()

		if visit != nil {
			visit(cur.Value)
		}

		if e.isTarget(cur) {
			return lineage.Path(cur.Node), true
		}

		for _, edge := range e.graph.Outgoing(cur.Value) {
			if known[edge.Destination] {
				continue
			}
			known[edge.Destination] = true

			h := e.heuristic.Evaluate(edge.Destination)
			child := &node[N]{Node: lineage.Child(cur.Node, edge), h: h}
			_, _ = frontier.Insert(h, child)
		}
	}

	return nil, false
}
