package bestfirst

import (
	"github.com/epieffe/jwalker/fibheap"
	"github.com/epieffe/jwalker/graph"
	"github.com/epieffe/jwalker/lineage"
)

// node is the best-first engine's payload: a lineage record plus the cost
// from start (g), the cached heuristic (h), and the frontier handle. The
// handle is live while the node sits in the frontier and cleared once the
// node has been popped — "expanded" means handle cleared.
type node[N comparable] struct {
	*lineage.Node[N]
	g, h   float64
	handle fibheap.Handle[*node[N]]
}

func (n *node[N]) expanded() bool { return n.handle.Cleared() }

// Engine runs A*, weighted A*, or Dijkstra over a caller-supplied Graph,
// depending on the Heuristic and HeuristicMultiplier it was constructed
// with. Use graph.Zero[N]() as the heuristic for plain Dijkstra.
type Engine[N comparable] struct {
	graph     graph.Graph[N]
	heuristic graph.Heuristic[N]
	target    graph.Target[N]
	hMul      float64
}

// New constructs an Engine. g and h must be non-nil; options configure an
// optional target predicate and heuristic multiplier (default 1).
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

	return &Engine[N]{graph: g, heuristic: h, target: cfg.Target, hMul: cfg.HeuristicMultiplier}, nil
}

// isTarget applies the target rule: an explicit predicate if supplied,
// otherwise "cached h of the popped node is zero".
func (e *Engine[N]) isTarget(n *node[N]) bool {
	if e.target != nil {
		return e.target(n.Value)
	}
	return n.h == 0
}

// Run searches from start, invoking visit (if non-nil) once per popped
// node. It returns the reconstructed edge path and true on success, or
// nil and false once the frontier empties without reaching a target.
func (e *Engine[N]) Run(start N, visit graph.Visit[N]) ([]graph.Edge[N], bool) {
	frontier := fibheap.New[*node[N]]()
	known := make(map[N]*node[N])

	startNode := &node[N]{Node: lineage.Root(start), g: 0, h: e.heuristic.Evaluate(start)}
	handle, _ := frontier.Insert(startNode.g+startNode.h*e.hMul, startNode)
	startNode.handle = handle
	known[start] = startNode

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
			tentativeG := cur.g + edge.Weight

			existing, seen := known[edge.Destination]
			switch {
			case !seen:
				h := e.heuristic.Evaluate(edge.Destination)
				child := &node[N]{Node: lineage.Child(cur.Node, edge), g: tentativeG, h: h}
				childHandle, _ := frontier.Insert(tentativeG+h*e.hMul, child)
				child.handle = childHandle
				known[edge.Destination] = child

			case !existing.expanded() && tentativeG < existing.g:
				existing.g = tentativeG
				existing.Parent = cur.Node
				existing.Edge = edge
				_ = frontier.DecreaseKey(existing.handle, tentativeG+existing.h*e.hMul)

			default:
				// Already expanded, or not an improvement: ignore.
			}
		}
	}

	return nil, false
}
