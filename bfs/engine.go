package bfs

import (
	"github.com/epieffe/jwalker/graph"
	"github.com/epieffe/jwalker/lineage"
)

// queueItem pairs a lineage node with its BFS depth.
type queueItem[N comparable] struct {
	node  *lineage.Node[N]
	depth int
}

// Engine runs breadth-first search over a caller-supplied Graph.
type Engine[N comparable] struct {
	graph  graph.Graph[N]
	target graph.Target[N]
	opts   Options[N]
}

// New constructs an Engine. g and target must be non-nil.
func New[N comparable](g graph.Graph[N], target graph.Target[N], opts ...Option[N]) (*Engine[N], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if target == nil {
		return nil, ErrNilTarget
	}

	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine[N]{graph: g, target: target, opts: cfg}, nil
}

// Run searches from start, invoking visit (if non-nil) once per dequeued
// node. It returns the fewest-edges path to the first node satisfying the
// target predicate, or nil and false if the reachable subgraph (bounded
// by MaxDepth, if set) is exhausted first.
func (e *Engine[N]) Run(start N, visit graph.Visit[N]) ([]graph.Edge[N], bool) {
	visited := map[N]bool{start: true}
	queue := []queueItem[N]{{node: lineage.Root(start), depth: 0}}
	e.opts.OnEnqueue(start, 0)

	for len(queue) > 0 {
		select {
		case <-e.opts.Ctx.Done():
			return nil, false
		default:
		}

		item := queue[0]
		queue = queue[1:]
		e.opts.OnDequeue(item.node.Value, item.depth)

		if visit != nil {
			visit(item.node.Value)
		}

		if e.target(item.node.Value) {
			return lineage.Path(item.node), true
		}

		if e.opts.MaxDepth > 0 && item.depth >= e.opts.MaxDepth {
			continue
		}

		for _, edge := range e.graph.Outgoing(item.node.Value) {
			if visited[edge.Destination] {
				continue
			}
			if !e.opts.FilterNeighbor(item.node.Value, edge.Destination) {
				continue
			}
			visited[edge.Destination] = true

			child := lineage.Child(item.node, edge)
			e.opts.OnEnqueue(edge.Destination, item.depth+1)
			queue = append(queue, queueItem[N]{node: child, depth: item.depth + 1})
		}
	}

	return nil, false
}
