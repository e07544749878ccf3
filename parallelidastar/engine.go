package parallelidastar

import (
	"math"
	"sync"
	"time"

	"github.com/epieffe/jwalker/graph"
	"github.com/epieffe/jwalker/lineage"
)

// Engine runs a work-stealing parallel IDA* over a caller-supplied Graph.
type Engine[N comparable] struct {
	graph     graph.Graph[N]
	heuristic graph.Heuristic[N]
	target    graph.Target[N]
	workers   int
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

	return &Engine[N]{graph: g, heuristic: h, target: cfg.Target, workers: cfg.WorkerCount}, nil
}

func (e *Engine[N]) isTarget(value N, h float64) bool {
	if e.target != nil {
		return e.target(value)
	}
	return h == 0
}

// Run searches from start using one goroutine per configured worker. It
// returns the reconstructed edge path and true on success, nil and false
// once no finite bound remains to explore, or a non-nil *WorkerFault if a
// worker goroutine panicked.
func (e *Engine[N]) Run(start N, visit graph.Visit[N]) ([]graph.Edge[N], bool, error) {
	bound := e.heuristic.Evaluate(start)
	if math.IsInf(bound, 1) {
		return nil, false, nil
	}

	w := e.workers
	if w < 1 {
		w = 1
	}

	procs := make([]*processor[N], w)
	for i := range procs {
		procs[i] = newProcessor[N](i)
	}

	for {
		r := newRing(w)
		quit := &atomicFlag{}
		var solution solutionBox[N]
		var faultMu sync.Mutex
		var fault *WorkerFault

		procs[0].reset([]*lineage.GNode[N]{lineage.RootG(start)})
		for i := 1; i < w; i++ {
			procs[i].reset(nil)
		}
		r.start()

		var wg sync.WaitGroup
		wg.Add(w)
		for i := 0; i < w; i++ {
			go func(id int) {
				defer wg.Done()
				defer func() {
					if rec := recover(); rec != nil {
						faultMu.Lock()
						if fault == nil {
							fault = &WorkerFault{WorkerID: id, Cause: rec}
						}
						faultMu.Unlock()
						quit.set()
					}
				}()
				e.runWorker(procs, r, id, w, bound, visit, quit, &solution)
			}(i)
		}
		wg.Wait()

		if fault != nil {
			return nil, false, fault
		}

		if node, ok := solution.get(); ok {
			return lineage.Path(node.Node), true, nil
		}

		nextBound := math.Inf(1)
		for _, p := range procs {
			if p.nextBound < nextBound {
				nextBound = p.nextBound
			}
		}
		if math.IsInf(nextBound, 1) {
			return nil, false, nil
		}
		bound = nextBound
	}
}

// runWorker drives one worker's share of a single iteration: pop-and-expand
// while it owns stack entries, otherwise try to steal, and failing that
// participate in the termination-detection token ring.
func (e *Engine[N]) runWorker(
	procs []*processor[N],
	r *ring,
	id, w int,
	bound float64,
	visit graph.Visit[N],
	quit *atomicFlag,
	solution *solutionBox[N],
) {
	p := procs[id]
	neighbors := neighborsOf(id, w)

	for {
		if quit.isSet() || solution.isSet() {
			return
		}

		if p.hasOwnWork() {
			cur, ok := p.pop()
			if !ok {
				continue
			}

			h := e.heuristic.Evaluate(cur.Value)
			f := cur.G + h
			if f > bound {
				p.recordBound(f)
				continue
			}

			if visit != nil {
				visit(cur.Value)
			}

			if e.isTarget(cur.Value, h) {
				solution.set(cur)
				quit.set()
				return
			}

			var children []*lineage.GNode[N]
			for _, edge := range e.graph.Outgoing(cur.Value) {
				if lineage.OnChain(cur.Node, edge.Destination) {
					continue
				}
				children = append(children, lineage.ChildG(cur, edge))
			}
			p.push(children)
			continue
		}

		stole := false
		for _, nb := range neighbors {
			if p.steal(procs[nb]) {
				stole = true
				break
			}
		}
		if stole {
			continue
		}

		if t, ok := r.tryReceive(id); ok {
			handleToken(p, r, t, quit)
			continue
		}
		time.Sleep(time.Millisecond)
	}
}
