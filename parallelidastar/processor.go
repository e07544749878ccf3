package parallelidastar

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/epieffe/jwalker/lineage"
)

type tokColour int32

const (
	white tokColour = iota
	black
)

// processor holds one worker's DFS stack and the bookkeeping the
// work-stealing and termination-detection protocols need to touch from
// other goroutines.
type processor[N comparable] struct {
	id int

	mu       sync.Mutex
	stack    []*lineage.GNode[N]
	head     int // entries below head have been donated away
	excDepth int // entries in [head, excDepth) are currently offered

	nextBound float64 // smallest f seen above the bound, this iteration

	colour atomic.Int32 // tokColour, touched only by the token protocol
}

func newProcessor[N comparable](id int) *processor[N] {
	p := &processor[N]{id: id, nextBound: math.Inf(1)}
	p.colour.Store(int32(white))
	return p
}

func (p *processor[N]) reset(seed []*lineage.GNode[N]) {
	p.mu.Lock()
	p.stack = seed
	p.head = 0
	p.excDepth = 0
	p.mu.Unlock()
	p.nextBound = math.Inf(1)
	p.colour.Store(int32(white))
}

func (p *processor[N]) recordBound(f float64) {
	if f < p.nextBound {
		p.nextBound = f
	}
}

// hasOwnWork reports whether the processor still owns work at or above head.
func (p *processor[N]) hasOwnWork() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.stack) > p.head
}

// pop removes and returns the deepest node still owned by the processor,
// shrinking the offered window if the pop ate into it.
func (p *processor[N]) pop() (*lineage.GNode[N], bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.stack) <= p.head {
		return nil, false
	}

	depth := len(p.stack)
	cur := p.stack[depth-1]
	p.stack = p.stack[:depth-1]

	newDepth := depth - 1
	if newDepth < p.excDepth {
		adjusted := (newDepth + p.head) / 2
		if adjusted < p.excDepth {
			p.excDepth = adjusted
		}
		if p.excDepth < p.head {
			p.excDepth = p.head
		}
	}

	return cur, true
}

// push appends a batch of successors and raises excDepth to the midpoint of
// the owned range, so the lower-index half [head, (len+head)/2) becomes
// stealable.
func (p *processor[N]) push(children []*lineage.GNode[N]) {
	if len(children) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stack = append(p.stack, children...)

	depth := len(p.stack)
	candidate := (depth + p.head) / 2
	if candidate > p.excDepth {
		p.excDepth = candidate
	}
}

// steal copies the victim's currently-offered range onto the thief's own
// stack, advancing the victim's head. Returns false if nothing was offered.
func (thief *processor[N]) steal(victim *processor[N]) bool {
	victim.mu.Lock()
	if victim.excDepth <= victim.head {
		victim.mu.Unlock()
		return false
	}

	stolen := make([]*lineage.GNode[N], victim.excDepth-victim.head)
	copy(stolen, victim.stack[victim.head:victim.excDepth])
	victim.head = victim.excDepth
	if thief.id > victim.id {
		victim.colour.Store(int32(black))
	}
	victim.mu.Unlock()

	thief.mu.Lock()
	thief.stack = append(thief.stack, stolen...)
	thief.mu.Unlock()
	return true
}

// neighborsOf returns up to min(3, w-1) distinct worker ids other than i,
// starting at i+1 and wrapping cyclically.
func neighborsOf(i, w int) []int {
	limit := w - 1
	if limit > 3 {
		limit = 3
	}
	out := make([]int, 0, limit)
	for k := 1; len(out) < limit; k++ {
		out = append(out, (i+k)%w)
	}
	return out
}
