package parallelidastar

import (
	"sync"
	"sync/atomic"

	"github.com/epieffe/jwalker/lineage"
)

// solutionBox is a single-writer-once, multi-reader slot for the winning
// node, published with release/acquire semantics via found.
type solutionBox[N comparable] struct {
	mu    sync.Mutex
	node  *lineage.GNode[N]
	found atomic.Bool
}

func (s *solutionBox[N]) set(n *lineage.GNode[N]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.found.Load() {
		s.node = n
		s.found.Store(true)
	}
}

func (s *solutionBox[N]) isSet() bool { return s.found.Load() }

func (s *solutionBox[N]) get() (*lineage.GNode[N], bool) {
	if !s.found.Load() {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.node, true
}
