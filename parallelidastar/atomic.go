package parallelidastar

import "sync/atomic"

// atomicFlag is a single-writer-once, multi-reader boolean published with
// release/acquire semantics.
type atomicFlag struct {
	v atomic.Bool
}

func (f *atomicFlag) set() { f.v.Store(true) }

func (f *atomicFlag) isSet() bool { return f.v.Load() }
