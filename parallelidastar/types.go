package parallelidastar

import (
	"runtime"

	"github.com/epieffe/jwalker/graph"
)

// Options configures an Engine.
type Options[N comparable] struct {
	// Target, if non-nil, overrides the default "heuristic evaluates to
	// zero" target rule.
	Target graph.Target[N]

	// WorkerCount is the number of worker goroutines per iteration.
	// Defaults to runtime.GOMAXPROCS(0).
	WorkerCount int
}

// Option configures an Engine via functional options.
type Option[N comparable] func(*Options[N])

// DefaultOptions returns Options with GOMAXPROCS(0) workers and no target
// override.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{WorkerCount: runtime.GOMAXPROCS(0)}
}

// WithTarget overrides the default target rule with an explicit predicate.
func WithTarget[N comparable](target graph.Target[N]) Option[N] {
	return func(o *Options[N]) { o.Target = target }
}

// WithWorkerCount sets the number of worker goroutines. Panics if count < 1.
func WithWorkerCount[N comparable](count int) Option[N] {
	if count < 1 {
		panic(ErrBadWorkerCount)
	}
	return func(o *Options[N]) { o.WorkerCount = count }
}
