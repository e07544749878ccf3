package bfs

import "context"

// Options configures a bfs Engine's traversal hooks and limits.
type Options[N comparable] struct {
	// Ctx allows cancellation mid-traversal.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before it is visited.
	// Receives the node and its depth from the start.
	OnEnqueue func(n N, depth int)

	// OnDequeue is called immediately before a node is visited.
	OnDequeue func(n N, depth int)

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 (the
	// default) disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip an edge by returning false. Called for
	// every outgoing edge of the node being expanded.
	FilterNeighbor func(curr, neighbor N) bool
}

// Option configures an Engine via functional options.
type Option[N comparable] func(*Options[N])

// DefaultOptions returns Options with Context.Background(), no depth
// limit, no filtering, and no-op hooks.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:            context.Background(),
		OnEnqueue:      func(N, int) {},
		OnDequeue:      func(N, int) {},
		FilterNeighbor: func(_, _ N) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[N comparable](fn func(n N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[N comparable](fn func(n N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth (exclusive).
// d must be >= 0; d == 0 means no limit.
func WithMaxDepth[N comparable](d int) Option[N] {
	if d < 0 {
		panic("bfs: MaxDepth cannot be negative")
	}
	return func(o *Options[N]) { o.MaxDepth = d }
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor[N comparable](fn func(curr, neighbor N) bool) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
