package idastar

import "github.com/epieffe/jwalker/graph"

// Options configures an Engine.
type Options[N comparable] struct {
	// Target, if non-nil, overrides the default "heuristic evaluates to
	// zero" target rule.
	Target graph.Target[N]
}

// Option configures an Engine via functional options.
type Option[N comparable] func(*Options[N])

// DefaultOptions returns Options with no target override.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{}
}

// WithTarget overrides the default target rule with an explicit predicate.
func WithTarget[N comparable](target graph.Target[N]) Option[N] {
	return func(o *Options[N]) { o.Target = target }
}
