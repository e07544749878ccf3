package bestfirst

import "github.com/epieffe/jwalker/graph"

// Options configures a bestfirst Engine.
type Options[N comparable] struct {
	// Target, if non-nil, overrides the default "heuristic evaluates to
	// zero" target rule.
	Target graph.Target[N]

	// HeuristicMultiplier scales the cached heuristic in the frontier key
	// (f = g + h*HeuristicMultiplier). Must be >= 1; 1 is plain A*/Dijkstra,
	// greater than 1 yields a bounded-suboptimal weighted A*.
	HeuristicMultiplier float64
}

// Option configures an Engine via functional options.
type Option[N comparable] func(*Options[N])

// DefaultOptions returns Options with no target override and a heuristic
// multiplier of 1.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{HeuristicMultiplier: 1}
}

// WithTarget overrides the default target rule with an explicit predicate.
func WithTarget[N comparable](target graph.Target[N]) Option[N] {
	return func(o *Options[N]) { o.Target = target }
}

// WithHeuristicMultiplier sets hMul for weighted A*. Panics if mul < 1.
func WithHeuristicMultiplier[N comparable](mul float64) Option[N] {
	if mul < 1 {
		panic(ErrBadMultiplier.Error())
	}
	return func(o *Options[N]) { o.HeuristicMultiplier = mul }
}
