package graph

// Edge connects a node to a destination with an additive, nonnegative real
// weight. Label is optional context the caller may attach (e.g. a move
// name); it plays no role in engine logic and is carried through to the
// reconstructed path unchanged.
//
// Equality is structural over all three fields.
type Edge[N comparable] struct {
	Label       string
	Weight      float64
	Destination N
}

// Graph enumerates the outgoing edges of a node. Implementations must be
// deterministic for a single search invocation: the engines call Outgoing
// many times for the same node and assume identical results.
//
// The library never mutates a Graph and never assumes an "is target" hook
// at this level — target identification is supplied per engine, either as
// a Target predicate or via the Heuristic-zero convention.
type Graph[N comparable] interface {
	Outgoing(n N) []Edge[N]
}

// GraphFunc adapts a plain function to the Graph interface.
type GraphFunc[N comparable] func(n N) []Edge[N]

// Outgoing calls f.
func (f GraphFunc[N]) Outgoing(n N) []Edge[N] { return f(n) }

// Heuristic estimates the nonnegative cost remaining from n to the nearest
// target. Engines may call Evaluate many times per node; callers wanting to
// avoid recomputation should memoise internally.
//
// When no Target predicate is supplied to an engine, h(n) == 0 is taken as
// the target marker.
type Heuristic[N comparable] interface {
	Evaluate(n N) float64
}

// HeuristicFunc adapts a plain function to the Heuristic interface.
type HeuristicFunc[N comparable] func(n N) float64

// Evaluate calls f.
func (f HeuristicFunc[N]) Evaluate(n N) float64 { return f(n) }

// Zero is the Heuristic that always returns 0, turning a best-first or
// IDA*-family engine into its uninformed counterpart (Dijkstra, IDDFS).
func Zero[N comparable]() Heuristic[N] { return HeuristicFunc[N](func(N) float64 { return 0 }) }

// Target reports whether a node satisfies the caller's goal condition.
type Target[N comparable] func(n N) bool

// Visit is invoked once per node as it is popped from a frontier or
// cleared from a depth threshold. It must not mutate graph topology. It
// returns nothing and cannot abort a search.
type Visit[N comparable] func(n N)
