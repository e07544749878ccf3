package localsearch

// Options configures an Engine.
type Options[N comparable] struct {
	// RandomNode, if set, supplies a start node when Run is called with a
	// nil start.
	RandomNode func() N

	// MaxSides bounds how many consecutive non-improving (plateau) moves
	// the search tolerates before stopping. Zero disallows any side move.
	MaxSides int

	// Seed seeds the engine's random candidate selection. Zero uses a
	// fixed default seed, matching the engine's reproducible-by-default
	// convention.
	Seed int64
}

// Option configures an Engine via functional options.
type Option[N comparable] func(*Options[N])

// DefaultOptions returns Options with no supplier and zero tolerated side
// moves.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{}
}

// WithRandomNode sets the supplier used when Run is invoked with a nil
// start node.
func WithRandomNode[N comparable](supplier func() N) Option[N] {
	return func(o *Options[N]) { o.RandomNode = supplier }
}

// WithMaxSides sets the plateau side-move budget. Panics if sides < 0.
func WithMaxSides[N comparable](sides int) Option[N] {
	if sides < 0 {
		panic(ErrBadMaxSides)
	}
	return func(o *Options[N]) { o.MaxSides = sides }
}

// WithSeed seeds the engine's random candidate selection.
func WithSeed[N comparable](seed int64) Option[N] {
	return func(o *Options[N]) { o.Seed = seed }
}
