package bestfirst

import (
	"testing"

	"github.com/epieffe/jwalker/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridGraph is a tiny fixture: a weighted directed graph over string IDs.
type gridGraph map[string][]graph.Edge[string]

func (g gridGraph) Outgoing(n string) []graph.Edge[string] { return g[n] }

func sampleGraph() gridGraph {
	return gridGraph{
		"A": {{Weight: 4, Destination: "B"}, {Weight: 2, Destination: "C"}},
		"B": {{Weight: 1, Destination: "C"}, {Weight: 5, Destination: "D"}},
		"C": {{Weight: 8, Destination: "D"}, {Weight: 10, Destination: "E"}},
		"D": {{Weight: 2, Destination: "E"}},
		"E": {},
	}
}

func pathCost(path []graph.Edge[string]) float64 {
	var total float64
	for _, e := range path {
		total += e.Weight
	}
	return total
}

func TestDijkstra_FindsOptimalCost(t *testing.T) {
	g := sampleGraph()
	target := func(n string) bool { return n == "E" }
	engine, err := New[string](g, graph.Zero[string](), WithTarget[string](target))
	require.NoError(t, err)

	path, ok := engine.Run("A", nil)
	require.True(t, ok)
	assert.Equal(t, 11.0, pathCost(path)) // A-B-D-E = 4+5+2=11, cheaper than A-C-D-E or A-C-E (12)
	assert.Equal(t, "E", path[len(path)-1].Destination)
}

func TestAStar_ConsistentHeuristic_MatchesOptimal(t *testing.T) {
	g := sampleGraph()
	// A trivial admissible/consistent heuristic: straight-line stand-in.
	dist := map[string]float64{"A": 11, "B": 7, "C": 10, "D": 2, "E": 0}
	h := graph.HeuristicFunc[string](func(n string) float64 { return dist[n] })

	engine, err := New[string](g, h)
	require.NoError(t, err)

	path, ok := engine.Run("A", nil)
	require.True(t, ok)
	assert.Equal(t, 11.0, pathCost(path))
}

func TestWeightedAStar_BoundedSuboptimality(t *testing.T) {
	g := sampleGraph()
	dist := map[string]float64{"A": 12, "B": 7, "C": 10, "D": 2, "E": 0}
	h := graph.HeuristicFunc[string](func(n string) float64 { return dist[n] })

	engine, err := New[string](g, h, WithHeuristicMultiplier[string](2))
	require.NoError(t, err)

	path, ok := engine.Run("A", nil)
	require.True(t, ok)
	assert.LessOrEqual(t, pathCost(path), 2*11.0)
}

func TestRun_NoPath(t *testing.T) {
	g := gridGraph{"A": {}}
	target := func(n string) bool { return n == "Z" }
	engine, err := New[string](g, graph.Zero[string](), WithTarget[string](target))
	require.NoError(t, err)

	path, ok := engine.Run("A", nil)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestNew_RejectsNilGraph(t *testing.T) {
	_, err := New[string](nil, graph.Zero[string]())
	assert.ErrorIs(t, err, ErrNilGraph)
}

func TestNew_RejectsNilHeuristic(t *testing.T) {
	_, err := New[string](sampleGraph(), nil)
	assert.ErrorIs(t, err, ErrNilHeuristic)
}

func TestWithHeuristicMultiplier_PanicsBelowOne(t *testing.T) {
	assert.Panics(t, func() {
		WithHeuristicMultiplier[string](0.5)
	})
}

func TestRun_ObserverSeesEveryReturnedNode(t *testing.T) {
	g := sampleGraph()
	target := func(n string) bool { return n == "E" }
	engine, err := New[string](g, graph.Zero[string](), WithTarget[string](target))
	require.NoError(t, err)

	seen := make(map[string]bool)
	path, ok := engine.Run("A", func(n string) { seen[n] = true })
	require.True(t, ok)

	assert.True(t, seen["A"])
	for _, e := range path {
		assert.True(t, seen[e.Destination], "destination %s not observed", e.Destination)
	}
}
