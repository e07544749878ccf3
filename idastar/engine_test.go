package idastar

import (
	"math"
	"testing"

	"github.com/epieffe/jwalker/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chainGraph map[string][]graph.Edge[string]

func (g chainGraph) Outgoing(n string) []graph.Edge[string] { return g[n] }

func TestIDDFS_FindsTarget(t *testing.T) {
	g := chainGraph{
		"A": {{Weight: 1, Destination: "B"}},
		"B": {{Weight: 1, Destination: "C"}},
		"C": {},
	}
	target := func(n string) bool { return n == "C" }

	engine, err := New[string](g, graph.Zero[string](), WithTarget[string](target))
	require.NoError(t, err)

	path, ok := engine.Run("A", nil)
	require.True(t, ok)
	assert.Len(t, path, 2)
}

func TestIDAStar_OptimalCost(t *testing.T) {
	g := chainGraph{
		"A": {{Weight: 4, Destination: "B"}, {Weight: 2, Destination: "C"}},
		"B": {{Weight: 1, Destination: "D"}},
		"C": {{Weight: 8, Destination: "D"}},
		"D": {},
	}
	dist := map[string]float64{"A": 5, "B": 1, "C": 8, "D": 0}
	h := graph.HeuristicFunc[string](func(n string) float64 { return dist[n] })
	target := func(n string) bool { return n == "D" }

	engine, err := New[string](g, h, WithTarget[string](target))
	require.NoError(t, err)

	path, ok := engine.Run("A", nil)
	require.True(t, ok)

	var total float64
	for _, e := range path {
		total += e.Weight
	}
	assert.Equal(t, 5.0, total) // A-B-D = 4+1
}

func TestIDAStar_NoPath(t *testing.T) {
	g := chainGraph{"A": {}}
	target := func(n string) bool { return n == "Z" }

	engine, err := New[string](g, graph.Zero[string](), WithTarget[string](target))
	require.NoError(t, err)

	path, ok := engine.Run("A", nil)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestIDAStar_CycleAvoidance(t *testing.T) {
	// A <-> B cycle plus a spur to the target; must not loop forever.
	g := chainGraph{
		"A": {{Weight: 1, Destination: "B"}},
		"B": {{Weight: 1, Destination: "A"}, {Weight: 1, Destination: "C"}},
		"C": {},
	}
	target := func(n string) bool { return n == "C" }

	engine, err := New[string](g, graph.Zero[string](), WithTarget[string](target))
	require.NoError(t, err)

	path, ok := engine.Run("A", nil)
	require.True(t, ok)
	assert.Len(t, path, 2)
}

func TestIDAStar_InfiniteHeuristicAtStart_NoPath(t *testing.T) {
	g := chainGraph{"A": {}}
	h := graph.HeuristicFunc[string](func(string) float64 { return math.Inf(1) })
	target := func(n string) bool { return n == "Z" }

	engine, err := New[string](g, h, WithTarget[string](target))
	require.NoError(t, err)

	path, ok := engine.Run("A", nil)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestIDAStar_RejectsNilInputs(t *testing.T) {
	_, err := New[string](nil, graph.Zero[string]())
	assert.ErrorIs(t, err, ErrNilGraph)

	_, err = New[string](chainGraph{}, nil)
	assert.ErrorIs(t, err, ErrNilHeuristic)
}
