package parallelidastar

import (
	"testing"

	"github.com/epieffe/jwalker/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chainGraph map[string][]graph.Edge[string]

func (g chainGraph) Outgoing(n string) []graph.Edge[string] { return g[n] }

func diamond() chainGraph {
	return chainGraph{
		"A": {{Weight: 4, Destination: "B"}, {Weight: 2, Destination: "C"}},
		"B": {{Weight: 1, Destination: "D"}},
		"C": {{Weight: 8, Destination: "D"}},
		"D": {},
	}
}

func TestParallelIDAStar_OptimalCost(t *testing.T) {
	g := diamond()
	dist := map[string]float64{"A": 5, "B": 1, "C": 8, "D": 0}
	h := graph.HeuristicFunc[string](func(n string) float64 { return dist[n] })
	target := func(n string) bool { return n == "D" }

	for _, workers := range []int{1, 2, 4} {
		engine, err := New[string](g, h, WithTarget[string](target), WithWorkerCount[string](workers))
		require.NoError(t, err)

		path, ok, err := engine.Run("A", nil)
		require.NoError(t, err)
		require.True(t, ok)

		var total float64
		for _, e := range path {
			total += e.Weight
		}
		assert.Equal(t, 5.0, total, "workers=%d", workers)
	}
}

func TestParallelIDAStar_NoPath(t *testing.T) {
	g := chainGraph{"A": {}}
	target := func(n string) bool { return n == "Z" }

	engine, err := New[string](g, graph.Zero[string](), WithTarget[string](target), WithWorkerCount[string](4))
	require.NoError(t, err)

	path, ok, err := engine.Run("A", nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestParallelIDAStar_CycleAvoidance(t *testing.T) {
	g := chainGraph{
		"A": {{Weight: 1, Destination: "B"}},
		"B": {{Weight: 1, Destination: "A"}, {Weight: 1, Destination: "C"}},
		"C": {},
	}
	target := func(n string) bool { return n == "C" }

	engine, err := New[string](g, graph.Zero[string](), WithTarget[string](target), WithWorkerCount[string](3))
	require.NoError(t, err)

	path, ok, err := engine.Run("A", nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, path, 2)
}

func TestParallelIDAStar_RejectsNilInputs(t *testing.T) {
	_, err := New[string](nil, graph.Zero[string]())
	assert.ErrorIs(t, err, ErrNilGraph)

	_, err = New[string](chainGraph{}, nil)
	assert.ErrorIs(t, err, ErrNilHeuristic)
}

func TestParallelIDAStar_RejectsBadWorkerCount(t *testing.T) {
	assert.Panics(t, func() {
		WithWorkerCount[string](0)
	})
}

func TestNeighborsOf(t *testing.T) {
	assert.ElementsMatch(t, []int{1}, neighborsOf(0, 2))
	assert.ElementsMatch(t, []int{1, 2}, neighborsOf(0, 3))
	assert.ElementsMatch(t, []int{1, 2, 3}, neighborsOf(0, 5))
	assert.Len(t, neighborsOf(2, 8), 3)
	assert.NotContains(t, neighborsOf(2, 8), 2)
}
