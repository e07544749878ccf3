package jwalker

import (
	"testing"

	"github.com/epieffe/jwalker/bestfirst"
	"github.com/epieffe/jwalker/graph"
	"github.com/epieffe/jwalker/idastar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chainGraph map[string][]graph.Edge[string]

func (g chainGraph) Outgoing(n string) []graph.Edge[string] { return g[n] }

func sample() chainGraph {
	return chainGraph{
		"A": {{Weight: 1, Destination: "B"}},
		"B": {{Weight: 1, Destination: "C"}},
		"C": {},
	}
}

func TestDijkstra_Facade(t *testing.T) {
	target := func(n string) bool { return n == "C" }
	engine, err := Dijkstra[string](sample(), bestfirst.WithTarget[string](target))
	require.NoError(t, err)

	path, ok := engine.Run("A", nil)
	require.True(t, ok)
	assert.Len(t, path, 2)
}

func TestAStar_Facade(t *testing.T) {
	h := graph.HeuristicFunc[string](func(n string) float64 {
		if n == "C" {
			return 0
		}
		return 1
	})
	target := func(n string) bool { return n == "C" }
	engine, err := AStar[string](sample(), h, bestfirst.WithTarget[string](target))
	require.NoError(t, err)

	path, ok := engine.Run("A", nil)
	require.True(t, ok)
	assert.Len(t, path, 2)
}

func TestIDDFS_Facade(t *testing.T) {
	target := func(n string) bool { return n == "C" }
	engine, err := IDDFS[string](sample(), idastar.WithTarget[string](target))
	require.NoError(t, err)

	path, ok := engine.Run("A", nil)
	require.True(t, ok)
	assert.Len(t, path, 2)
}
