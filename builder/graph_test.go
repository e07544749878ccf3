package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddEdge_Undirected(t *testing.T) {
	g := New[string]()
	g.AddEdge("A", "B", 2, "")

	assert.Len(t, g.Outgoing("A"), 1)
	assert.Len(t, g.Outgoing("B"), 1)
	assert.Equal(t, "B", g.Outgoing("A")[0].Destination)
	assert.Equal(t, "A", g.Outgoing("B")[0].Destination)
}

func TestGraph_AddEdge_Directed(t *testing.T) {
	g := New[string](WithDirected[string]())
	g.AddEdge("A", "B", 2, "")

	assert.Len(t, g.Outgoing("A"), 1)
	assert.Empty(t, g.Outgoing("B"))
}

func TestGraph_AddNode_Isolated(t *testing.T) {
	g := New[string]()
	g.AddNode("Z")
	assert.Contains(t, g.Nodes(), "Z")
	assert.Empty(t, g.Outgoing("Z"))
}

func TestBuildGraph_Path(t *testing.T) {
	g, err := BuildGraph[string](nil, Path[string]("A", "B", "C"))
	require.NoError(t, err)
	assert.Len(t, g.Outgoing("A"), 1)
	assert.Len(t, g.Outgoing("B"), 2)
}

func TestBuildGraph_Cycle_RejectsTooFew(t *testing.T) {
	_, err := BuildGraph[string](nil, Cycle[string]("A", "B"))
	assert.ErrorIs(t, err, ErrTooFewNodes)
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := BuildGraph[string](nil, nil)
	assert.ErrorIs(t, err, ErrNilConstructor)
}

func TestBuildGraph_Complete(t *testing.T) {
	g, err := BuildGraph[string](nil, Complete[string]("A", "B", "C"))
	require.NoError(t, err)
	for _, n := range []string{"A", "B", "C"} {
		assert.Len(t, g.Outgoing(n), 2)
	}
}

func TestBuildGraph_Star(t *testing.T) {
	g, err := BuildGraph[string](nil, Star[string]("center", "a", "b", "c"))
	require.NoError(t, err)
	assert.Len(t, g.Outgoing("center"), 3)
}
