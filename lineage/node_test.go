package lineage

import (
	"testing"

	"github.com/epieffe/jwalker/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_Root(t *testing.T) {
	root := Root("A")
	assert.Nil(t, Path(root))
}

func TestPath_Chain(t *testing.T) {
	root := Root("A")
	b := Child(root, graph.Edge[string]{Weight: 1, Destination: "B"})
	c := Child(b, graph.Edge[string]{Weight: 2, Destination: "C"})

	path := Path(c)
	require.Len(t, path, 2)
	assert.Equal(t, "B", path[0].Destination)
	assert.Equal(t, "C", path[1].Destination)
}

func TestOnChain(t *testing.T) {
	root := Root(1)
	b := Child(root, graph.Edge[int]{Destination: 2})
	c := Child(b, graph.Edge[int]{Destination: 3})

	assert.True(t, OnChain(c, 1))
	assert.True(t, OnChain(c, 2))
	assert.True(t, OnChain(c, 3))
	assert.False(t, OnChain(c, 4))
}
