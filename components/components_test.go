package components_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphseq/components"
	"github.com/katalvlaran/graphseq/core"
)

func TestConnected_Empty(t *testing.T) {
	comps, err := components.Connected(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)
}

func TestConnected_DiscoveryOrder(t *testing.T) {
	g := core.NewGraph()
	// {x–y}, {b–c–a}, {m}
	for _, e := range [][2]string{{"x", "y"}, {"c", "b"}, {"c", "a"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("m"))

	comps, err := components.Connected(g)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"a", "c", "b"},
		{"m"},
		{"x", "y"},
	}, comps)

	idx := components.Membership(comps)
	assert.Equal(t, 0, idx["b"])
	assert.Equal(t, 1, idx["m"])
	assert.Equal(t, 2, idx["y"])

	keep := components.Keep(comps[0])
	assert.True(t, keep["c"])
	assert.False(t, keep["x"])
}

func TestConnected_IsolatedVertices(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"3", "1", "2"} {
		require.NoError(t, g.AddVertex(id))
	}
	comps, err := components.Connected(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1"}, {"2"}, {"3"}}, comps)
}

func TestConnected_Errors(t *testing.T) {
	_, err := components.Connected(nil)
	assert.ErrorIs(t, err, components.ErrGraphNil)

	_, err = components.Connected(core.NewGraph(core.WithDirected(true)))
	assert.ErrorIs(t, err, components.ErrDirectedGraph)

	_, err = components.Connected(core.NewMixedGraph())
	assert.ErrorIs(t, err, components.ErrDirectedGraph)
}
