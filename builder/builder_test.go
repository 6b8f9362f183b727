// Package builder_test contains functional tests for the topology
// constructors: vertex/edge counts, adjacency shape, ID schemes and errors.
package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphseq/builder"
	"github.com/katalvlaran/graphseq/core"
)

// TestBuilders_Functional runs table-driven functional tests for each topology.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0", "1"))
				assert.True(t, g.HasEdge("2", "1"), "undirected edges are mirrored")
				assert.False(t, g.HasEdge("0", "3"))
			},
		},
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, id := range g.Vertices() {
					d, err := g.Degree(id)
					require.NoError(t, err)
					assert.Equal(t, 2, d, "vertex %s", id)
				}
				assert.True(t, g.HasEdge("4", "0"), "closing edge")
			},
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree("Center")
				require.NoError(t, err)
				assert.Equal(t, 3, d)
				assert.False(t, g.HasVertex("0"), "leaves start at index 1")
			},
		},
		{
			name:  "Complete(5)",
			ctor:  builder.Complete(5),
			wantV: 5, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, id := range g.Vertices() {
					d, err := g.Degree(id)
					require.NoError(t, err)
					assert.Equal(t, 4, d)
				}
			},
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "Isolated(3)",
			ctor:  builder.Isolated(3),
			wantV: 3, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.True(t, g.SimpleUndirected())
			for _, e := range g.Edges() {
				assert.Zero(t, e.Weight)
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_TooFew verifies each constructor rejects sizes below its minimum.
func TestBuilders_TooFew(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"Path(1)":     builder.Path(1),
		"Cycle(2)":    builder.Cycle(2),
		"Star(1)":     builder.Star(1),
		"Complete(0)": builder.Complete(0),
		"Isolated(0)": builder.Isolated(0),
	} {
		_, err := builder.BuildGraph(nil, nil, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(2), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestBuildGraph_RespectsGraphOptions checks that core constraints surface
// through the constructor error chain.
func TestBuildGraph_RespectsGraphOptions(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Path(3))
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.True(t, g.HasEdge("0", "1"))
	assert.False(t, g.HasEdge("1", "0"))
}

func TestApply_SecondComponent(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbNumb("a")}, builder.Path(3))
	require.NoError(t, err)
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithSymbNumb("b")}, builder.Path(2)))

	assert.Equal(t, []string{"a0", "a1", "a2", "b0", "b1"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())

	err = builder.Apply(nil, nil, builder.Path(2))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestApply_DuplicateEdge checks that re-applying onto the same IDs fails
// with the core multi-edge sentinel instead of silently duplicating.
func TestApply_DuplicateEdge(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(2))
	require.NoError(t, err)
	err = builder.Apply(g, nil, builder.Path(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrMultiEdgeNotAllowed))
}

func TestByKind(t *testing.T) {
	for _, k := range builder.Kinds() {
		ctor, err := builder.ByKind(k, 4)
		require.NoError(t, err, k)
		g, err := builder.BuildGraph(nil, nil, ctor)
		require.NoError(t, err, k)
		assert.Equal(t, 4, g.VertexCount(), k)
	}

	_, err := builder.ByKind("hypercube", 4)
	assert.ErrorIs(t, err, builder.ErrUnknownKind)
}

func TestWithCenterID(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithCenterID("hub")}, builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "hub"}, g.Vertices())

	assert.Panics(t, func() { builder.WithCenterID("") })
}
