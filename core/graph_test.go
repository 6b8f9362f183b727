// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphseq/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Undirected, unweighted, simple by default; individual tests may override.
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"), "empty graph should not have A")

	require.NoError(s.g.AddVertex("A"))
	require.True(s.g.HasVertex("A"))

	// Idempotence: adding again does not change count
	require.NoError(s.g.AddVertex("A"))
	require.Equal(1, s.g.VertexCount())

	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
	require.False(s.g.HasVertex(""))
}

func (s *GraphSuite) TestRemoveVertexDropsMirrors() {
	require := require.New(s.T())
	_, err := s.g.AddEdge("A", "B", 0)
	require.NoError(err)
	_, err = s.g.AddEdge("B", "C", 0)
	require.NoError(err)

	require.NoError(s.g.RemoveVertex("B"))
	require.False(s.g.HasVertex("B"))
	require.False(s.g.HasEdge("A", "B"))
	require.False(s.g.HasEdge("C", "B"), "mirror C→B should be removed")
	require.Equal(0, s.g.EdgeCount())

	nbrs, err := s.g.NeighborIDs("A")
	require.NoError(err)
	require.Empty(nbrs)

	require.ErrorIs(s.g.RemoveVertex("B"), core.ErrVertexNotFound)
	require.ErrorIs(s.g.RemoveVertex(""), core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestAddEdgeConstraints() {
	require := require.New(s.T())

	eid, err := s.g.AddEdge("A", "B", 0)
	require.NoError(err)
	require.Equal("e1", eid)
	require.True(s.g.HasVertex("A") && s.g.HasVertex("B"), "AddEdge should auto-add vertices")
	require.True(s.g.HasEdge("B", "A"), "undirected edges are mirrored")

	_, err = s.g.AddEdge("A", "B", 0)
	require.ErrorIs(err, core.ErrMultiEdgeNotAllowed)
	_, err = s.g.AddEdge("B", "A", 0)
	require.ErrorIs(err, core.ErrMultiEdgeNotAllowed, "mirror counts as the same edge")

	_, err = s.g.AddEdge("A", "A", 0)
	require.ErrorIs(err, core.ErrLoopNotAllowed)

	_, err = s.g.AddEdge("A", "C", 3)
	require.ErrorIs(err, core.ErrBadWeight)

	_, err = s.g.AddEdge("", "C", 0)
	require.ErrorIs(err, core.ErrEmptyVertexID)

	_, err = s.g.AddEdge("A", "C", 0, core.WithEdgeDirected(true))
	require.ErrorIs(err, core.ErrMixedEdgesNotAllowed)
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	eid, err := s.g.AddEdge("A", "B", 0)
	require.NoError(err)

	e, err := s.g.GetEdge(eid)
	require.NoError(err)
	require.Equal("A", e.From)

	require.NoError(s.g.RemoveEdge(eid))
	require.False(s.g.HasEdge("A", "B"))
	require.False(s.g.HasEdge("B", "A"))
	require.True(s.g.HasVertex("A"), "vertices survive edge removal")

	require.ErrorIs(s.g.RemoveEdge(eid), core.ErrEdgeNotFound)
	_, err = s.g.GetEdge(eid)
	require.ErrorIs(err, core.ErrEdgeNotFound)
}

func (s *GraphSuite) TestDeterministicOrdering() {
	require := require.New(s.T())
	for _, pair := range [][2]string{{"D", "A"}, {"C", "A"}, {"B", "A"}, {"A", "E"}} {
		_, err := s.g.AddEdge(pair[0], pair[1], 0)
		require.NoError(err)
	}

	require.Equal([]string{"A", "B", "C", "D", "E"}, s.g.Vertices())

	nbrs, err := s.g.NeighborIDs("A")
	require.NoError(err)
	require.Equal([]string{"B", "C", "D", "E"}, nbrs)

	deg, err := s.g.Degree("A")
	require.NoError(err)
	require.Equal(4, deg)

	var ids []string
	for _, e := range s.g.Edges() {
		ids = append(ids, e.ID)
	}
	require.Equal([]string{"e1", "e2", "e3", "e4"}, ids)
}

func (s *GraphSuite) TestEdgeOrderingPastNine() {
	require := require.New(s.T())
	for i := 0; i < 11; i++ {
		_, err := s.g.AddEdge("hub", string(rune('a'+i)), 0)
		require.NoError(err)
	}
	edges := s.g.Edges()
	require.Len(edges, 11)
	require.Equal("e1", edges[0].ID)
	require.Equal("e9", edges[8].ID)
	require.Equal("e10", edges[9].ID)
	require.Equal("e11", edges[10].ID)
}

func (s *GraphSuite) TestNeighborsErrors() {
	require := require.New(s.T())
	_, err := s.g.Neighbors("")
	require.ErrorIs(err, core.ErrEmptyVertexID)
	_, err = s.g.NeighborIDs("ghost")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Degree("ghost")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestSelfLoopNeighborAndDegree() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(err)
	_, err = g.AddEdge("A", "B", 0)
	require.NoError(err)

	nbrs, err := g.NeighborIDs("A")
	require.NoError(err)
	require.Equal([]string{"A", "B"}, nbrs)

	deg, err := g.Degree("A")
	require.NoError(err)
	require.Equal(1, deg, "a self-loop is not a distinct neighbor")
}

func (s *GraphSuite) TestDirectedNeighbors() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("X", "Y", 0)
	require.NoError(err)

	out, err := g.NeighborIDs("X")
	require.NoError(err)
	require.Equal([]string{"Y"}, out)

	in, err := g.NeighborIDs("Y")
	require.NoError(err)
	require.Empty(in, "directed edges are not traversable backwards")
}

func (s *GraphSuite) TestSimpleUndirectedAndStats() {
	require := require.New(s.T())
	require.True(s.g.SimpleUndirected())
	require.True(core.NewGraph(core.WithLoops()).SimpleUndirected())
	require.False(core.NewGraph(core.WithDirected(true)).SimpleUndirected())
	require.False(core.NewGraph(core.WithWeighted()).SimpleUndirected())
	require.False(core.NewGraph(core.WithMultiEdges()).SimpleUndirected())
	require.False(core.NewMixedGraph().SimpleUndirected())

	mg := core.NewMixedGraph()
	_, err := mg.AddEdge("A", "B", 0, core.WithEdgeDirected(true))
	require.NoError(err)
	_, err = mg.AddEdge("B", "C", 0)
	require.NoError(err)
	st := mg.Stats()
	require.True(st.MixedMode)
	require.Equal(3, st.VertexCount)
	require.Equal(2, st.EdgeCount)
	require.Equal(1, st.DirectedEdgeCount)
	require.Equal(1, st.UndirectedEdgeCount)
}

func (s *GraphSuite) TestInducedSubgraph() {
	require := require.New(s.T())
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"X", "Y"}} {
		_, err := s.g.AddEdge(pair[0], pair[1], 0)
		require.NoError(err)
	}

	sub := core.InducedSubgraph(s.g, map[string]bool{"A": true, "B": true, "C": true})
	require.Equal([]string{"A", "B", "C"}, sub.Vertices())
	require.Equal(2, sub.EdgeCount())
	require.True(sub.HasEdge("C", "B"))
	require.False(sub.HasVertex("D"))
	require.True(sub.SimpleUndirected())

	// New edges on the view continue the source's ID sequence.
	eid, err := sub.AddEdge("A", "C", 0)
	require.NoError(err)
	require.Equal("e5", eid)

	// Source is untouched.
	require.Equal(4, s.g.EdgeCount())
	require.False(s.g.HasEdge("A", "C"))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
