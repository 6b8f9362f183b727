// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only configuration getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Configuration flags are immutable after NewGraph returns.

package core

// NewMixedGraph creates a Graph that allows per-edge directedness overrides via
// WithEdgeDirected. WithMixedEdges is applied first, then opts left-to-right;
// the caller's slice is not mutated.
//
// Complexity: O(len(opts)).
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

// Weighted reports whether non-zero edge weights are permitted.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the default directedness applied to newly created edges.
//
// This is the construction-time policy; use Stats().DirectedEdgeCount to learn
// whether directed edges actually exist in a mixed graph.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge Directed overrides are permitted.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// SimpleUndirected reports whether the graph's configuration describes a
// simple undirected unweighted graph: no default direction, no weights, no
// parallel edges and no per-edge direction overrides. Self-loops are allowed
// by the policy because they never change a shortest-path distance.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) SimpleUndirected() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return !g.directed && !g.weighted && !g.allowMulti && !g.allowMixed
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes,
// including a classification of edges by their Directed flag.
//
// The two locks are taken one after the other, never together, so the
// snapshot is consistent per phase (flags and vertices, then edges).
//
// Complexity: O(V+E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		MixedMode:       g.allowMixed,
		VertexCount:     len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
