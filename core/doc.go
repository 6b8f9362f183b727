// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface.
//
// The Graph G = (V,E) defaults to the simple undirected unweighted shape that
// the diameter and sequence analyses require. Other behaviors are opt-in so
// that richer inputs can be described, and then rejected explicitly by the
// analyses instead of being silently coerced:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in "mixed" graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//
// Storage is a nested map adjacencyList[from][to][edgeID] = struct{}{}, which
// keeps HasEdge and AddEdge constant time. Edge IDs are generated atomically as
// "e1", "e2", ...
//
// Determinism:
//
//	Vertices() and NeighborIDs() return lexicographically sorted IDs, Edges()
//	returns edges in creation order. Every traversal built on top of core is
//	therefore reproducible for a fixed graph.
//
// Core Methods:
//
//	AddVertex(id string) error                                         // O(1)
//	HasVertex(id string) bool                                          // O(1)
//	RemoveVertex(id string) error                                      // O(E)
//	AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) // O(1)
//	RemoveEdge(edgeID string) error                                    // O(1)
//	HasEdge(from, to string) bool                                      // O(1)
//	Neighbors(id string) ([]*Edge, error)                              // O(d log d)
//	NeighborIDs(id string) ([]string, error)                           // O(d log d)
//	Vertices() []string                                                // O(V log V)
//	Edges() []*Edge                                                    // O(E log E)
//	SimpleUndirected() bool                                            // O(1)
//	InducedSubgraph(g, keep) *Graph                                    // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – non-zero weight on unweighted graph
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed mode
package core
