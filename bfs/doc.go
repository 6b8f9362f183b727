// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - BFSResult carries the visit Order, the Depth of every reached vertex
//     and its Parent in the BFS tree; PathTo rebuilds start → dest paths.
//   - ShortestPath is the one-shot form: search from src, stop at dst,
//     return the path.
//   - Hooks: OnEnqueue (before a vertex is queued) and OnVisit (may abort).
//   - WithFilterNeighbor prunes individual steps, WithMaxDepth bounds the search.
//
// Why
//
//	In an unweighted graph a BFS row is exactly the single-source shortest-path
//	table. The diameter package builds its all-pairs DistanceTable from one
//	BFS per vertex, and the sequence package rebuilds paths with ShortestPath.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and BFS enqueues neighbors in that
//	order, so the visit sequence and the chosen parents are reproducible.
//	Among several shortest paths, PathTo returns the one whose vertices were
//	discovered first.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) plus the neighbor sort inside core.
//   - Memory: O(V) for queue, Depth and Parent maps.
//
// Usage
//
//	res, err := bfs.BFS(g, "start", bfs.WithMaxDepth(3))
//	path, err := res.PathTo("goal")
//
//	path, err := bfs.ShortestPath(g, "start", "goal")
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrWeightedGraph        if run on a weighted graph.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - ErrNoPath               from PathTo/ShortestPath for unreachable targets.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
