// Package diameter finds the diameter of a simple undirected unweighted
// core.Graph and the complete set of vertex pairs that realize it.
//
// What
//
//   - Distances builds the all-pairs DistanceTable (one BFS per vertex).
//   - DistanceTable.Eccentricity gives a vertex's largest distance and the
//     vertices at that distance.
//   - Compute folds eccentricities into a Result{Distance, Pairs}.
//   - ComputeConcurrent and DistancesConcurrent spread the per-vertex BFS
//     runs over an errgroup of workers; the fold order is unchanged.
//
// Pairs are canonical (VertexPair.A < VertexPair.B), so a PairSet never holds
// both orientations of the same pair. PairSet.First is the deterministic
// representative used by the sequence package.
//
// Disconnected graphs are accepted: distances between components are simply
// absent, and the result reports the largest component-internal distance.
//
// Usage
//
//	res, err := diameter.Compute(g)
//	if errors.Is(err, diameter.ErrInvalidGraphType) {
//		// directed, weighted, multi-edge, mixed or nil graph
//	}
//	for _, p := range res.Pairs.Sorted() {
//		fmt.Println(p.A, p.B, res.Distance)
//	}
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V·(V+E))
//   - Memory: O(V²) for the DistanceTable of a connected graph
package diameter
