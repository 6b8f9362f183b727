// Package sequence derives representative longest shortest-paths from an
// undirected unweighted core.Graph: one sequence per connected component.
//
// What
//
//   - Extract walks the components in discovery order and, for each, picks a
//     maximum-distance pair and the BFS shortest path that joins it.
//   - ModeGlobal (default) draws every component's sequence from the diameter
//     of the whole graph. On a connected graph this is the diameter path; on a
//     disconnected one every component repeats the same sequence.
//   - ModeComponent draws each sequence from the component's own diameter.
//
// Determinism
//
// With ties, the lexicographically smallest VertexPair is chosen, and the
// path between its endpoints prefers lexicographically smaller neighbors.
// Repeated calls on the same graph return identical output.
//
// Usage
//
//	seqs, err := sequence.Extract(g, sequence.WithMode(sequence.ModeComponent))
//	if err != nil {
//		return err
//	}
//	for _, s := range seqs {
//		fmt.Println(strings.Join(s, " → "))
//	}
package sequence
