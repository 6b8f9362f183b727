// Package graphseq finds the diameter of undirected unweighted graphs and the
// longest shortest-paths ("sequences") that realize it, per connected
// component.
//
// What is inside?
//
//	core/        - thread-safe Graph, Vertex, Edge with deterministic ordering
//	bfs/         - breadth-first search, depth/parent maps, ShortestPath
//	components/  - connected components in discovery order
//	diameter/    - all-pairs distances, eccentricity and the diameter fold
//	sequence/    - one longest shortest-path per component (global or local)
//	builder/     - fixture topologies: path, cycle, star, complete, isolated
//	graphio/     - YAML/JSON edge-list documents and analysis reports
//	cmd/graphseq - command-line front end
//
// Quick start
//
//	g := core.NewGraph()
//	g.AddEdge("a", "b", 0)
//	g.AddEdge("b", "c", 0)
//
//	res, _ := diameter.Compute(g)    // res.Distance == 2, pairs {(a,c)}
//	seqs, _ := sequence.Extract(g)   // [[a b c]]
//
// Only simple undirected unweighted graphs are analyzed; anything else is
// rejected with diameter.ErrInvalidGraphType.
package graphseq
