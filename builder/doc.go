// Package builder provides deterministic fixture graphs for the distance
// packages: paths, cycles, stars, complete graphs and edgeless vertex sets.
// Every constructor produces a simple undirected unweighted core.Graph, the
// only shape diameter and sequence accept.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:   create a graph and run constructors in order.
//     – Apply:        run constructors against an existing graph
//     (useful to add a second component).
//     – ByKind:       map a textual Kind ("path", "cycle", …) to a Constructor.
//   - Topologies:
//     – Path(n)       n ≥ 2, diameter n-1.
//     – Cycle(n)      n ≥ 3, diameter ⌊n/2⌋.
//     – Star(n)       n ≥ 2, hub "Center" plus n-1 leaves.
//     – Complete(n)   n ≥ 1, diameter 1 for n ≥ 2.
//     – Isolated(n)   n ≥ 1, no edges.
//   - Vertex-ID schemes (IDFn):
//     – DefaultIDFn:      decimal strings ("0","1",…).
//     – ExcelColumnIDFn:  spreadsheet columns ("A","Z","AA",…).
//     – PaddedIDFn:       zero-padded ("v007"), keeps index order lexicographic.
//     – SymbolNumberIDFn: prefix + index ("v0","v1",…).
//
// Guarantees:
//
//   - Determinism: same constructors, options and order ⇒ identical vertex
//     sets, edge endpoints and edge IDs.
//   - Fast-fail on meaningless option values via panics in option constructors;
//     constructors themselves only return sentinel errors wrapped with %w.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithExcelColumnIDs()},
//		builder.Path(4),
//	)
//	// g: A – B – C – D
package builder
