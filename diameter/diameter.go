package diameter

import (
	"fmt"

	"github.com/katalvlaran/graphseq/core"
)

// Compute returns the diameter of g and every vertex pair that realizes it.
//
// Implementation:
//   - Stage 1: Validate that g is a simple undirected unweighted graph.
//   - Stage 2: Build the DistanceTable (one BFS per vertex).
//   - Stage 3: Fold over vertices in g.Vertices() order. For each vertex v,
//     take its eccentricity d_v and furthest set F_v, then:
//     d_v > D resets D := d_v and S := pairs(v, F_v);
//     d_v == D unions pairs(v, F_v) into S;
//     d_v < D leaves the accumulator untouched.
//
// A pair (u,v) at the true diameter is always observed from both endpoints
// with d == D, so the fold ends with every such pair in S even though resets
// discard pairs collected under a smaller running maximum.
//
// Edge cases:
//   - Empty graph, single vertex, or only isolated vertices: (0, ∅).
//   - Disconnected graph: cross-component distances do not exist, so the
//     shorter components contribute nothing once D exceeds their eccentricity.
//
// Errors:
//   - ErrInvalidGraphType: g is nil or not simple-undirected-unweighted.
//
// Complexity:
//   - Time O(V·(V+E)), Space O(V²) for the table.
func Compute(g *core.Graph) (Result, error) {
	if err := Validate(g); err != nil {
		return Result{}, err
	}

	order := g.Vertices()
	table, err := distances(g, order)
	if err != nil {
		return Result{}, err
	}

	return fold(order, table), nil
}

// FromTable runs the fold over a precomputed table, visiting sources in order.
// It lets callers reuse one DistanceTable for several questions.
func FromTable(order []string, table DistanceTable) Result {
	return fold(order, table)
}

// fold is the reset-on-greater / union-on-equal accumulation over vertices.
func fold(order []string, table DistanceTable) Result {
	acc := Result{Pairs: PairSet{}}
	for _, v := range order {
		d, furthest := table.Eccentricity(v)
		if d < acc.Distance {
			continue
		}
		local := make(PairSet, len(furthest))
		for _, u := range furthest {
			local.Add(NewPair(v, u))
		}
		if d > acc.Distance {
			acc = Result{Distance: d, Pairs: local}
			continue
		}
		acc.Pairs.Union(local)
	}

	return acc
}

// Validate reports whether g is a graph Compute accepts: non-nil, undirected,
// unweighted, without parallel edges and without per-edge directedness.
// The returned error wraps ErrInvalidGraphType and names the offending flags.
func Validate(g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("%w: graph is nil", ErrInvalidGraphType)
	}
	if !g.SimpleUndirected() {
		st := g.Stats()
		return fmt.Errorf("%w: need simple undirected unweighted graph (directed=%t weighted=%t multi=%t mixed=%t)",
			ErrInvalidGraphType, st.DirectedDefault, st.Weighted, st.AllowsMulti, st.MixedMode)
	}

	return nil
}
