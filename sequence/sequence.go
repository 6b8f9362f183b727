package sequence

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/graphseq/bfs"
	"github.com/katalvlaran/graphseq/components"
	"github.com/katalvlaran/graphseq/core"
	"github.com/katalvlaran/graphseq/diameter"
)

// Extract returns one longest shortest-path per connected component of g,
// in component discovery order (seeds taken in g.Vertices() order).
//
// Implementation:
//   - Stage 1: Validate g and apply options.
//   - Stage 2: Split g into connected components.
//   - Stage 3: For each component obtain a diameter Result:
//     ModeGlobal uses the diameter of the whole graph,
//     ModeComponent the diameter of the component's induced subgraph.
//   - Stage 4: If that diameter is non-zero, take the smallest pair
//     (PairSet.First) and append the BFS shortest path between its endpoints,
//     oriented from VertexPair.A to VertexPair.B.
//
// Components whose diameter is zero contribute nothing, so an edgeless graph
// yields an empty, non-nil slice.
//
// Errors:
//   - diameter.ErrInvalidGraphType: g is nil or not simple-undirected-unweighted.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// Complexity:
//   - ModeGlobal:    O(V·(V+E)) once, plus one BFS per non-trivial component.
//   - ModeComponent: Σ O(Vc·(Vc+Ec)) over components, bounded by the global cost.
func Extract(g *core.Graph, opts ...Option) ([]Sequence, error) {
	if err := diameter.Validate(g); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	comps, err := components.Connected(g)
	if err != nil {
		return nil, fmt.Errorf("sequence: %w", err)
	}

	var global diameter.Result
	if o.Mode == ModeGlobal {
		if global, err = diameter.Compute(g); err != nil {
			return nil, err
		}
	}

	out := make([]Sequence, 0, len(comps))
	for i, comp := range comps {
		src, res := g, global
		if o.Mode == ModeComponent {
			src = core.InducedSubgraph(g, components.Keep(comp))
			if res, err = diameter.Compute(src); err != nil {
				return nil, fmt.Errorf("sequence: component %d: %w", i, err)
			}
		}

		pair, ok := res.Pairs.First()
		if res.Distance == 0 || !ok {
			o.Logger.Debug("component skipped",
				slog.Int("component", i), slog.Int("size", len(comp)), slog.Int("diameter", res.Distance))
			continue
		}

		path, err := bfs.ShortestPath(src, pair.A, pair.B)
		if err != nil {
			return nil, fmt.Errorf("sequence: component %d: path %s→%s: %w", i, pair.A, pair.B, err)
		}
		o.Logger.Debug("component sequence",
			slog.Int("component", i), slog.Int("size", len(comp)), slog.Int("diameter", res.Distance),
			slog.String("from", pair.A), slog.String("to", pair.B), slog.String("mode", string(o.Mode)))
		out = append(out, Sequence(path))
	}

	return out, nil
}
