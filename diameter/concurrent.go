package diameter

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphseq/bfs"
	"github.com/katalvlaran/graphseq/core"
)

// DistancesConcurrent builds the same DistanceTable as Distances, running up
// to workers BFS traversals at once. workers < 1 means one worker per vertex.
// Cancelling ctx stops outstanding traversals and returns ctx's error.
//
// core.Graph is safe for concurrent readers, so the graph is shared; every
// worker owns the row it fills.
func DistancesConcurrent(ctx context.Context, g *core.Graph, workers int) (DistanceTable, error) {
	if err := Validate(g); err != nil {
		return nil, err
	}

	return distancesConcurrent(ctx, g, g.Vertices(), workers)
}

// ComputeConcurrent is Compute with the all-pairs stage spread over workers.
// The fold still visits vertices in g.Vertices() order, so the Result is
// identical to Compute's.
func ComputeConcurrent(ctx context.Context, g *core.Graph, workers int) (Result, error) {
	if err := Validate(g); err != nil {
		return Result{}, err
	}

	order := g.Vertices()
	table, err := distancesConcurrent(ctx, g, order, workers)
	if err != nil {
		return Result{}, err
	}

	return fold(order, table), nil
}

func distancesConcurrent(ctx context.Context, g *core.Graph, sources []string, workers int) (DistanceTable, error) {
	rows := make([]map[string]int, len(sources))

	eg, egCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, v := range sources {
		i, v := i, v
		eg.Go(func() error {
			res, err := bfs.BFS(g, v, bfs.WithContext(egCtx))
			if err != nil {
				return fmt.Errorf("diameter: distances from %q: %w", v, err)
			}
			rows[i] = res.Depth
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	table := make(DistanceTable, len(sources))
	for i, v := range sources {
		table[v] = rows[i]
	}

	return table, nil
}
