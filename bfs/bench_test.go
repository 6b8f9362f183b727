package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/graphseq/bfs"
	"github.com/katalvlaran/graphseq/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkShortestPath_Grid measures corner-to-corner paths on a W×W grid.
func BenchmarkShortestPath_Grid(b *testing.B) {
	const W = 60
	g := core.NewGraph()
	id := func(r, c int) string { return fmt.Sprintf("%d_%d", r, c) }
	for r := 0; r < W; r++ {
		for c := 0; c < W; c++ {
			if c+1 < W {
				_, _ = g.AddEdge(id(r, c), id(r, c+1), 0)
			}
			if r+1 < W {
				_, _ = g.AddEdge(id(r, c), id(r+1, c), 0)
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.ShortestPath(g, id(0, 0), id(W-1, W-1)); err != nil {
			b.Fatal(err)
		}
	}
}
