package diameter

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphseq/bfs"
	"github.com/katalvlaran/graphseq/core"
)

// DistanceTable maps a source vertex to its row of shortest-path lengths.
// Every row holds its own source at distance 0; vertices in other components
// are absent from the row rather than stored as infinity.
type DistanceTable map[string]map[string]int

// Distances builds the all-pairs DistanceTable of g with one BFS per vertex.
//
// Complexity: O(V·(V+E)) time, O(V²) space in the worst (connected) case.
func Distances(g *core.Graph) (DistanceTable, error) {
	if err := Validate(g); err != nil {
		return nil, err
	}

	return distances(g, g.Vertices())
}

// distances runs the per-source BFS for the given sources.
func distances(g *core.Graph, sources []string) (DistanceTable, error) {
	table := make(DistanceTable, len(sources))
	for _, v := range sources {
		res, err := bfs.BFS(g, v)
		if err != nil {
			return nil, fmt.Errorf("diameter: distances from %q: %w", v, err)
		}
		table[v] = res.Depth
	}

	return table, nil
}

// Eccentricity scans the row of v and returns its largest distance together
// with every vertex at that distance. Distance 0 is never a candidate: it only
// ever describes v itself (or v's self-loop), so an isolated vertex reports
// (0, nil). The furthest vertices are sorted.
func (t DistanceTable) Eccentricity(v string) (int, []string) {
	best := 0
	var furthest []string
	for u, d := range t[v] {
		switch {
		case d > best:
			best = d
			furthest = append(furthest[:0], u)
		case d == best && d != 0:
			furthest = append(furthest, u)
		}
	}
	sort.Strings(furthest)

	return best, furthest
}

// Distance returns the shortest-path length between u and v and whether v is
// reachable from u at all.
func (t DistanceTable) Distance(u, v string) (int, bool) {
	d, ok := t[u][v]
	return d, ok
}
