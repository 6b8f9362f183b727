// Package diameter defines the pair, set and result types of the diameter
// computation together with its single sentinel error.
package diameter

import (
	"errors"
	"sort"
)

// ErrInvalidGraphType is returned when the input is not a simple undirected
// unweighted graph: a nil *core.Graph, or one configured as directed,
// weighted, multi-edge or mixed. Branch on it with errors.Is.
var ErrInvalidGraphType = errors.New("diameter: invalid graph type")

// VertexPair is an unordered pair of distinct vertices in canonical form:
// A is always lexicographically smaller than B, so (a,b) and (b,a) build the
// same value and the pair can be used as a map key.
type VertexPair struct {
	A string
	B string
}

// NewPair canonicalizes the unordered pair {u, v}.
func NewPair(u, v string) VertexPair {
	if v < u {
		u, v = v, u
	}

	return VertexPair{A: u, B: v}
}

// Less orders pairs by A, then by B.
func (p VertexPair) Less(q VertexPair) bool {
	if p.A != q.A {
		return p.A < q.A
	}

	return p.B < q.B
}

// PairSet is a set of canonical vertex pairs.
type PairSet map[VertexPair]struct{}

// Add inserts p.
func (s PairSet) Add(p VertexPair) { s[p] = struct{}{} }

// Has reports whether p (in any orientation) is a member.
func (s PairSet) Has(u, v string) bool {
	_, ok := s[NewPair(u, v)]
	return ok
}

// Union inserts every member of other into s.
func (s PairSet) Union(other PairSet) {
	for p := range other {
		s[p] = struct{}{}
	}
}

// Sorted returns the members ordered by VertexPair.Less.
func (s PairSet) Sorted() []VertexPair {
	out := make([]VertexPair, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// First returns the smallest member by VertexPair.Less, or false on an empty set.
// This is the deterministic tie-break used when one representative pair is needed.
func (s PairSet) First() (VertexPair, bool) {
	var (
		best  VertexPair
		found bool
	)
	for p := range s {
		if !found || p.Less(best) {
			best, found = p, true
		}
	}

	return best, found
}

// Result is the outcome of Compute.
//
// Distance is the graph diameter: the largest shortest-path distance between
// two vertices of the same component. Pairs holds every canonical pair at
// exactly that distance. Distance is 0 and Pairs empty when no two distinct
// connected vertices exist.
type Result struct {
	Distance int
	Pairs    PairSet
}
