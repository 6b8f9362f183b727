// SPDX-License-Identifier: MIT
// Package: graphseq/builder
//
// helpers.go - shared vertex/edge emission with method-tagged error context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphseq/core"
)

// addVertices inserts cfg.idFn(0..n-1) in ascending index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge inserts the unweighted edge u–v.
func addEdge(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v, 0); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s): %w", method, u, v, err)
	}

	return nil
}
