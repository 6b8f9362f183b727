// SPDX-License-Identifier: MIT
// Package: graphseq/builder
//
// impl_isolated.go - implementation of Isolated(n): n vertices, no edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphseq/core"
)

const (
	methodIsolated   = "Isolated"
	minIsolatedNodes = 1
)

// Isolated returns a Constructor that adds n vertices and no edges.
// Every vertex is its own component and the diameter is 0.
func Isolated(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, minIsolatedNodes, ErrTooFewVertices)
		}

		return addVertices(g, cfg, methodIsolated, n)
	}
}
