// SPDX-License-Identifier: MIT
// Package: graphseq/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub ID is cfg.centerID ("Center" by default); leaves use cfg.idFn(1..n-1).
//   - Spokes are emitted in increasing leaf index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphseq/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
// With three or more leaves its diameter is 2, realized by every leaf pair.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(cfg.centerID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, cfg.centerID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := addEdge(g, methodStar, cfg.centerID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
