// SPDX-License-Identifier: MIT
// Package: graphseq/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology factories live in impl_*.go; ByKind maps CLI names onto them.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphseq/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add vertices through cfg.idFn (except documented fixed IDs like "Center").
//   - Emit edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against
//     ErrTooFewVertices, ErrConstructFailed, or core sentinels.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph, for composing fixtures
// onto a graph the caller already owns (for instance a second component).
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// Kind names a topology family that can be built from a single size parameter.
type Kind string

// Supported kinds.
const (
	KindPath     Kind = "path"
	KindCycle    Kind = "cycle"
	KindStar     Kind = "star"
	KindComplete Kind = "complete"
	KindIsolated Kind = "isolated"
)

// Kinds lists every supported Kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindPath, KindCycle, KindStar, KindComplete, KindIsolated}
}

// ByKind returns the Constructor for kind with size n.
// Unknown kinds return ErrUnknownKind.
func ByKind(kind Kind, n int) (Constructor, error) {
	switch kind {
	case KindPath:
		return Path(n), nil
	case KindCycle:
		return Cycle(n), nil
	case KindStar:
		return Star(n), nil
	case KindComplete:
		return Complete(n), nil
	case KindIsolated:
		return Isolated(n), nil
	default:
		return nil, fmt.Errorf("ByKind(%q): %w", kind, ErrUnknownKind)
	}
}
