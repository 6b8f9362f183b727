// SPDX-License-Identifier: MIT
// Package: graphseq/builder
//
// config.go - internal configuration, deterministic defaults and the
// functional options that mutate it.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//   • Option constructors validate and panic on meaningless inputs; the
//     constructors themselves never panic.

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// ID of the hub vertex in Star.
	centerID string
}

// centerVertexID is the default fixed ID of the Star hub.
const centerVertexID = "Center"

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		centerID: centerVertexID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BuilderOption customizes constructors by mutating a builderConfig
// before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithCenterID renames the Star hub. Panics on an empty ID.
func WithCenterID(id string) BuilderOption {
	if id == "" {
		panic("builder: WithCenterID(\"\")")
	}
	return func(c *builderConfig) {
		c.centerID = id
	}
}
