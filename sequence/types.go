// Package sequence provides options, modes and error definitions for
// extracting longest shortest-paths from the components of a core.Graph.
package sequence

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("sequence: invalid option supplied")

// Sequence is a shortest path between two vertices, endpoints inclusive.
// Its edge count is len(s)-1.
type Sequence []string

// Mode selects which diameter each component's sequence is drawn from.
type Mode string

const (
	// ModeGlobal draws every component's sequence from the diameter of the
	// whole graph: the path of its smallest maximum pair. On a disconnected
	// graph every component therefore contributes the same sequence.
	ModeGlobal Mode = "global"

	// ModeComponent computes the diameter of each component's induced
	// subgraph and extracts that component's own longest shortest-path.
	ModeComponent Mode = "component"
)

// Modes lists the supported modes in a stable order.
func Modes() []Mode { return []Mode{ModeGlobal, ModeComponent} }

// ParseMode maps a textual mode name onto a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: unknown mode %q (want one of %v)", ErrOptionViolation, s, Modes())
}

// Option configures Extract via functional arguments.
// Invalid options are recorded and surface as ErrOptionViolation when
// Extract is invoked.
type Option func(*Options)

// Options holds the Extract parameters.
type Options struct {
	// Mode picks global or component-local diameters.
	Mode Mode

	// Logger receives one Debug record per component.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns ModeGlobal with a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Mode:   ModeGlobal,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMode selects the extraction mode. Unknown values are recorded as
// ErrOptionViolation.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if _, err := ParseMode(string(m)); err != nil {
			o.err = err
			return
		}
		o.Mode = m
	}
}

// WithLogger routes per-component Debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
