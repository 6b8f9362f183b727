// SPDX-License-Identifier: MIT
// Package: graphseq/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a construction that could not proceed
// (nil constructor, nil target graph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind indicates ByKind received a topology name it does not know.
var ErrUnknownKind = errors.New("builder: unknown topology kind")
