// Package graphio reads and writes edge-list documents and encodes analysis
// reports.
//
// Document format (YAML; JSON is accepted too, being a YAML subset):
//
//	vertices: [a, b, c, lone]   # optional; isolated vertices must be listed
//	edges:
//	  - [a, b]
//	  - [b, c]
//
// Every decoded document is checked against a JSON Schema before any vertex
// is inserted: unknown keys, empty IDs and edges that are not exactly two
// endpoints fail with ErrBadDocument. Graph-level violations (self-loops,
// duplicate edges) surface as the core sentinels.
//
// Reports are plain structs written as YAML (gopkg.in/yaml.v3) or JSON
// (github.com/goccy/go-json), selected by Format.
package graphio
