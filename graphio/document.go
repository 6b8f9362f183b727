package graphio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphseq/core"
)

// ErrBadDocument is returned for input that is not a well-formed edge list.
var ErrBadDocument = errors.New("graphio: bad document")

// Document is the on-disk edge-list shape.
type Document struct {
	// Vertices lists vertex IDs; only isolated vertices strictly need to appear.
	Vertices []string `yaml:"vertices,omitempty" json:"vertices,omitempty"`

	// Edges lists undirected edges as two-element [u, v] lists.
	Edges [][]string `yaml:"edges" json:"edges"`
}

// Decode parses one document from r and builds a simple undirected graph.
// An empty stream yields an empty graph.
//
// Errors:
//   - ErrBadDocument: YAML syntax errors, unknown keys, schema violations.
//   - core.ErrLoopNotAllowed, core.ErrMultiEdgeNotAllowed: graph constraints.
func Decode(r io.Reader) (*core.Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return doc.Graph()
}

// Graph validates d and materializes it as a simple undirected graph.
// Vertices are inserted first, then edges in document order.
func (d Document) Graph() (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph()
	for _, id := range d.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("graphio: vertex %q: %w", id, err)
		}
	}
	for i, e := range d.Edges {
		if _, err := g.AddEdge(e[0], e[1], 0); err != nil {
			return nil, fmt.Errorf("graphio: edge #%d [%s, %s]: %w", i, e[0], e[1], err)
		}
	}

	return g, nil
}

// FromGraph snapshots g as a Document: every vertex in sorted order and every
// edge in creation order. Directed or weighted graphs lose that information.
func FromGraph(g *core.Graph) Document {
	doc := Document{Vertices: g.Vertices(), Edges: [][]string{}}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, []string{e.From, e.To})
	}

	return doc
}

// Encode writes g to w as a YAML edge-list document.
func Encode(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}
