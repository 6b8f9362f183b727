package graphio

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema constrains the generic form of a Document.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "vertices": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    },
    "edges": {
      "type": "array",
      "items": {
        "type": "array",
        "minItems": 2,
        "maxItems": 2,
        "items": {"type": "string", "minLength": 1}
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("graphseq-document.json", documentSchema)

// Validate checks d against the document schema.
func (d Document) Validate() error {
	if err := compiledSchema.Validate(d.generic()); err != nil {
		return fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return nil
}

// generic converts d into the map/slice/string tree the validator walks.
func (d Document) generic() map[string]interface{} {
	out := make(map[string]interface{}, 2)
	if d.Vertices != nil {
		vs := make([]interface{}, len(d.Vertices))
		for i, v := range d.Vertices {
			vs[i] = v
		}
		out["vertices"] = vs
	}
	es := make([]interface{}, len(d.Edges))
	for i, e := range d.Edges {
		pair := make([]interface{}, len(e))
		for j, v := range e {
			pair[j] = v
		}
		es[i] = pair
	}
	out["edges"] = es

	return out
}
