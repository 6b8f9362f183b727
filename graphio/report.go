package graphio

import (
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphseq/diameter"
	"github.com/katalvlaran/graphseq/sequence"
)

// ErrUnknownFormat is returned for an output format other than yaml or json.
var ErrUnknownFormat = errors.New("graphio: unknown format")

// Format names a report encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat maps a textual name onto a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Report is the machine-readable result of one CLI analysis.
type Report struct {
	Vertices   int        `yaml:"vertices" json:"vertices"`
	Edges      int        `yaml:"edges" json:"edges"`
	Components int        `yaml:"components" json:"components"`
	Diameter   int        `yaml:"diameter" json:"diameter"`
	Pairs      [][]string `yaml:"pairs,omitempty" json:"pairs,omitempty"`
	Mode       string     `yaml:"mode,omitempty" json:"mode,omitempty"`
	Sequences  [][]string `yaml:"sequences,omitempty" json:"sequences,omitempty"`
}

// PairsOf flattens a PairSet into sorted [A, B] lists.
func PairsOf(s diameter.PairSet) [][]string {
	sorted := s.Sorted()
	out := make([][]string, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, []string{p.A, p.B})
	}

	return out
}

// SequencesOf converts sequences into plain string lists.
func SequencesOf(seqs []sequence.Sequence) [][]string {
	out := make([][]string, 0, len(seqs))
	for _, s := range seqs {
		out = append(out, []string(s))
	}

	return out
}

// WriteReport encodes r to w in format f.
func WriteReport(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("graphio: yaml report: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("graphio: json report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
