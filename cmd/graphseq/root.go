package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphseq/core"
	"github.com/katalvlaran/graphseq/graphio"
	"github.com/katalvlaran/graphseq/internal/config"
)

// app carries state shared by all subcommands once flags are resolved.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	format     string

	cfg    config.Config
	logger *slog.Logger
}

// newRootCmd builds the command tree writing to the given streams.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "graphseq",
		Short: "Graph diameter and longest shortest-path sequences",
		Long: `Analyze undirected unweighted graphs stored as edge-list documents.

Document format:
  vertices: [a, b, c, lone]   # optional, needed for isolated vertices
  edges:
    - [a, b]
    - [b, c]

Subcommands:
  diameter   - Diameter and every vertex pair that realizes it
  sequences  - One longest shortest-path per connected component
  generate   - Write a fixture graph (path, cycle, star, complete, isolated)

Examples:
  graphseq diameter graph.yaml
  graphseq sequences graph.yaml --mode component --format json
  graphseq generate path 5 | graphseq diameter -`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.resolve,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML or TOML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.format, "format", "", "report format: yaml or json")

	root.AddCommand(
		newDiameterCmd(a),
		newSequencesCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// resolve loads the config file, applies explicitly set flags on top and
// builds the logger.
func (a *app) resolve(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if f := flags.Lookup("mode"); f != nil && f.Changed {
		cfg.Mode = f.Value.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, _ := cfg.Level()
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: lvl}))
	a.logger.Debug("configuration resolved",
		slog.String("mode", cfg.Mode), slog.String("format", cfg.Format), slog.String("log_level", cfg.LogLevel))

	return nil
}

// readGraph decodes the document at path; "-" reads stdin.
func (a *app) readGraph(path string) (*core.Graph, error) {
	var r io.Reader = a.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	g, err := graphio.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Info("graph loaded",
		slog.String("source", path), slog.Int("vertices", g.VertexCount()), slog.Int("edges", g.EdgeCount()))

	return g, nil
}

// report writes r in the configured format.
func (a *app) report(r graphio.Report) error {
	return graphio.WriteReport(a.stdout, graphio.Format(a.cfg.Format), r)
}
