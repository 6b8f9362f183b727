package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphseq/components"
	"github.com/katalvlaran/graphseq/diameter"
	"github.com/katalvlaran/graphseq/graphio"
	"github.com/katalvlaran/graphseq/sequence"
)

func newSequencesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sequences FILE",
		Short: "Extract one longest shortest-path per connected component",
		Long: `Extract representative longest shortest-paths.

Modes:
  global     - every component reports the path of the whole graph's
               diameter (default; repeats on disconnected graphs)
  component  - every component reports the path of its own diameter

Examples:
  graphseq sequences graph.yaml
  graphseq sequences graph.yaml --mode component --log-level debug`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.readGraph(args[0])
			if err != nil {
				return err
			}
			mode, err := sequence.ParseMode(a.cfg.Mode)
			if err != nil {
				return err
			}
			seqs, err := sequence.Extract(g, sequence.WithMode(mode), sequence.WithLogger(a.logger))
			if err != nil {
				return err
			}
			res, err := diameter.Compute(g)
			if err != nil {
				return err
			}
			comps, err := components.Connected(g)
			if err != nil {
				return err
			}
			a.logger.Info("sequences extracted",
				slog.String("mode", string(mode)), slog.Int("sequences", len(seqs)))

			return a.report(graphio.Report{
				Vertices:   g.VertexCount(),
				Edges:      g.EdgeCount(),
				Components: len(comps),
				Diameter:   res.Distance,
				Mode:       string(mode),
				Sequences:  graphio.SequencesOf(seqs),
			})
		},
	}
	cmd.Flags().String("mode", string(sequence.ModeGlobal), "extraction mode: global or component")

	return cmd
}
