package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphseq/components"
	"github.com/katalvlaran/graphseq/diameter"
	"github.com/katalvlaran/graphseq/graphio"
)

func newDiameterCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "diameter FILE",
		Short: "Report the diameter and every pair that realizes it",
		Long: `Compute the largest shortest-path distance over all vertex pairs.

Pairs in different components are never compared, so on a disconnected
graph the result is the largest per-component diameter. Use "-" to read
the document from stdin.

Examples:
  graphseq diameter graph.yaml
  graphseq diameter - --format json < graph.json
  graphseq diameter big.yaml --workers 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.readGraph(args[0])
			if err != nil {
				return err
			}
			var res diameter.Result
			if workers > 0 {
				res, err = diameter.ComputeConcurrent(cmd.Context(), g, workers)
			} else {
				res, err = diameter.Compute(g)
			}
			if err != nil {
				return err
			}
			comps, err := components.Connected(g)
			if err != nil {
				return err
			}
			a.logger.Info("diameter computed",
				slog.Int("diameter", res.Distance), slog.Int("pairs", len(res.Pairs)))

			return a.report(graphio.Report{
				Vertices:   g.VertexCount(),
				Edges:      g.EdgeCount(),
				Components: len(comps),
				Diameter:   res.Distance,
				Pairs:      graphio.PairsOf(res.Pairs),
			})
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent BFS workers for the all-pairs stage (0 runs sequentially)")

	return cmd
}
