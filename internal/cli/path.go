package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/dijkstra"
)

type pathResult struct {
	From     string   `json:"from" yaml:"from"`
	To       string   `json:"to" yaml:"to"`
	Path     []string `json:"path" yaml:"path"`
	Distance *float64 `json:"distance" yaml:"distance"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func newPathCommand(ctx context.Context, root *rootOptions) *cobra.Command {
	var graphPath string
	var maxDistance float64

	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Print the shortest path between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := root.entry("path")
			g, err := readGraph(graphPath)
			if err != nil {
				return err
			}
			logger.WithField("vertices", g.VertexCount()).Debug("graph loaded")

			var opts []dijkstra.Option
			if cmd.Flags().Changed("max-distance") {
				opts = append(opts, dijkstra.WithMaxDistance(maxDistance))
			}
			res, err := dijkstra.FindPath(g, args[0], args[1], opts...)
			if err != nil {
				return err
			}

			out := pathResult{From: args[0], To: args[1], Path: res.Path}
			if res.Found() {
				d := res.Distance
				out.Distance = &d
			} else {
				out.Error = "no route found"
				logger.WithField("from", args[0]).WithField("to", args[1]).Warn("no route found")
			}

			return render(cmd.OutOrStdout(), root.output, out)
		},
	}
	addGraphFlag(cmd.Flags(), &graphPath)
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "do not explore beyond this distance")

	return cmd
}
