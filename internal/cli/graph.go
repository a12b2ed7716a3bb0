package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/bfs"
	"github.com/katalvlaran/waypath/core"
)

type graphStats struct {
	Vertices   int `json:"vertices" yaml:"vertices"`
	Edges      int `json:"edges" yaml:"edges"`
	Components int `json:"components" yaml:"components"`
}

func newGraphCommand(root *rootOptions) *cobra.Command {
	var graphPath string
	var stats bool

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Normalise a graph JSON file, or print its statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := readGraph(graphPath)
			if err != nil {
				return err
			}
			if !stats {
				return core.WriteJSON(cmd.OutOrStdout(), g)
			}

			st, err := collectStats(g)
			if err != nil {
				return err
			}
			root.entry("graph").WithField("components", st.Components).Debug("stats collected")

			return render(cmd.OutOrStdout(), root.output, st)
		},
	}
	addGraphFlag(cmd.Flags(), &graphPath)
	cmd.Flags().BoolVar(&stats, "stats", false, "print vertex, edge and component counts instead of the graph")

	return cmd
}

// collectStats counts connected components with repeated BFS.
func collectStats(g *core.Graph) (graphStats, error) {
	st := graphStats{Vertices: g.VertexCount(), Edges: g.EdgeCount()}
	seen := make(map[string]bool, st.Vertices)
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		hops, err := bfs.Reachable(g, v)
		if err != nil {
			return st, fmt.Errorf("component of %q: %w", v, err)
		}
		for id := range hops {
			seen[id] = true
		}
		st.Components++
	}

	return st, nil
}
