package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/builder"
	"github.com/katalvlaran/waypath/core"
)

// Graph kinds accepted by generate.
var generateKinds = []string{"path", "cycle", "star", "complete", "grid", "random"}

type generateOptions struct {
	n          int
	rows, cols int
	p          float64
	seed       int64
	minWeight  int
	maxWeight  int
	prefix     string
}

func newGenerateCommand(root *rootOptions) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:       "generate KIND",
		Short:     "Generate a synthetic graph JSON file (path, cycle, star, complete, grid, random)",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: generateKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, err := opts.constructor(args[0])
			if err != nil {
				return err
			}
			bopts := []builder.Option{
				builder.WithSeed(opts.seed),
				builder.WithWeightRange(opts.minWeight, opts.maxWeight),
			}
			if opts.prefix != "" {
				bopts = append(bopts, builder.WithPrefix(opts.prefix))
			}

			g, err := builder.Build(bopts, ctor)
			if err != nil {
				return err
			}
			root.entry("generate").WithFields(log.Fields{
				"kind":     args[0],
				"vertices": g.VertexCount(),
				"edges":    g.EdgeCount(),
			}).Debug("graph generated")

			return core.WriteJSON(cmd.OutOrStdout(), g)
		},
	}
	fs := cmd.Flags()
	fs.IntVarP(&opts.n, "vertices", "n", 10, "vertex count for path, cycle, star, complete and random")
	fs.IntVar(&opts.rows, "rows", 5, "grid rows")
	fs.IntVar(&opts.cols, "cols", 5, "grid columns")
	fs.Float64VarP(&opts.p, "probability", "p", 0.2, "edge probability for random")
	fs.Int64Var(&opts.seed, "seed", 0, "generator seed (0 selects the default)")
	fs.IntVar(&opts.minWeight, "min-weight", 1, "smallest edge weight")
	fs.IntVar(&opts.maxWeight, "max-weight", 1, "largest edge weight")
	fs.StringVar(&opts.prefix, "prefix", "", "vertex ID prefix (grid always uses r,c)")

	return cmd
}

func (o generateOptions) constructor(kind string) (builder.Constructor, error) {
	switch kind {
	case "path":
		return builder.Path(o.n), nil
	case "cycle":
		return builder.Cycle(o.n), nil
	case "star":
		return builder.Star(o.n), nil
	case "complete":
		return builder.Complete(o.n), nil
	case "grid":
		return builder.Grid(o.rows, o.cols), nil
	case "random":
		return builder.RandomSparse(o.n, o.p), nil
	}

	return nil, fmt.Errorf("unknown graph kind %q", kind)
}
