package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/config"
	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/metrics"
	"github.com/katalvlaran/waypath/route"
)

type solveOptions struct {
	configPath  string
	graphPath   string
	seed        int64
	generations int
	workers     int
	metricsPath string
}

func newSolveCommand(ctx context.Context, root *rootOptions) *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Order the waypoints of a problem file and print the expanded route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(ctx, cmd, root, &opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to the problem YAML file")
	addGraphFlag(cmd.Flags(), &opts.graphPath)
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "override optimizer.seed")
	cmd.Flags().IntVar(&opts.generations, "generations", 0, "override optimizer.generations")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "override optimizer.workers")
	cmd.Flags().StringVar(&opts.metricsPath, "metrics", "", "write prometheus metrics in text format to this file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runSolve(ctx context.Context, cmd *cobra.Command, root *rootOptions, opts *solveOptions) error {
	file, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err = file.Log.Apply(root.logger); err != nil {
		return err
	}
	if root.verbose {
		root.logger.SetLevel(log.DebugLevel)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		file.Optimizer.Seed = opts.seed
	}
	if flags.Changed("generations") {
		file.Optimizer.Generations = opts.generations
	}
	if flags.Changed("workers") {
		file.Optimizer.Workers = opts.workers
	}
	if err = file.Validate(); err != nil {
		return err
	}

	logger := root.entry("solve")
	g, err := loadProblemGraph(file, opts)
	if err != nil {
		return err
	}
	logger.WithFields(log.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	}).Debug("graph loaded")

	collector := metrics.New()
	opt, err := route.New(g, file.Problem(), file.Optimizer,
		route.WithLogger(logger),
		route.WithMetrics(collector),
	)
	if err != nil {
		return err
	}

	sol, runErr := opt.SolveContext(ctx)
	if err = render(cmd.OutOrStdout(), root.output, sol); err != nil {
		return err
	}
	if opts.metricsPath != "" {
		if err = writeMetrics(opts.metricsPath, collector); err != nil {
			return err
		}
	}

	return errors.Join(runErr, sol.Err)
}

// loadProblemGraph honours a --graph override given relative to the
// working directory rather than the problem file.
func loadProblemGraph(file *config.File, opts *solveOptions) (*core.Graph, error) {
	if opts.graphPath != "" {
		return readGraph(opts.graphPath)
	}
	return file.LoadGraph()
}

func writeMetrics(path string, c *metrics.Collector) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("metrics file: %w", err)
	}
	if err = c.WriteText(fh); err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}
