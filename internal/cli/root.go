// Package cli implements the waypath command line.
package cli

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose bool
	output  string
	logger  *log.Logger
}

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree. Logs go to the command's error
// stream, results to its output stream.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	opts := &rootOptions{logger: log.New()}

	rootCmd := &cobra.Command{
		Use:          "waypath",
		Short:        "Shortest paths and waypoint route optimisation on weighted graphs",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger.SetOutput(cmd.ErrOrStderr())
			if opts.verbose {
				opts.logger.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	addOutputFlag(rootCmd.PersistentFlags(), &opts.output)

	rootCmd.AddCommand(
		newPathCommand(ctx, opts),
		newSolveCommand(ctx, opts),
		newGraphCommand(opts),
		newGenerateCommand(opts),
	)

	return rootCmd
}

// entry returns the logger entry for a subcommand.
func (o *rootOptions) entry(command string) *log.Entry {
	return o.logger.WithField("cmd", command)
}
