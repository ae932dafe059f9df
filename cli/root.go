package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/brickforge/engine"
	"github.com/spaghettifunk/brickforge/engine/core"
)

type rootOptions struct {
	logLevel string
	workers  int
}

// NewRootCommand builds the brickforge command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "brickforge",
		Short:         "Generate interlocking toy-brick meshes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := core.ParseLogLevel(opts.logLevel)
			if err != nil {
				return err
			}
			core.SetLogLevel(level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().IntVar(&opts.workers, "workers", 0, "worker count for batch generation (0 = one per CPU)")

	cmd.AddCommand(
		newGenerateCommand(opts),
		newWatchCommand(opts),
		newBatchCommand(opts),
		newInfoCommand(opts),
	)
	return cmd
}

func (o *rootOptions) engine() (*engine.Engine, error) {
	level, err := core.ParseLogLevel(o.logLevel)
	if err != nil {
		return nil, err
	}
	cfg := engine.DefaultApplicationConfig()
	cfg.LogLevel = level
	if o.workers > 0 {
		cfg.Workers = o.workers
	}
	return engine.New(cfg)
}

// Execute runs the command line with the given arguments.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
