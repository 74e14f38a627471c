// SPDX-License-Identifier: MIT

// Command mckp solves multiple-choice knapsack problems described in YAML or
// JSON files.
//
//	mckp solve loadout.yaml
//	mckp solve --format json a.yaml b.yaml
//	mckp estimate --capacity 100000 big.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// verbose enables debug logging and the solver's progress messages.
	verbose bool

	// logger is built in PersistentPreRunE unless one was injected.
	logger *zap.Logger

	// version is stamped at build time with -ldflags "-X main.version=...".
	version = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "mckp:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mckp",
		Short: "Multiple-choice knapsack solver",
		Long: `mckp picks at most one item from every group so that the total weight
stays within capacity and the total value is maximal.

Problem files list a capacity, optional solver settings and the items with
their name, weight, integer value and group label.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log solver progress")

	root.AddCommand(newSolveCmd(), newEstimateCmd(), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the mckp version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mckp %s\n", version)
		},
	}
}

// sugar returns the process logger for the solver, never nil.
func sugar() *zap.SugaredLogger {
	if logger == nil {
		return zap.NewNop().Sugar()
	}

	return logger.Sugar()
}
