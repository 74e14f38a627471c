// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mckp/knapsack"
	"github.com/katalvlaran/mckp/problem"
)

// errBadFlag reports a flag value the solver would reject.
var errBadFlag = errors.New("invalid flag")

// solverFlags are the overrides shared by solve and estimate.
type solverFlags struct {
	capacity    int
	budget      time.Duration
	calibration float64
	check       bool
	format      string
}

func (f *solverFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.capacity, "capacity", 0, "override the capacity of every problem")
	fs.DurationVar(&f.budget, "budget", knapsack.DefaultRuntimeBudget, "runtime budget, 0 disables the guard")
	fs.Float64Var(&f.calibration, "calibration", knapsack.DefaultCalibration, "seconds per table cell on this machine")
	fs.BoolVar(&f.check, "check", false, "re-check the selection for duplicate groups")
	fs.StringVarP(&f.format, "format", "o", formatText, "output format: text, json or yaml")
}

// options turns the flags the user set into solver options. Unset flags
// leave the problem file settings alone.
func (f *solverFlags) options(cmd *cobra.Command) ([]knapsack.Option, error) {
	fs := cmd.Flags()
	var opts []knapsack.Option
	if fs.Changed("budget") {
		if f.budget < 0 {
			return nil, fmt.Errorf("%w: --budget %s is negative", errBadFlag, f.budget)
		}
		opts = append(opts, knapsack.WithRuntimeBudget(f.budget))
	}
	if fs.Changed("calibration") {
		if math.IsNaN(f.calibration) || math.IsInf(f.calibration, 0) || f.calibration <= 0 {
			return nil, fmt.Errorf("%w: --calibration must be a positive number", errBadFlag)
		}
		opts = append(opts, knapsack.WithCalibration(f.calibration))
	}
	if f.check {
		opts = append(opts, knapsack.WithIntegrityCheck())
	}
	if verbose {
		opts = append(opts, knapsack.WithVerbose(true))
	}

	return opts, nil
}

// load reads every file into a problem carrying its own settings followed by
// the flag overrides.
func (f *solverFlags) load(cmd *cobra.Command, paths []string) ([]knapsack.Problem[problem.Item], error) {
	if err := checkFormat(f.format); err != nil {
		return nil, err
	}
	overrides, err := f.options(cmd)
	if err != nil {
		return nil, err
	}

	problems := make([]knapsack.Problem[problem.Item], len(paths))
	for i, path := range paths {
		file, err := problem.Load(path)
		if err != nil {
			return nil, err
		}
		opts, err := file.SolverOptions()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		p := file.Instance()
		if cmd.Flags().Changed("capacity") {
			p.Capacity = f.capacity
		}
		p.Options = append(opts, overrides...)
		problems[i] = p
	}

	return problems, nil
}

func newSolveCmd() *cobra.Command {
	var flags solverFlags
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve one or more problem files",
		Long: `Solves every file and prints the best value with the chosen items.
Several files are solved concurrently. If any file fails nothing is printed
and every failure is reported.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, &flags)
		},
	}
	flags.register(cmd)

	return cmd
}

func runSolve(cmd *cobra.Command, args []string, flags *solverFlags) error {
	problems, err := flags.load(cmd, args)
	if err != nil {
		return err
	}

	base := []knapsack.Option{knapsack.WithLogger(sugar())}
	var results []knapsack.Result[problem.Item]
	if len(problems) == 1 {
		res, err := knapsack.SolveProblem(problems[0], base...)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		results = append(results, res)
	} else {
		results, err = knapsack.SolveBatch(cmd.Context(), problems, base...)
		if err != nil {
			return err
		}
	}

	reports := make([]solveReport, len(results))
	for i, res := range results {
		reports[i] = newSolveReport(args[i], problems[i], res)
	}

	return write(cmd.OutOrStdout(), flags.format, reports, func() string {
		return solveText(reports)
	})
}
