// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mckp/knapsack"
)

func newEstimateCmd() *cobra.Command {
	var flags solverFlags
	cmd := &cobra.Command{
		Use:   "estimate FILE...",
		Short: "Print the runtime estimate of each problem without solving it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, args, &flags)
		},
	}
	flags.register(cmd)

	return cmd
}

func runEstimate(cmd *cobra.Command, args []string, flags *solverFlags) error {
	problems, err := flags.load(cmd, args)
	if err != nil {
		return err
	}

	reports := make([]estimateReport, len(problems))
	for i, p := range problems {
		gi, err := knapsack.IndexGroups(p.Groups)
		if err != nil {
			return fmt.Errorf("%s: %w", args[i], err)
		}
		cfg := knapsack.DefaultOptions()
		for _, opt := range p.Options {
			opt(&cfg)
		}
		est := knapsack.EstimateRuntime(len(p.Items), p.Capacity, gi.MaxGroupSize, cfg.Calibration)
		reports[i] = estimateReport{
			File:         args[i],
			Items:        est.N,
			Groups:       gi.Groups(),
			Capacity:     est.Capacity,
			MaxGroupSize: est.MaxGroupSize,
			Seconds:      est.Seconds,
			Budget:       cfg.RuntimeBudget.String(),
			Fits:         cfg.RuntimeBudget == 0 || est.Seconds <= cfg.RuntimeBudget.Seconds(),
		}
	}

	return write(cmd.OutOrStdout(), flags.format, reports, func() string {
		return estimateText(reports)
	})
}
