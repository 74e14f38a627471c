// SPDX-License-Identifier: MIT

package knapsack

import (
	"math"
	"time"
)

// Estimate is the predicted fill time of one table and the shape it was
// computed from.
type Estimate struct {
	N            int
	Capacity     int
	MaxGroupSize int
	Seconds      float64
}

// Duration converts Seconds to a time.Duration, saturating at the maximum.
func (e Estimate) Duration() time.Duration {
	ns := e.Seconds * float64(time.Second)
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(ns)
}

// EstimateRuntime predicts the fill time of an (n+1)×(capacity+1) table.
//
//	seconds = n · capacity · √maxGroupSize · calibration
//
// When maxGroupSize == n there is one group spanning every item: the
// previous-group lookback never runs, each cell is O(1), and the √ factor
// is dropped.
//
// The result is a heuristic safety valve, not a correctness bound.
//
// Complexity: O(1).
func EstimateRuntime(n, capacity, maxGroupSize int, calibration float64) Estimate {
	cells := float64(n) * float64(capacity)
	secs := cells * math.Sqrt(float64(maxGroupSize)) * calibration
	if maxGroupSize == n {
		secs = cells * calibration
	}

	return Estimate{N: n, Capacity: capacity, MaxGroupSize: maxGroupSize, Seconds: secs}
}

// guard estimates the cost of the request, logs it when verbose, then
// rejects it when the estimate is above the budget. The log line is written
// first so that rejected calls stay observable.
func guard(n, capacity, maxGroupSize int, cfg Options) (Estimate, error) {
	est := EstimateRuntime(n, capacity, maxGroupSize, cfg.Calibration)
	if cfg.logging() {
		cfg.Logger.Infow("estimated knapsack time",
			"estSeconds", est.Seconds,
			"n", n,
			"capacity", capacity,
			"maxGroupSize", maxGroupSize,
			"sqrtMaxGroupSize", math.Sqrt(float64(maxGroupSize)),
		)
	}
	if cfg.RuntimeBudget > 0 && est.Seconds > cfg.RuntimeBudget.Seconds() {
		return est, &BudgetError{Estimate: est, Budget: cfg.RuntimeBudget}
	}

	return est, nil
}
