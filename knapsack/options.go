// SPDX-License-Identifier: MIT

// Package knapsack: configuration of the solvers.
// This file defines:
//   - documented defaults (single source of truth),
//   - Options (resolved configuration) and DefaultOptions,
//   - Option setters (WithX) that panic only on nonsensical values.
package knapsack

import (
	"math"
	"runtime"
	"time"
)

// Defaults.
const (
	// DefaultRuntimeBudget is the estimated fill time above which a request is
	// rejected. Zero disables the guard.
	DefaultRuntimeBudget = 5 * time.Millisecond

	// DefaultCalibration is the measured cost of one table cell, in seconds,
	// on the reference machine the heuristic was tuned on. It is approximate
	// and environment dependent; override it with WithCalibration.
	DefaultCalibration = 0.00000022
)

const (
	panicBudgetInvalid      = "knapsack: WithRuntimeBudget: budget must be non-negative"
	panicCalibrationInvalid = "knapsack: WithCalibration: calibration must be finite and positive"
	panicConcurrencyInvalid = "knapsack: WithConcurrency: limit must be positive"
	panicNilClock           = "knapsack: WithClock: clock must not be nil"
)

// Options is the resolved configuration of one solver call.
//
// Fields:
//   - Verbose        - emit informational messages to Logger.
//   - Logger         - sink for informational messages; NopLogger when nil.
//   - RuntimeBudget  - guard threshold; 0 means unlimited.
//   - Calibration    - seconds per table cell used by EstimateRuntime.
//   - CheckIntegrity - re-check group distinctness of the selection.
//     Verbose implies it.
//   - Now            - wall clock used only for logged durations.
//   - Concurrency    - SolveBatch worker limit.
type Options struct {
	Verbose        bool
	Logger         Logger
	RuntimeBudget  time.Duration
	Calibration    float64
	CheckIntegrity bool
	Now            func() time.Time
	Concurrency    int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is passed.
//
// Defaults:
//   - Verbose:        false
//   - Logger:         NopLogger()
//   - RuntimeBudget:  DefaultRuntimeBudget (5ms)
//   - Calibration:    DefaultCalibration
//   - CheckIntegrity: false
//   - Now:            time.Now
//   - Concurrency:    runtime.GOMAXPROCS(0)
func DefaultOptions() Options {
	return Options{
		Logger:        NopLogger(),
		RuntimeBudget: DefaultRuntimeBudget,
		Calibration:   DefaultCalibration,
		Now:           time.Now,
		Concurrency:   runtime.GOMAXPROCS(0),
	}
}

// gatherOptions applies opts over DefaultOptions and restores the invariants
// a setter may have broken (nil logger).
func gatherOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = NopLogger()
	}

	return cfg
}

// logging reports whether informational messages should be emitted.
func (o Options) logging() bool { return o.Verbose }

// integrity reports whether the selection must be re-checked.
func (o Options) integrity() bool { return o.CheckIntegrity || o.Verbose }

// WithVerbose toggles informational logging (estimates, included items,
// completion summary). Logging never changes results.
func WithVerbose(on bool) Option {
	return func(o *Options) { o.Verbose = on }
}

// WithLogger sets the logging sink. A *zap.SugaredLogger satisfies Logger.
// Messages are only emitted when Verbose is enabled.
func WithLogger(l Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRuntimeBudget sets the guard threshold. Zero disables the guard.
// Panics when budget is negative.
func WithRuntimeBudget(budget time.Duration) Option {
	if budget < 0 {
		panic(panicBudgetInvalid)
	}

	return func(o *Options) { o.RuntimeBudget = budget }
}

// WithCalibration sets the seconds-per-cell constant of the cost model.
// Panics when c is not finite or not positive.
func WithCalibration(c float64) Option {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		panic(panicCalibrationInvalid)
	}

	return func(o *Options) { o.Calibration = c }
}

// WithIntegrityCheck enables the post-backtrack group distinctness check.
func WithIntegrityCheck() Option {
	return func(o *Options) { o.CheckIntegrity = true }
}

// WithClock replaces the wall clock used for logged durations.
// Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic(panicNilClock)
	}

	return func(o *Options) { o.Now = now }
}

// WithConcurrency bounds the number of problems SolveBatch runs at once.
// Panics when limit < 1.
func WithConcurrency(limit int) Option {
	if limit < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.Concurrency = limit }
}
