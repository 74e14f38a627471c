// SPDX-License-Identifier: MIT

// Package knapsack - entry points.
//
// This file wires the pipeline stages in order:
//
//	validate → IndexGroups → guard → fill → backtrack → (integrity check)
//
// No stage feeds back into an earlier one and no partial Result is ever
// returned on failure.
package knapsack

import (
	"fmt"
	"math"
)

// Solve maximizes the total value of a selection holding at most one item
// per group whose total weight does not exceed capacity.
//
// Inputs:
//   - items:    payloads returned verbatim for the chosen positions.
//   - capacity: maximum total weight, ≥ 0.
//   - weights:  per-item weight, ≥ 0.
//   - values:   per-item exact integer value.
//   - groups:   per-item group id, sorted ascending, starting at 0, +1 per new group.
//
// Validation order (first failure wins):
//  1. capacity ≥ 0                 (ErrNegativeCapacity)
//  2. equal slice lengths          (ErrLengthMismatch)
//  3. weights ≥ 0                  (ErrNegativeWeight)
//  4. group sequence               (ErrInvalidGroupSequence)
//  5. runtime estimate ≤ budget    (*BudgetError / ErrRuntimeBudgetExceeded)
//
// No table is allocated before every check passed.
//
// Ties: the walk from the last item takes the highest-index item whose row
// strictly raised the cell. Inside a group a later item only raises a cell
// when strictly better, so among equal alternatives the earliest wins.
//
// Complexity: O(n·capacity·avgGroupSize) time, O(n·capacity) memory.
func Solve[T any](items []T, capacity int, weights, values, groups []int, opts ...Option) (Result[T], error) {
	cfg := gatherOptions(opts...)
	start := cfg.Now()

	// Stage 1: shape.
	if err := validateShape(len(items), capacity, weights, values); err != nil {
		return Result[T]{}, err
	}
	if len(groups) != len(items) {
		return Result[T]{}, fmt.Errorf("%w: items %d, groups %d", ErrLengthMismatch, len(items), len(groups))
	}

	// Stage 2: group index.
	gi, err := IndexGroups(groups)
	if err != nil {
		return Result[T]{}, err
	}

	// Stage 3: guard.
	n := len(values)
	if _, err = guard(n, capacity, gi.MaxGroupSize, cfg); err != nil {
		return Result[T]{}, err
	}

	// Stage 4: fill.
	k, err := newTable(n, capacity)
	if err != nil {
		return Result[T]{}, err
	}
	fillGroups(k, weights, values, groups, gi)

	best := k.at(n, capacity)
	if cfg.logging() {
		cfg.Logger.Infow("knapsack value found",
			"value", best,
			"elapsed", cfg.Now().Sub(start),
		)
	}

	// Stage 5: backtrack.
	picked, err := backtrackGroups(k, weights, values, groups, cfg)
	if err != nil {
		return Result[T]{}, err
	}
	if cfg.integrity() {
		if err = checkDistinctGroups(picked, groups); err != nil {
			return Result[T]{}, err
		}
	}

	if cfg.logging() {
		cfg.Logger.Infow("multiple choice knapsack completed",
			"n", n,
			"capacity", capacity,
			"value", best,
			"groups", gi.Groups(),
			"selected", len(picked),
			"duration", cfg.Now().Sub(start),
		)
	}

	return newResult(items, best, picked), nil
}

// SolveProblem is Solve over a Problem value. p.Options follow opts.
func SolveProblem[T any](p Problem[T], opts ...Option) (Result[T], error) {
	if len(p.Options) > 0 {
		opts = append(opts[:len(opts):len(opts)], p.Options...)
	}

	return Solve(p.Items, p.Capacity, p.Weights, p.Values, p.Groups, opts...)
}

// newResult materializes the payloads of the picked positions.
func newResult[T any](items []T, value int, picked []int) Result[T] {
	res := Result[T]{
		Value:   value,
		Items:   make([]T, len(picked)),
		Indices: picked,
	}
	if res.Indices == nil {
		res.Indices = []int{}
	}
	for i, idx := range picked {
		res.Items[i] = items[idx]
	}

	return res
}

// validateShape checks capacity, lengths of weights and values against the
// item count n, and weight signs.
//
// Complexity: O(n).
func validateShape(n, capacity int, weights, values []int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeCapacity, capacity)
	}
	if len(weights) != n || len(values) != n {
		return fmt.Errorf("%w: items %d, weights %d, values %d",
			ErrLengthMismatch, n, len(weights), len(values))
	}
	for i, w := range weights {
		if w < 0 {
			return fmt.Errorf("%w: weight %d at index %d", ErrNegativeWeight, w, i)
		}
	}

	return nil
}

// IntegerValue converts f to an int when it is an exact integer inside the
// int range, and fails with ErrNonIntegerValue otherwise. Boundaries that
// accept untyped numbers (JSON, YAML, bindings) use it before calling Solve.
func IntegerValue(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %v", ErrNonIntegerValue, f)
	}
	// float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive.
	if f < math.MinInt || f >= math.MaxInt {
		return 0, fmt.Errorf("%w: %v out of int range", ErrNonIntegerValue, f)
	}

	return int(f), nil
}

// IntegerValues applies IntegerValue to every element.
func IntegerValues(fs []float64) ([]int, error) {
	out := make([]int, len(fs))
	for i, f := range fs {
		v, err := IntegerValue(f)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}
