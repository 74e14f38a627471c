// SPDX-License-Identifier: MIT

package knapsack

// SolveZeroOne solves the plain 0/1 knapsack: every item may be taken at
// most once and there are no groups. It shares validation, the runtime
// guard (estimated as a single group spanning every item), logging and the
// Result shape with Solve.
//
// Errors: ErrNegativeCapacity, ErrLengthMismatch, ErrNegativeWeight,
// *BudgetError, ErrNegativeRemainingCapacity.
//
// Complexity: O(n·capacity) time and memory.
func SolveZeroOne[T any](items []T, capacity int, weights, values []int, opts ...Option) (Result[T], error) {
	cfg := gatherOptions(opts...)
	start := cfg.Now()

	if err := validateShape(len(items), capacity, weights, values); err != nil {
		return Result[T]{}, err
	}

	n := len(values)
	if _, err := guard(n, capacity, n, cfg); err != nil {
		return Result[T]{}, err
	}

	k, err := newTable(n, capacity)
	if err != nil {
		return Result[T]{}, err
	}
	fillZeroOne(k, weights, values)

	best := k.at(n, capacity)
	if cfg.logging() {
		cfg.Logger.Infow("knapsack value found", "value", best)
	}

	picked, err := backtrackZeroOne(k, weights, values, cfg)
	if err != nil {
		return Result[T]{}, err
	}

	if cfg.logging() {
		cfg.Logger.Infow("knapsack completed",
			"n", n,
			"capacity", capacity,
			"value", best,
			"selected", len(picked),
			"duration", cfg.Now().Sub(start),
		)
	}

	return newResult(items, best, picked), nil
}
