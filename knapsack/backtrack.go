// SPDX-License-Identifier: MIT

package knapsack

import "fmt"

// noGroup marks "nothing taken yet" for the group walk.
const noGroup = -1

// backtrackGroups walks the filled table from (n, capacity) down to row 1
// and returns the 0-indexed positions of the chosen items in discovery
// order (descending position).
//
// Walk, with res = K[n][capacity] and w = capacity:
//   - res == K[i-1][w]: row i did not raise the cell; move on.
//   - group(i) == last taken group: the group is already decided; move on
//     without touching res or w. This carries the walk across the rest of
//     the group whose item was just taken.
//   - otherwise item i is taken: res -= v_i, w -= w_i.
//
// The walk stops at row 0 or when res reaches 0.
//
// Errors: ErrNegativeRemainingCapacity if w ever drops below zero; with a
// table built by fillGroups that is unreachable.
//
// Complexity: O(n) time, O(selected) space.
func backtrackGroups(k *table, weights, values, groups []int, cfg Options) ([]int, error) {
	var (
		n         = k.rows - 1
		w         = k.cols - 1
		res       = k.at(n, w)
		lastTaken = noGroup
		picked    []int
		i         int
	)
	for i = n; i > 0 && res > 0; i-- {
		if w < 0 {
			return nil, fmt.Errorf("%w: res %d i %d w %d", ErrNegativeRemainingCapacity, res, i, w)
		}
		if res == k.at(i-1, w) {
			continue
		}
		if groups[i-1] == lastTaken {
			continue
		}

		picked = append(picked, i-1)
		lastTaken = groups[i-1]
		if cfg.logging() {
			cfg.Logger.Infow("item included",
				"index", i-1,
				"value", values[i-1],
				"weight", weights[i-1],
				"res", res,
			)
		}
		res -= values[i-1]
		w -= weights[i-1]
	}

	return picked, nil
}

// backtrackZeroOne is the classic 0/1 reconstruction: every row that raised
// the cell contributed its item.
//
// Complexity: O(n) time, O(selected) space.
func backtrackZeroOne(k *table, weights, values []int, cfg Options) ([]int, error) {
	var (
		n      = k.rows - 1
		w      = k.cols - 1
		res    = k.at(n, w)
		picked []int
		i      int
	)
	for i = n; i > 0 && res > 0; i-- {
		if w < 0 {
			return nil, fmt.Errorf("%w: res %d i %d w %d", ErrNegativeRemainingCapacity, res, i, w)
		}
		if res == k.at(i-1, w) {
			continue
		}

		picked = append(picked, i-1)
		if cfg.logging() {
			cfg.Logger.Infow("item included",
				"index", i-1,
				"value", values[i-1],
				"weight", weights[i-1],
				"res", res,
			)
		}
		res -= values[i-1]
		w -= weights[i-1]
	}

	return picked, nil
}

// checkDistinctGroups verifies that no two picked positions share a group.
//
// Complexity: O(selected) time and space.
func checkDistinctGroups(picked, groups []int) error {
	seen := make(map[int]int, len(picked))
	var (
		idx, first int
		ok         bool
	)
	for _, idx = range picked {
		if first, ok = seen[groups[idx]]; ok {
			return fmt.Errorf("%w: items %d and %d are both in group %d",
				ErrSelectionIntegrityViolation, first, idx, groups[idx])
		}
		seen[groups[idx]] = idx
	}

	return nil
}
