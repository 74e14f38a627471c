// SPDX-License-Identifier: MIT

// Package knapsack solves the multiple-choice knapsack problem (MCKP) with an
// exact, integer dynamic-programming table and a backtracking reconstruction.
//
// 🚀 What is MCKP?
//
//	Items are partitioned into mutually exclusive groups. Pick at most one
//	item per group so that the total weight stays within the capacity and
//	the total value is maximal. Typical uses:
//	  • loadout / upgrade planning (one option per slot)
//	  • budget allocation across exclusive alternatives
//	  • resource gathering plans with per-source choices
//
// ✨ Pipeline (strictly forward, one call owns everything it allocates):
//
//	IndexGroups  → validate group ids (start at 0, +1 steps) and build spans
//	Guard        → estimate fill time, reject infeasible requests early
//	fill         → K[i][c] over items 1..n and capacities 0..capacity
//	backtrack    → walk K from (n, capacity) back to a group-distinct selection
//
// ⚙️ Usage:
//
//	items := []string{"a", "b", "c"}
//	res, err := knapsack.Solve(items, 50,
//	    []int{10, 20, 30},    // weights
//	    []int{60, 100, 120},  // values
//	    []int{0, 1, 1},       // groups, sorted, contiguous
//	)
//	// res.Value == 180, res.Items == [c a]
//
// Recurrence (1-indexed items):
//
//	K[0][*] = K[*][0] = 0
//	w_i > c : K[i][c] = K[i-1][c]
//	else    : K[i][c] = max(subMax + v_i, K[i-1][c])
//	          subMax  = max K[j][c-w_i] over rows j of the previous group (0 for group 0)
//
// Performance:
//
//   - Time:   O(n·capacity·avgGroupSize) worst case
//   - Memory: O(n·capacity) ints for the table
//
// The runtime guard bounds predicted time, not memory; callers that must cap
// memory bound n and capacity themselves.
//
// Every Solve call is synchronous and owns its table; independent calls are
// safe to run in parallel (see SolveBatch).
package knapsack
