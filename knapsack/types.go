// SPDX-License-Identifier: MIT

package knapsack

// Problem bundles the inputs of one solve. Items, Weights, Values and Groups
// are parallel slices; Groups must be sorted and contiguous (see IndexGroups).
// Groups is ignored by SolveZeroOne.
type Problem[T any] struct {
	Items    []T
	Capacity int
	Weights  []int
	Values   []int
	Groups   []int

	// Options are applied after the options passed to SolveProblem or
	// SolveBatch, so a problem can override call-wide settings.
	Options []Option
}

// Result holds the optimum and one selection reaching it.
type Result[T any] struct {
	// Value is K[n][capacity], the best achievable total value.
	Value int

	// Items are the chosen payloads in discovery order (reverse input order).
	// Payloads are returned verbatim and never inspected.
	Items []T

	// Indices are the positions of Items in the input, same order.
	Indices []int
}

// Weight returns the total weight of the selection under weights.
func (r Result[T]) Weight(weights []int) int {
	total := 0
	for _, i := range r.Indices {
		total += weights[i]
	}

	return total
}
