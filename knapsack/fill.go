// SPDX-License-Identifier: MIT

package knapsack

// fillGroups populates K with the group-aware recurrence.
//
// For item i (1-indexed) of group g and capacity c:
//
//	w_i > c : K[i][c] = K[i-1][c]
//	else    : K[i][c] = max(subMax + v_i, K[i-1][c])
//
// subMax is the largest K[j][c-w_i] over the rows j of group g-1, or 0 for
// group 0. Looking back into the previous group only, never into g itself,
// is what keeps the selection to one item per group: K[i-1][c] already
// carries "skip i, maybe keep an earlier item of g".
//
// Preconditions: inputs validated, gi built from the same groups.
//
// Complexity: O(n·capacity·avgGroupSize) time, no allocations.
func fillGroups(k *table, weights, values, groups []int, gi GroupIndex) {
	var (
		i, c, j  int
		w, v     int
		sub      int   // running max over the previous group's rows
		cur, up  []int // K[i], K[i-1]
		prev     Span  // previous group span, 0-indexed items
		hasPrev  bool
		capacity = k.cols - 1
	)
	for i = 1; i < k.rows; i++ {
		w, v = weights[i-1], values[i-1]
		cur, up = k.row(i), k.row(i-1)
		hasPrev = groups[i-1] > 0
		if hasPrev {
			prev = gi.Spans[groups[i-1]-1]
		}
		for c = 1; c <= capacity; c++ {
			if w > c {
				cur[c] = up[c]
				continue
			}
			sub = 0
			if hasPrev {
				// rows prev.Start+1 .. prev.End hold the items of group g-1
				for j = prev.Start + 1; j <= prev.End; j++ {
					if x := k.at(j, c-w); x > sub {
						sub = x
					}
				}
			}
			cur[c] = max(sub+v, up[c])
		}
	}
}

// fillZeroOne populates K with the classic 0/1 recurrence:
//
//	K[i][c] = max(v_i + K[i-1][c-w_i], K[i-1][c])   when w_i ≤ c
//
// Complexity: O(n·capacity) time, no allocations.
func fillZeroOne(k *table, weights, values []int) {
	var (
		i, c     int
		w, v     int
		cur, up  []int
		capacity = k.cols - 1
	)
	for i = 1; i < k.rows; i++ {
		w, v = weights[i-1], values[i-1]
		cur, up = k.row(i), k.row(i-1)
		for c = 1; c <= capacity; c++ {
			if w > c {
				cur[c] = up[c]
				continue
			}
			cur[c] = max(v+up[c-w], up[c])
		}
	}
}
