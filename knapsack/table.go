// SPDX-License-Identifier: MIT

package knapsack

import (
	"fmt"
	"math"
)

// table is the DP grid K with rows 0..n and columns 0..capacity, stored in
// one flat row-major slice. It is owned by a single call: written by fill,
// then read by backtrack, then dropped. Accessors are unchecked; callers
// stay inside [0,rows)×[0,cols).
type table struct {
	rows, cols int
	data       []int
}

// newTable allocates a zeroed (n+1)×(capacity+1) table, so row 0 and
// column 0 are already the base case.
//
// Complexity: O(n·capacity) time and memory.
func newTable(n, capacity int) (*table, error) {
	rows, cols := n+1, capacity+1
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %d×%d", ErrTableTooLarge, rows, cols)
	}

	return &table{rows: rows, cols: cols, data: make([]int, rows*cols)}, nil
}

// at returns K[i][c].
func (t *table) at(i, c int) int { return t.data[i*t.cols+c] }

// row returns K[i] as a slice aliasing the table storage.
func (t *table) row(i int) []int { return t.data[i*t.cols : (i+1)*t.cols] }
