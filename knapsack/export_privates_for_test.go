// SPDX-License-Identifier: MIT

package knapsack

// Test-only hooks into the unexported pipeline stages.

// FillForTest runs IndexGroups + fillGroups and returns K as rows.
func FillForTest(capacity int, weights, values, groups []int) ([][]int, error) {
	gi, err := IndexGroups(groups)
	if err != nil {
		return nil, err
	}
	k, err := newTable(len(values), capacity)
	if err != nil {
		return nil, err
	}
	fillGroups(k, weights, values, groups, gi)

	return tableRows(k), nil
}

// BacktrackForTest runs backtrackGroups over a hand-made table.
func BacktrackForTest(rows [][]int, weights, values, groups []int) ([]int, error) {
	k := &table{rows: len(rows), cols: len(rows[0])}
	for _, r := range rows {
		k.data = append(k.data, r...)
	}

	return backtrackGroups(k, weights, values, groups, DefaultOptions())
}

// CheckDistinctGroupsForTest exposes checkDistinctGroups.
func CheckDistinctGroupsForTest(picked, groups []int) error {
	return checkDistinctGroups(picked, groups)
}

func tableRows(k *table) [][]int {
	out := make([][]int, k.rows)
	for i := range out {
		out[i] = append([]int(nil), k.row(i)...)
	}

	return out
}
