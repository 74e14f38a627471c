// SPDX-License-Identifier: MIT

// Package knapsack_test - shared helpers: a brute-force oracle and a seeded
// generator of small, valid instances.
package knapsack_test

import (
	"math/rand"
)

const (
	// oracleMaxN bounds brute-force instances.
	oracleMaxN = 12

	// seedBase keeps generated instances reproducible.
	seedBase = int64(20240617)
)

// instance is a generated problem with string payloads.
type instance struct {
	items    []string
	capacity int
	weights  []int
	values   []int
	groups   []int
}

// randomInstance returns a valid instance with n ≤ oracleMaxN items,
// weights in [1,15], values in [-5,40] and capacity in [0,40].
func randomInstance(r *rand.Rand) instance {
	n := r.Intn(oracleMaxN + 1)
	in := instance{
		items:    make([]string, n),
		capacity: r.Intn(41),
		weights:  make([]int, n),
		values:   make([]int, n),
		groups:   make([]int, n),
	}
	g := 0
	for i := 0; i < n; i++ {
		if i > 0 && r.Intn(3) == 0 {
			g++
		}
		in.items[i] = string(rune('a' + i))
		in.weights[i] = 1 + r.Intn(15)
		in.values[i] = r.Intn(46) - 5
		in.groups[i] = g
	}

	return in
}

// bruteForce enumerates every choice of "nothing or one item" per group.
func bruteForce(capacity int, weights, values, groups []int) int {
	var byGroup [][]int
	for i, g := range groups {
		for len(byGroup) <= g {
			byGroup = append(byGroup, nil)
		}
		byGroup[g] = append(byGroup[g], i)
	}

	best := 0
	var walk func(g, weight, value int)
	walk = func(g, weight, value int) {
		if g == len(byGroup) {
			if value > best {
				best = value
			}
			return
		}
		walk(g+1, weight, value) // take nothing from g
		for _, i := range byGroup[g] {
			if weight+weights[i] <= capacity {
				walk(g+1, weight+weights[i], value+values[i])
			}
		}
	}
	walk(0, 0, 0)

	return best
}

// sumOver adds xs at the given positions.
func sumOver(xs []int, idx []int) int {
	total := 0
	for _, i := range idx {
		total += xs[i]
	}

	return total
}
