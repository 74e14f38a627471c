// SPDX-License-Identifier: MIT

// Package mckp is the root of a small, exact multiple-choice knapsack toolkit:
// choose at most one item from every group so that the total weight stays
// within capacity and the total value is maximal.
//
// 🚀 What is inside?
//
//	knapsack/  — the solver: group indexing, runtime guard, DP table, backtrack,
//	             plus the plain 0/1 variant and concurrent batch solving
//	problem/   — YAML/JSON problem files, validation and label → group mapping
//	cmd/mckp/  — the command-line front end (solve, estimate, version)
//
// ✨ Guarantees:
//
//   - Exact integer arithmetic; no floating point inside the table
//   - Deterministic results for identical inputs
//   - Requests above the runtime budget are refused before any allocation
//   - Every failure is a typed error matched with errors.Is / errors.As
//
// Quick example:
//
//	weapon: iron sword (30, 5) | steel sword (70, 12)
//	armor:  leather (20, 3) | chain (50, 8) | plate (90, 14)
//	boots:  sandals (10, 1)
//
//	capacity 130 → steel sword + chain + sandals, value 21
//
//	go get github.com/katalvlaran/mckp/knapsack
package mckp
