// SPDX-License-Identifier: MIT

// Package problem reads multiple-choice knapsack instances from YAML (or
// JSON) documents and turns them into knapsack.Problem values.
//
// 📄 Document shape:
//
//	capacity: 130
//	options:
//	  verbose: false
//	  runtime_budget: 50ms   # time.ParseDuration; "0s" disables the guard
//	  calibration: 0.00000022
//	  check_integrity: true
//	items:
//	  - {name: iron sword, weight: 30, value: 5, group: weapon}
//	  - {name: leather,    weight: 20, value: 3, group: armor}
//
// 🏷 Groups are free-form labels. Instance assigns contiguous ids in order of
// first appearance and stably reorders items so every group is one run, which
// is the layout knapsack.Solve requires. Item payloads keep their names.
//
// 🔢 Values must be integral. A float scalar such as 12.0 is accepted, 12.5 is
// rejected with knapsack.ErrNonIntegerValue. Strings are rejected as well.
//
// ✅ Validation runs through go-playground/validator struct tags; unknown keys
// are rejected by the decoder.
package problem
