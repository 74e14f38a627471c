// SPDX-License-Identifier: MIT
// Package knapsack: sentinel error set.
// Every message is prefixed with "knapsack: ". Algorithms return these
// sentinels (optionally wrapped with positional context via %w); tests and
// callers match them with errors.Is / errors.As.

package knapsack

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidGroupSequence is returned when group ids do not start at 0,
	// skip an id, or re-enter an earlier group. Caller input error.
	ErrInvalidGroupSequence = errors.New("knapsack: groups must start at 0 and increase by one per new group")

	// ErrNonIntegerValue is returned when a value is not an exact integer.
	ErrNonIntegerValue = errors.New("knapsack: values must be exact integers")

	// ErrRuntimeBudgetExceeded is returned when the estimated fill time is
	// above the configured budget. The concrete error is *BudgetError.
	ErrRuntimeBudgetExceeded = errors.New("knapsack: estimated runtime exceeds budget")

	// ErrNegativeRemainingCapacity signals a backtrack invariant breach.
	// It points at a defect in table construction, never at user input.
	ErrNegativeRemainingCapacity = errors.New("knapsack: remaining capacity went negative during backtrack")

	// ErrSelectionIntegrityViolation signals that the reconstructed selection
	// holds two items of one group.
	ErrSelectionIntegrityViolation = errors.New("knapsack: selection is not distinct by group")

	// ErrLengthMismatch indicates items, weights, values and groups differ in length.
	ErrLengthMismatch = errors.New("knapsack: items, weights, values and groups must have equal length")

	// ErrNegativeCapacity indicates capacity < 0.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrNegativeWeight indicates an item weight < 0.
	ErrNegativeWeight = errors.New("knapsack: weights must be non-negative")

	// ErrTableTooLarge indicates (n+1)·(capacity+1) does not fit in an int.
	// Only reachable with the runtime guard disabled.
	ErrTableTooLarge = errors.New("knapsack: table dimensions overflow")
)

// BudgetError reports a rejected request together with the estimate that
// triggered the rejection, so callers can decide to raise the budget or
// shrink the problem.
type BudgetError struct {
	Estimate Estimate
	Budget   time.Duration
}

// Error implements error.
func (e *BudgetError) Error() string {
	return fmt.Sprintf("%s: est %.3fs > budget %.3fs (n %d * capacity %d * sqrt(maxGroupSize %d))",
		ErrRuntimeBudgetExceeded, e.Estimate.Seconds, e.Budget.Seconds(),
		e.Estimate.N, e.Estimate.Capacity, e.Estimate.MaxGroupSize)
}

// Unwrap lets errors.Is match ErrRuntimeBudgetExceeded.
func (e *BudgetError) Unwrap() error { return ErrRuntimeBudgetExceeded }

// IsInputError reports whether err is a caller input error that the caller
// must fix before retrying.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidGroupSequence) ||
		errors.Is(err, ErrNonIntegerValue) ||
		errors.Is(err, ErrLengthMismatch) ||
		errors.Is(err, ErrNegativeCapacity) ||
		errors.Is(err, ErrNegativeWeight)
}

// IsBudgetError reports whether err was raised by the runtime guard.
func IsBudgetError(err error) bool {
	return errors.Is(err, ErrRuntimeBudgetExceeded)
}

// IsInvariantError reports whether err indicates an internal defect
// (table construction or backtrack), as opposed to bad input.
func IsInvariantError(err error) bool {
	return errors.Is(err, ErrNegativeRemainingCapacity) ||
		errors.Is(err, ErrSelectionIntegrityViolation)
}
