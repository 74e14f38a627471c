// SPDX-License-Identifier: MIT

package knapsack

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// SolveBatch solves independent problems concurrently, at most
// Options.Concurrency at a time. Each problem is an ordinary Solve call
// that owns its own table; nothing is shared between them.
//
// One failing problem does not stop the others. The returned slice always
// has len(problems) entries; failed or skipped problems hold a zero Result.
// The error combines every per-problem failure (each wrapped with its
// index, inspect them with multierr.Errors) and the context error when ctx
// ended before every problem started.
//
// Complexity: sum of the individual solves, divided across workers.
func SolveBatch[T any](ctx context.Context, problems []Problem[T], opts ...Option) ([]Result[T], error) {
	cfg := gatherOptions(opts...)
	results := make([]Result[T], len(problems))
	errs := make([]error, len(problems))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Concurrency)

	var ctxErr error
	for i := range problems {
		if err := egCtx.Err(); err != nil {
			ctxErr = err
			break
		}
		i := i // per-iteration copy; go.mod targets go1.21 loop semantics
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				errs[i] = fmt.Errorf("problem %d: %w", i, err)
				return nil
			}
			res, err := SolveProblem(problems[i], opts...)
			if err != nil {
				errs[i] = fmt.Errorf("problem %d: %w", i, err)
				return nil
			}
			results[i] = res

			return nil
		})
	}
	_ = eg.Wait() // workers never return an error; failures live in errs

	return results, multierr.Combine(append(errs, ctxErr)...)
}
