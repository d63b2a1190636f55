// ABOUTME: Order-preserving parallel map over input lines on a bounded errgroup
// ABOUTME: Stops scheduling on the first error or when the context is cancelled

package batch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Func transforms one line. It receives the group context, which is
// cancelled once any other line fails.
type Func[T any] func(ctx context.Context, line string) (T, error)

// Map runs fn for every line with at most workers calls in flight and
// returns the results in input order. workers <= 0 means runtime.NumCPU().
// The first error, or the context error, is returned with the failing line
// index; results are discarded in that case.
func Map[T any](ctx context.Context, lines []string, workers int, fn Func[T]) ([]T, error) {
	if len(lines) == 0 {
		return nil, ctx.Err()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]T, len(lines))

	if workers == 1 || len(lines) == 1 {
		for i, line := range lines {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			res, err := fn(ctx, line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			results[i] = res
		}
		return results, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, line := range lines {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, err := fn(gCtx, line)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may stop before scheduling anything when ctx is already done.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Strings is Map for plain string transforms that cannot fail.
func Strings(ctx context.Context, lines []string, workers int, fn func(string) string) ([]string, error) {
	return Map(ctx, lines, workers, func(_ context.Context, line string) (string, error) {
		return fn(line), nil
	})
}
