package planner

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/evopath/core"
)

// PlanContext validates q and runs Find on its own goroutine, returning
// ctx.Err() if ctx ends before the search does.
func PlanContext(ctx context.Context, edges []core.EvolutionEdge, q Query) ([]Plan, error) {
	if err := Validate(q.Start, q.Goal); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan []Plan, 1)
	go func() {
		done <- Find(q.Start, q.Goal, edges, q.Mode, q.MaxPaths)
	}()

	select {
	case plans := <-done:
		return plans, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// PlanAll runs independent queries over the same edge snapshot with at most
// limit searches in flight (limit ≤ 0 means unbounded). Results are in query
// order. The first validation failure or context error cancels the batch.
func PlanAll(ctx context.Context, edges []core.EvolutionEdge, queries []Query, limit int) ([][]Plan, error) {
	for _, q := range queries {
		if err := Validate(q.Start, q.Goal); err != nil {
			return nil, err
		}
	}

	results := make([][]Plan, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			plans, err := PlanContext(gctx, edges, q)
			if err != nil {
				return err
			}
			results[i] = plans
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
