package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RunBatch answers every query concurrently against the same graphs, with
// at most parallelism queries in flight (parallelism <= 0 means one per
// query). Outcomes are returned in query order. The first failing query
// cancels the rest and its error is returned.
//
// The graphs are only read, so sharing them across goroutines needs no
// locking; callers must not mutate them until RunBatch returns.
func RunBatch(ctx context.Context, graphs Graphs, queries []Query, parallelism int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(queries))
	if len(queries) == 0 {
		return outcomes, nil
	}
	if graphs.Reverse == nil && needsReverse(queries) {
		graphs.Reverse = graphs.forAlgorithm(Bidirectional).Unweighted.Reverse()
	}

	g, gCtx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, q := range queries {
		g.Go(func() error {
			out, err := Run(gCtx, graphs, q)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			outcomes[i] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

// needsReverse reports whether more than one bidirectional query would
// otherwise rebuild the same transpose.
func needsReverse(queries []Query) bool {
	n := 0
	for _, q := range queries {
		if q.Algorithm == Bidirectional {
			n++
		}
	}

	return n > 1
}
