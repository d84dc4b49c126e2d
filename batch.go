package predgo

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/predgo/index"
)

// Result is the outcome of a single query in a batch.
type Result struct {
	// Key is the predecessor, valid only when Found is true.
	Key uint64

	// Found is false when the limit had no predecessor.
	Found bool
}

// BatchPredecessor resolves many limits concurrently and returns one Result
// per limit, in input order. Workers are bounded by WithParallelism. A
// limit without a predecessor yields Found=false rather than an error; ctx
// cancellation and structural faults abort the batch.
func (idx *Index) BatchPredecessor(ctx context.Context, limits []uint64) ([]Result, error) {
	start := time.Now()

	results := make([]Result, len(limits))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(idx.opts.Parallelism)

	for i, limit := range limits {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			key, err := idx.Predecessor(limit)
			if err != nil {
				if errors.Is(err, index.ErrNoPredecessor) {
					return nil
				}
				return err
			}

			results[i] = Result{Key: key, Found: true}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		idx.opts.Logger.LogBatch(ctx, len(limits), 0, err)
		idx.opts.MetricsCollector.RecordBatch(len(limits), time.Since(start), err)
		return nil, err
	}

	found := 0
	for _, r := range results {
		if r.Found {
			found++
		}
	}

	idx.opts.Logger.LogBatch(ctx, len(limits), found, nil)
	idx.opts.MetricsCollector.RecordBatch(len(limits), time.Since(start), nil)

	return results, nil
}
