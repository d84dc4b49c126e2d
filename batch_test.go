package predgo_test

import (
	"context"
	"testing"

	"github.com/hupe1980/predgo"
	"github.com/hupe1980/predgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchPredecessor(t *testing.T) {
	ctx := context.Background()

	idx, err := predgo.New([]uint64{3, 5, 9, 12, 20, 33, 40})
	require.NoError(t, err)

	t.Run("Mixed hits and misses", func(t *testing.T) {
		results, err := idx.BatchPredecessor(ctx, []uint64{34, 2, 5, 100, 0})
		require.NoError(t, err)
		require.Len(t, results, 5)

		assert.Equal(t, predgo.Result{Key: 33, Found: true}, results[0])
		assert.Equal(t, predgo.Result{Found: false}, results[1])
		assert.Equal(t, predgo.Result{Key: 5, Found: true}, results[2])
		assert.Equal(t, predgo.Result{Key: 40, Found: true}, results[3])
		assert.Equal(t, predgo.Result{Found: false}, results[4])
	})

	t.Run("Empty batch", func(t *testing.T) {
		results, err := idx.BatchPredecessor(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		limits := make([]uint64, 1000)
		for i := range limits {
			limits[i] = uint64(i)
		}

		_, err := idx.BatchPredecessor(canceled, limits)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestBatchPredecessorMatchesSequential(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(42)

	keys := rng.AscendingKeys(5000, 20)

	idx, err := predgo.New(keys, predgo.WithParallelism(8))
	require.NoError(t, err)

	limits := make([]uint64, 2000)
	for i := range limits {
		limits[i] = rng.Uint64() % (keys[len(keys)-1] * 2)
	}

	results, err := idx.BatchPredecessor(ctx, limits)
	require.NoError(t, err)
	require.Len(t, results, len(limits))

	for i, limit := range limits {
		key, err := idx.Predecessor(limit)
		if err != nil {
			assert.False(t, results[i].Found, "limit %d", limit)
			continue
		}

		require.True(t, results[i].Found, "limit %d", limit)
		assert.Equal(t, key, results[i].Key, "limit %d", limit)
	}
}
