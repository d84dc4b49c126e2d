package predgo

import (
	"errors"
	"time"

	"github.com/hupe1980/predgo/index"
	"github.com/hupe1980/predgo/index/ytrie"
	"github.com/hupe1980/predgo/keyset"
)

// Compile-time check to ensure Index satisfies the index contract.
var _ index.Index = (*Index)(nil)

// Index is a static predecessor index over a set of distinct uint64 keys.
// It is immutable after New and safe for concurrent queries.
type Index struct {
	trie    *ytrie.YTrie
	members *keyset.Set // nil when the membership set is disabled
	opts    Options
}

// New builds an index from keys. The slice must be non-empty, strictly
// ascending, and contain only keys >= 1; it is copied and never mutated.
func New(keys []uint64, optFns ...func(o *Options)) (*Index, error) {
	opts := applyOptions(optFns)

	start := time.Now()

	trie, err := ytrie.New(keys)
	if err != nil {
		opts.Logger.LogBuild(len(keys), 0, time.Since(start), err)
		opts.MetricsCollector.RecordBuild(len(keys), time.Since(start), err)
		return nil, err
	}

	idx := &Index{
		trie: trie,
		opts: opts,
	}

	if opts.MembershipSet {
		idx.members = keyset.FromSorted(trie.Keys())
	}

	opts.Logger.LogBuild(trie.Len(), trie.Depth(), time.Since(start), nil)
	opts.MetricsCollector.RecordBuild(trie.Len(), time.Since(start), nil)

	return idx, nil
}

// Predecessor returns the largest indexed key <= limit.
// ErrNoPredecessor is returned when limit is smaller than every key.
func (idx *Index) Predecessor(limit uint64) (uint64, error) {
	start := time.Now()

	// Exact hits skip the trie walk entirely.
	if idx.members != nil && idx.members.Contains(limit) {
		idx.opts.Logger.LogPredecessor(limit, limit, nil)
		idx.opts.MetricsCollector.RecordPredecessor(time.Since(start), true, nil)
		return limit, nil
	}

	key, err := idx.trie.Predecessor(limit)

	idx.opts.Logger.LogPredecessor(limit, key, err)
	if errors.Is(err, index.ErrNoPredecessor) {
		idx.opts.MetricsCollector.RecordPredecessor(time.Since(start), false, nil)
	} else {
		idx.opts.MetricsCollector.RecordPredecessor(time.Since(start), err == nil, err)
	}

	return key, err
}

// Contains reports whether key is in the indexed set.
func (idx *Index) Contains(key uint64) bool {
	if idx.members != nil {
		return idx.members.Contains(key)
	}

	p, err := idx.trie.Predecessor(key)
	return err == nil && p == key
}

// Len returns the number of indexed keys.
func (idx *Index) Len() int {
	return idx.trie.Len()
}

// Depth returns the bit length of the maximum key minus one, the trie depth.
func (idx *Index) Depth() int {
	return idx.trie.Depth()
}

// Min returns the smallest indexed key.
func (idx *Index) Min() uint64 {
	return idx.trie.Min()
}

// Max returns the largest indexed key.
func (idx *Index) Max() uint64 {
	return idx.trie.Max()
}

// Keys returns the indexed keys in ascending order.
// The returned slice is shared and must not be modified.
func (idx *Index) Keys() []uint64 {
	return idx.trie.Keys()
}

// Stats returns structural counters for the underlying trie.
func (idx *Index) Stats() ytrie.Stats {
	return idx.trie.Stats()
}
