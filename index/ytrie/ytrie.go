// Package ytrie implements a static y-fast-trie predecessor index over
// uint64 keys.
//
// The key set is split into blocks of at most depth keys, where depth is the
// bit length of the maximum key. Each block is summarized by a
// representative carrying the block maximum, and a sparse binary trie is
// built over the representative values. A query binary-searches the trie
// over path prefix lengths and then falls back into at most two neighboring
// blocks, giving O(log depth) trie lookups plus O(depth) in-block work
// instead of a search over all n keys.
package ytrie

import (
	"math/bits"

	"github.com/hupe1980/predgo/index"
	"github.com/hupe1980/predgo/internal/arena"
	"github.com/hupe1980/predgo/internal/block"
)

// Compile-time check to ensure YTrie satisfies the index contract.
var _ index.Index = (*YTrie)(nil)

// YTrie is a static predecessor index. Build it with New; it is immutable
// afterwards and safe for concurrent queries.
type YTrie struct {
	depth  int      // floor(log2(max key)); trie paths have depth+1 bits
	keys   []uint64 // owned ascending copy of the input
	blocks *arena.Arena[block.Block]
	reps   *arena.Arena[representative]
	lookup map[pathKey]node
}

// New builds the index from keys. keys must be non-empty, strictly
// ascending, and all >= 1; violations return index.ErrEmptyKeys,
// index.ErrZeroKey, or *index.ErrKeyOrder.
func New(keys []uint64) (*YTrie, error) {
	if len(keys) == 0 {
		return nil, index.ErrEmptyKeys
	}
	if keys[0] == 0 {
		return nil, index.ErrZeroKey
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			return nil, &index.ErrKeyOrder{Index: i, Prev: keys[i-1], Key: keys[i]}
		}
	}

	t := &YTrie{
		depth: depth(keys[len(keys)-1]),
		keys:  append([]uint64(nil), keys...),
	}
	t.split()
	t.buildTrie()

	return t, nil
}

// depth returns floor(log2(max)). max >= 1 is checked by New.
func depth(max uint64) int {
	return bits.Len64(max) - 1
}

// Len returns the number of indexed keys.
func (t *YTrie) Len() int {
	return len(t.keys)
}

// Depth returns the structural parameter d: the bit length of the maximum
// key, which bounds block size and trie height.
func (t *YTrie) Depth() int {
	return t.depth
}

// Min returns the smallest indexed key.
func (t *YTrie) Min() uint64 {
	return t.keys[0]
}

// Max returns the largest indexed key.
func (t *YTrie) Max() uint64 {
	return t.keys[len(t.keys)-1]
}

// Keys returns the indexed keys in ascending order. The slice aliases index
// memory and must be treated as read-only.
func (t *YTrie) Keys() []uint64 {
	return t.keys
}
