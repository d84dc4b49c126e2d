package ytrie

import (
	"github.com/hupe1980/predgo/internal/arena"
	"github.com/hupe1980/predgo/internal/block"
)

// representative stands in for one block. It carries the block maximum and
// links to its key-order neighbors, so a trie hit can fall back into the
// block on either side.
type representative struct {
	key   uint64       // maximum key of the block
	block arena.Handle // into the blocks arena
	prev  arena.Handle // into the reps arena, None for the first
	next  arena.Handle // into the reps arena, None for the last
}

// split walks the sorted keys in windows of depth, building one block and
// one representative per window. All blocks except possibly the last hold
// exactly depth keys; a nonzero n mod depth remainder becomes one final
// irregular block. The doubly linked representative list is threaded in the
// same left-to-right pass.
func (t *YTrie) split() {
	size := t.depth
	if size < 1 {
		// depth 0 only happens for the key set {1}.
		size = 1
	}

	n := len(t.keys)
	count := (n + size - 1) / size

	t.blocks = arena.New[block.Block](count)
	t.reps = arena.New[representative](count)

	prev := arena.None
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}

		b := t.blocks.Alloc(block.New(t.keys[lo:hi]))
		r := t.reps.Alloc(representative{
			key:   t.keys[hi-1],
			block: b,
			prev:  prev,
			next:  arena.None,
		})
		if !prev.IsNone() {
			t.reps.Get(prev).next = r
		}
		prev = r
	}
}
