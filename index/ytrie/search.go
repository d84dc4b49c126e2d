package ytrie

import "github.com/hupe1980/predgo/index"

// Predecessor returns the largest indexed key <= limit, or
// index.ErrNoPredecessor when limit is below every indexed key.
//
// The search runs in two phases: a binary search over trie path prefix
// lengths finds the deepest recorded node on limit's bit path, then that
// node resolves the answer either directly (leaf) or through at most two
// neighboring blocks reached via the representative links.
func (t *YTrie) Predecessor(limit uint64) (uint64, error) {
	// The maximum answers every limit at or above it. Every remaining
	// limit is below the maximum and therefore fits in width bits, so the
	// masking below never loses high bits.
	if limit >= t.Max() {
		return t.Max(), nil
	}

	width := t.depth + 1

	// The low width bits of limit, most significant first, addressed the
	// same way as trie paths.
	pathBits := limit
	if width < 64 {
		pathBits = limit & (1<<uint(width) - 1)
	}

	best, ok := t.lookup[pathKey{}]
	if !ok {
		return 0, &index.ErrCorrupt{Detail: "trie root missing"}
	}

	// Binary search over prefix lengths, using table presence as the
	// oracle. Present prefixes push the window toward longer paths, absent
	// ones toward shorter; when the midpoint pins to a window edge the
	// edge itself moves.
	low, high := 0, width
	for low <= high {
		mid := (low + high) / 2
		prefix := pathKey{bits: pathBits >> uint(width-mid), length: uint8(mid)}
		if n, hit := t.lookup[prefix]; hit {
			best = n
			if low == mid {
				low++
			} else {
				low = mid
			}
		} else {
			if high == mid {
				high--
			} else {
				high = mid
			}
		}
	}

	if best.kind == nodeLeaf {
		// A leaf is only recorded at a full path, so its representative's
		// value equals limit's low bits and needs no further search.
		return t.reps.Get(best.leaf).key, nil
	}

	if !best.leftMax.IsNone() {
		lm := t.reps.Get(best.leftMax)
		if lm.next.IsNone() {
			// leftMax is the last representative overall.
			return lm.key, nil
		}
		next := t.reps.Get(lm.next)
		return t.blocks.Get(next.block).Predecessor(lm.key, limit), nil
	}

	if !best.rightMin.IsNone() {
		rm := t.reps.Get(best.rightMin)
		if !rm.prev.IsNone() {
			prev := t.reps.Get(rm.prev)
			return t.blocks.Get(rm.block).Predecessor(prev.key, limit), nil
		}
		// rightMin owns the first block; nothing exists to its left, so an
		// unanswered in-block lookup means limit precedes every key.
		b := t.blocks.Get(rm.block)
		if limit < b.Min() {
			return 0, index.ErrNoPredecessor
		}
		return b.Predecessor(0, limit), nil
	}

	return 0, &index.ErrCorrupt{Detail: "split node with neither leftMax nor rightMin"}
}
