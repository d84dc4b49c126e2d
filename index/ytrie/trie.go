package ytrie

import "github.com/hupe1980/predgo/internal/arena"

// pathKey is the fixed-width encoding of a root-to-node trie path: the
// branch decisions (0 = left, 1 = right) occupy the low length bits of
// bits, first decision in the most significant position. The root is the
// zero pathKey.
type pathKey struct {
	bits   uint64
	length uint8
}

// child returns the path extended by one branch decision.
func (p pathKey) child(bit uint64) pathKey {
	return pathKey{bits: p.bits<<1 | bit, length: p.length + 1}
}

type nodeKind uint8

const (
	nodeSplit nodeKind = iota
	nodeLeaf
)

// node is one entry of the sparse path-keyed trie. Split nodes summarize
// the boundary where a window of representatives diverges across a bit
// threshold; at least one of leftMax/rightMin is always set. Leaf nodes
// exist only at full path length depth+1 and reference exactly one
// representative.
type node struct {
	kind     nodeKind
	leftMax  arena.Handle // into reps: maximum routed left, None if unset
	rightMin arena.Handle // into reps: minimum routed right, None if unset
	leaf     arena.Handle // into reps, leaf nodes only
}

// buildTrie populates the lookup table from the representative values. The
// bit stripping the recursion performs is destructive, so it runs on a
// scratch copy that is dropped when construction finishes; representative
// keys are never mutated.
func (t *YTrie) buildTrie() {
	n := t.reps.Len()
	scratch := make([]uint64, n)
	for i := 0; i < n; i++ {
		scratch[i] = t.reps.Get(arena.Handle(i)).key
	}

	t.lookup = make(map[pathKey]node)
	t.insertSubtrie(scratch, t.depth, pathKey{}, 0, n-1)
}

// insertSubtrie builds the trie node at path for the representative window
// [lo, hi]. values holds the representatives' remaining values after the
// bit stripping of ancestor calls; the window is ascending, so there is at
// most one index where values cross 2^exponent.
func (t *YTrie) insertSubtrie(values []uint64, exponent int, path pathKey, lo, hi int) {
	if exponent < 0 {
		// Full path length reached: exactly one representative remains.
		// Rounding can leave lo < hi here; the final branch decision says
		// which end is consistent with the path.
		h := arena.Handle(lo)
		if path.bits&1 == 1 {
			h = arena.Handle(hi)
		}
		t.lookup[path] = node{kind: nodeLeaf, leaf: h, leftMax: arena.None, rightMin: arena.None}
		return
	}

	split := uint64(1) << uint(exponent)
	boundary := hi + 1
	leftMax := arena.None
	rightMin := arena.None
	found := false

	for i := lo; i <= hi; i++ {
		if values[i] >= split {
			if !found {
				boundary = i
				found = true
				if i != lo {
					leftMax = arena.Handle(i - 1)
				}
				rightMin = arena.Handle(i)
			}
			// Strip the current bit for the deeper levels. The window is
			// ascending and non-negative, so this never underflows.
			values[i] -= split
		}
	}

	if !found {
		// The whole window routes left.
		leftMax = arena.Handle(hi)
	}

	t.lookup[path] = node{kind: nodeSplit, leftMax: leftMax, rightMin: rightMin, leaf: arena.None}

	if boundary > lo {
		t.insertSubtrie(values, exponent-1, path.child(0), lo, boundary-1)
	}
	if boundary <= hi {
		t.insertSubtrie(values, exponent-1, path.child(1), boundary, hi)
	}
}
