package ytrie

import (
	"testing"

	"github.com/hupe1980/predgo/internal/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkTrieInvariants verifies the structural guarantees the search relies
// on: the root path is present, every recorded path has its parent, leaves
// exist only at full path length, split nodes carry at least one boundary
// representative, and every representative is reachable through the leaf at
// its exact bit pattern.
func checkTrieInvariants(t *testing.T, trie *YTrie) {
	t.Helper()

	width := trie.depth + 1

	_, ok := trie.lookup[pathKey{}]
	require.True(t, ok, "root path must be present")

	for path, n := range trie.lookup {
		if path.length > 0 {
			parent := pathKey{bits: path.bits >> 1, length: path.length - 1}
			_, ok := trie.lookup[parent]
			assert.True(t, ok, "path %v has no parent", path)
		}

		switch n.kind {
		case nodeLeaf:
			assert.Equal(t, width, int(path.length), "leaf at partial path %v", path)
			assert.NotNil(t, trie.reps.Get(n.leaf))
		case nodeSplit:
			assert.Less(t, int(path.length), width, "split node at full path %v", path)
			assert.False(t, n.leftMax.IsNone() && n.rightMin.IsNone(),
				"split node %v with neither boundary", path)
		}
	}

	// Each representative ends in a leaf keyed by its full bit pattern.
	for i := 0; i < trie.reps.Len(); i++ {
		rep := trie.reps.Get(arena.Handle(i))

		bits := rep.key
		if width < 64 {
			bits &= 1<<uint(width) - 1
		}
		leaf, ok := trie.lookup[pathKey{bits: bits, length: uint8(width)}]
		require.True(t, ok, "no leaf for representative %d", rep.key)
		assert.Equal(t, nodeLeaf, leaf.kind)
		assert.Equal(t, arena.Handle(i), leaf.leaf)
	}
}

func TestBuildTrie_Invariants(t *testing.T) {
	for name, keys := range map[string][]uint64{
		"Reference":    {3, 5, 9, 12, 20, 33, 40},
		"SingleKey":    {8},
		"Degenerate":   {1},
		"DenseRun":     {4, 5, 6, 7, 8},
		"PowersOfTwo":  {1, 2, 4, 8, 16, 32, 64, 128},
		"SplitAligned": {2, 4, 8, 16, 32},
		"WideKeys":     {1, 1 << 20, 1 << 40, 1 << 62, 1<<63 + 5},
	} {
		t.Run(name, func(t *testing.T) {
			trie, err := New(keys)
			require.NoError(t, err)
			checkTrieInvariants(t, trie)
		})
	}
}

func TestBuildTrie_KeysNotMutated(t *testing.T) {
	// Bit stripping runs on a scratch buffer; representative keys and the
	// indexed keys must survive construction untouched.
	keys := []uint64{3, 5, 9, 12, 20, 33, 40}
	trie, err := New(keys)
	require.NoError(t, err)

	assert.Equal(t, keys, trie.keys)
	assert.Equal(t, uint64(20), trie.reps.Get(0).key)
	assert.Equal(t, uint64(40), trie.reps.Get(1).key)
}

func TestPathKey_Child(t *testing.T) {
	root := pathKey{}

	left := root.child(0)
	right := root.child(1)
	assert.Equal(t, pathKey{bits: 0, length: 1}, left)
	assert.Equal(t, pathKey{bits: 1, length: 1}, right)
	assert.NotEqual(t, root, left, "root and first left branch are distinct paths")

	// "10" then "101"
	p := right.child(0).child(1)
	assert.Equal(t, pathKey{bits: 0b101, length: 3}, p)
}
