// Package block implements the bounded leaf structure of the predecessor
// index. Each block holds one contiguous run of at most depth keys and
// answers local predecessor queries; it never inspects keys outside itself.
package block

import "sort"

// Block is a read-only view over a contiguous ascending run of keys. The
// backing slice aliases the key array owned by the index, so blocks cost a
// slice header each.
type Block struct {
	keys []uint64
}

// New creates a block over keys. keys must be ascending and non-empty; the
// splitter guarantees both.
func New(keys []uint64) Block {
	return Block{keys: keys}
}

// Predecessor returns the largest stored key <= limit. When no stored key
// qualifies it returns lowerBound unchanged; the caller supplies a
// lowerBound that is already known to be a valid answer from outside the
// block.
func (b Block) Predecessor(lowerBound, limit uint64) uint64 {
	i := sort.Search(len(b.keys), func(i int) bool { return b.keys[i] > limit })
	if i == 0 {
		return lowerBound
	}
	return b.keys[i-1]
}

// Min returns the smallest stored key.
func (b Block) Min() uint64 {
	return b.keys[0]
}

// Max returns the largest stored key. This is the value the block's
// representative carries.
func (b Block) Max() uint64 {
	return b.keys[len(b.keys)-1]
}

// Len returns the number of stored keys.
func (b Block) Len() int {
	return len(b.keys)
}
