// Package keyset provides a compressed membership set over uint64 keys,
// backed by a 64-bit Roaring Bitmap. The predecessor index uses it as an
// exact-hit fast path; callers can also query membership directly.
package keyset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Set is a compressed set of uint64 keys. It wraps the official roaring64
// implementation. Build it once; reads are safe concurrently as long as no
// mutation runs.
type Set struct {
	rb *roaring64.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{
		rb: roaring64.New(),
	}
}

// FromSorted builds a set from ascending keys in one pass.
func FromSorted(keys []uint64) *Set {
	s := New()
	s.rb.AddMany(keys)
	return s
}

// Add adds a key to the set.
func (s *Set) Add(key uint64) {
	s.rb.Add(key)
}

// Contains checks if a key is in the set.
func (s *Set) Contains(key uint64) bool {
	return s.rb.Contains(key)
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of keys in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		rb: s.rb.Clone(),
	}
}

// Iterator returns an iterator over the set in ascending key order.
func (s *Set) Iterator() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// SizeInBytes returns the serialized size of the set.
func (s *Set) SizeInBytes() uint64 {
	return s.rb.GetSizeInBytes()
}
