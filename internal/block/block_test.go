package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlock(t *testing.T) {
	b := New([]uint64{3, 5, 9, 12, 20})

	t.Run("Accessors", func(t *testing.T) {
		assert.Equal(t, uint64(3), b.Min())
		assert.Equal(t, uint64(20), b.Max())
		assert.Equal(t, 5, b.Len())
	})

	t.Run("ExactHit", func(t *testing.T) {
		assert.Equal(t, uint64(9), b.Predecessor(0, 9))
		assert.Equal(t, uint64(3), b.Predecessor(0, 3))
		assert.Equal(t, uint64(20), b.Predecessor(0, 20))
	})

	t.Run("Between", func(t *testing.T) {
		assert.Equal(t, uint64(5), b.Predecessor(0, 8))
		assert.Equal(t, uint64(12), b.Predecessor(0, 19))
	})

	t.Run("AboveMax", func(t *testing.T) {
		assert.Equal(t, uint64(20), b.Predecessor(0, 1000))
	})

	t.Run("LowerBoundFallback", func(t *testing.T) {
		// No stored key <= limit: the caller-supplied bound comes back
		// unchanged.
		assert.Equal(t, uint64(2), b.Predecessor(2, 2))
		assert.Equal(t, uint64(0), b.Predecessor(0, 1))
	})

	t.Run("SingleKey", func(t *testing.T) {
		s := New([]uint64{8})
		assert.Equal(t, uint64(8), s.Predecessor(0, 8))
		assert.Equal(t, uint64(0), s.Predecessor(0, 7))
		assert.Equal(t, uint64(8), s.Min())
		assert.Equal(t, uint64(8), s.Max())
	})
}
