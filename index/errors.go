package index

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPredecessor is returned by Predecessor when the query limit is
	// smaller than every indexed key. It marks an empty result, not a
	// failure.
	ErrNoPredecessor = errors.New("no predecessor")

	// ErrEmptyKeys is returned when an index is built from no keys.
	ErrEmptyKeys = errors.New("key set is empty")

	// ErrZeroKey is returned when the key set contains 0. The structure is
	// sized from the bit length of the maximum key, which is undefined for
	// 0; all keys must be >= 1.
	ErrZeroKey = errors.New("key 0 is not indexable")
)

// ErrKeyOrder reports input that is not strictly ascending.
type ErrKeyOrder struct {
	Index int    // position of the offending key
	Prev  uint64 // key at Index-1
	Key   uint64 // key at Index
}

func (e *ErrKeyOrder) Error() string {
	return fmt.Sprintf("keys must be strictly ascending: keys[%d] = %d, keys[%d] = %d",
		e.Index-1, e.Prev, e.Index, e.Key)
}

// ErrCorrupt reports a broken construction invariant discovered at query
// time. It is a programming fault, never a normal empty result; callers
// must not treat it as ErrNoPredecessor.
type ErrCorrupt struct {
	Detail string
}

func (e *ErrCorrupt) Error() string {
	return fmt.Sprintf("corrupt index: %s", e.Detail)
}
