package predgo

import (
	"github.com/hupe1980/predgo/index"
)

// Sentinel errors from the index package, re-exported so callers rarely
// need to import the subpackage.
var (
	// ErrNoPredecessor is returned by Predecessor when the limit is smaller
	// than every indexed key.
	ErrNoPredecessor = index.ErrNoPredecessor

	// ErrEmptyKeys is returned by New when the key slice is empty.
	ErrEmptyKeys = index.ErrEmptyKeys

	// ErrZeroKey is returned by New when the key slice contains 0.
	ErrZeroKey = index.ErrZeroKey
)

// ErrKeyOrder reports input to New that is not strictly ascending.
// Match with errors.As to recover the offending position.
type ErrKeyOrder = index.ErrKeyOrder

// ErrCorrupt reports an internal structural fault detected during a query.
type ErrCorrupt = index.ErrCorrupt
