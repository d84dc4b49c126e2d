package index

// Index answers predecessor queries over a fixed set of keys.
//
// An Index is built once and is immutable afterwards; any number of
// goroutines may query it concurrently without synchronization.
type Index interface {
	// Predecessor returns the largest indexed key <= limit. It returns
	// ErrNoPredecessor when limit is below every indexed key.
	Predecessor(limit uint64) (uint64, error)

	// Len returns the number of indexed keys.
	Len() int
}
