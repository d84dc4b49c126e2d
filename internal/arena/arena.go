package arena

// Handle addresses an object inside an Arena.
type Handle int32

// None marks an absent link.
const None Handle = -1

// IsNone reports whether h is the absent-link sentinel.
func (h Handle) IsNone() bool { return h == None }

// Arena is an append-only object store addressed by handles.
//
// The zero value is ready to use. Arena is safe for concurrent reads once
// allocation has finished; Alloc must not run concurrently with anything.
type Arena[T any] struct {
	items []T
}

// New creates an arena with room for capacity objects before regrowth.
func New[T any](capacity int) *Arena[T] {
	return &Arena[T]{items: make([]T, 0, capacity)}
}

// Alloc appends v to the arena and returns its handle.
func (a *Arena[T]) Alloc(v T) Handle {
	a.items = append(a.items, v)
	return Handle(len(a.items) - 1)
}

// Get returns a pointer to the object at h, or nil when h is None or out of
// range. The pointer stays valid across later Alloc calls only as long as
// callers do not retain it past the next allocation; predgo dereferences
// handles at use sites instead of caching pointers.
func (a *Arena[T]) Get(h Handle) *T {
	if h < 0 || int(h) >= len(a.items) {
		return nil
	}
	return &a.items[h]
}

// Len returns the number of allocated objects.
func (a *Arena[T]) Len() int {
	return len(a.items)
}
