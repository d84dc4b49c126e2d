// Package arena provides slice-backed object arenas addressed by handles.
//
// The linked structures in predgo (representatives and their blocks) are
// owned by arenas and connected through handles instead of pointers. The
// arena is append-only: objects are never moved or freed individually, so a
// handle stays valid for the lifetime of the arena and the whole graph is
// released in one step when the arena becomes unreachable.
//
// # Safety
//
// Methods do not panic on bad input. Get returns nil for None or an
// out-of-range handle.
package arena
