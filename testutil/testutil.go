package testutil

import (
	"math/rand"
	"sort"
	"sync"
)

// RNG encapsulates a seeded random number generator. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// AscendingKeys returns n strictly ascending keys >= 1 whose maximum has
// bit length depth+1, so a predecessor index built from them has exactly
// the given depth. n-1 must fit below 2^depth.
func (r *RNG) AscendingKeys(n, depth int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	low := uint64(1) << uint(depth)

	seen := make(map[uint64]struct{}, n)
	for len(seen) < n-1 {
		v := r.rand.Uint64()%(low-1) + 1 // [1, 2^depth)
		seen[v] = struct{}{}
	}

	keys := make([]uint64, 0, n)
	for v := range seen {
		keys = append(keys, v)
	}
	// Maximum in [2^depth, 2^(depth+1)) pins the depth.
	keys = append(keys, low+r.rand.Uint64()%low)

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
