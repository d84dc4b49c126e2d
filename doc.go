// Package predgo provides a static predecessor index for Go.
//
// Predgo answers predecessor queries over a fixed set of sorted, distinct
// uint64 keys: given a limit, Predecessor returns the largest indexed key
// that is <= limit. The core is a y-fast trie, which combines a sparse
// binary trie over block representatives with binary search inside small
// sorted blocks for O(log log U) query time.
//
// The index is build-once: construct it from the full key set, then query
// it from any number of goroutines. There is no insert or delete.
//
// # Quick Start
//
// Build an index and query it:
//
//	idx, err := predgo.New([]uint64{3, 5, 9, 12, 20, 33, 40})
//	if err != nil {
//	    panic(err)
//	}
//
//	key, err := idx.Predecessor(34) // 33, nil
//	key, err = idx.Predecessor(2)   // 0, predgo.ErrNoPredecessor
//
// Batch queries fan out across a bounded worker pool:
//
//	results, err := idx.BatchPredecessor(ctx, limits)
//
// # Persistence
//
// Snapshots serialize the key set with a checksummed, compressed binary
// format; the trie is rebuilt deterministically on load:
//
//	err = idx.SaveToFile("index.snap")
//	idx, err = predgo.LoadFromFile("index.snap")
//
// Snapshots can also live in a blob store (local directory, in-memory,
// MinIO, or Amazon S3):
//
//	err = idx.SaveToStore(ctx, store, "index.snap")
//	idx, err = predgo.LoadFromStore(ctx, store, "index.snap")
package predgo
