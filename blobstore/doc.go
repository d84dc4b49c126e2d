// Package blobstore provides the storage abstraction for predgo snapshots.
//
// BlobStore is the interface for reading and writing immutable snapshot
// blobs. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with atomic renames
//   - MemoryStore: in-memory store for tests
//   - minio.Store: MinIO and S3-compatible object storage
//   - s3.Store: Amazon S3 with streaming multipart uploads
package blobstore
