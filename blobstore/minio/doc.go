// Package minio implements blobstore.BlobStore for MinIO and any
// S3-compatible object storage reachable through the MinIO client.
//
// Reads use ranged GetObject requests, so loading a snapshot header does
// not pull the whole object. Writes stream through PutObject; a blob
// becomes visible only when the upload completes.
package minio
