// Package s3 implements blobstore.BlobStore for Amazon S3.
//
// Reads use ranged GetObject requests. Writes stream through the AWS
// upload manager, so large snapshots go up as concurrent multipart
// uploads without buffering in memory. An optional byte-rate throttle
// keeps snapshot uploads from starving foreground traffic.
package s3
