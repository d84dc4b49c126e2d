// Package persistence implements the binary snapshot format for predecessor
// indexes.
//
// A snapshot is a 64-byte header followed by one compressed payload. The
// payload holds the ascending key array; the trie, blocks, and
// representative links are rebuilt deterministically on load, so the
// pointer graph never touches disk. The header names the compression codec
// and carries a CRC32-Castagnoli checksum of the payload, verified before
// any byte of it is decoded.
//
// All multi-byte fields are little-endian.
package persistence
