// Package index defines the contract shared by predecessor indexes and the
// error surface of index construction and queries.
package index
