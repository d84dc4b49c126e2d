// Package testutil provides deterministic test data generation for predgo
// tests and benchmarks. All helpers run off an explicitly seeded RNG so
// failures reproduce.
package testutil
