package predgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBuild is called once after index construction.
	// keys is the number of indexed keys, duration the build time,
	// err is nil on success.
	RecordBuild(keys int, duration time.Duration, err error)

	// RecordPredecessor is called after each predecessor query.
	// found is false when the query returned ErrNoPredecessor.
	RecordPredecessor(duration time.Duration, found bool, err error)

	// RecordBatch is called after each batch operation.
	// queries is the number of limits submitted, duration the total time.
	RecordBatch(queries int, duration time.Duration, err error)

	// RecordSnapshot is called after each snapshot save or load.
	RecordSnapshot(op string, bytes int64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)              {}
func (NoopMetricsCollector) RecordPredecessor(time.Duration, bool, error)       {}
func (NoopMetricsCollector) RecordBatch(int, time.Duration, error)              {}
func (NoopMetricsCollector) RecordSnapshot(string, int64, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount            atomic.Int64
	BuildErrors           atomic.Int64
	PredecessorCount      atomic.Int64
	PredecessorMisses     atomic.Int64
	PredecessorErrors     atomic.Int64
	PredecessorTotalNanos atomic.Int64
	BatchCount            atomic.Int64
	BatchQueries          atomic.Int64
	BatchErrors           atomic.Int64
	SnapshotCount         atomic.Int64
	SnapshotBytes         atomic.Int64
	SnapshotErrors        atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(keys int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordPredecessor implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPredecessor(duration time.Duration, found bool, err error) {
	b.PredecessorCount.Add(1)
	b.PredecessorTotalNanos.Add(duration.Nanoseconds())
	if !found {
		b.PredecessorMisses.Add(1)
	}
	if err != nil {
		b.PredecessorErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(queries int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchQueries.Add(int64(queries))
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// RecordSnapshot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshot(op string, bytes int64, duration time.Duration, err error) {
	b.SnapshotCount.Add(1)
	b.SnapshotBytes.Add(bytes)
	if err != nil {
		b.SnapshotErrors.Add(1)
	}
}

// PredecessorAvgNanos returns the mean query latency in nanoseconds.
func (b *BasicMetricsCollector) PredecessorAvgNanos() int64 {
	count := b.PredecessorCount.Load()
	if count == 0 {
		return 0
	}
	return b.PredecessorTotalNanos.Load() / count
}
