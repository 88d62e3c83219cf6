package panphon

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordLoad is called after a feature table load.
	// segments is the inventory size, duration the total time taken,
	// err is nil if successful.
	RecordLoad(segments int, duration time.Duration, err error)

	// RecordLookup is called after each single-symbol lookup.
	RecordLookup(found bool)

	// RecordSegmentation is called after each word segmentation.
	// segments is the number of segments produced, err is nil unless
	// strict segmentation rejected the word.
	RecordSegmentation(segments int, duration time.Duration, err error)

	// RecordMatch is called after each feature-specification query.
	// results is the number of matching inventory symbols.
	RecordMatch(results int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)         {}
func (NoopMetricsCollector) RecordLookup(bool)                            {}
func (NoopMetricsCollector) RecordSegmentation(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordMatch(int, time.Duration)               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount          atomic.Int64
	LoadErrors         atomic.Int64
	LookupCount        atomic.Int64
	LookupMisses       atomic.Int64
	SegmentationCount  atomic.Int64
	SegmentationErrors atomic.Int64
	SegmentationNanos  atomic.Int64
	MatchCount         atomic.Int64
	MatchResults       atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(segments int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(found bool) {
	b.LookupCount.Add(1)
	if !found {
		b.LookupMisses.Add(1)
	}
}

// RecordSegmentation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSegmentation(segments int, duration time.Duration, err error) {
	b.SegmentationCount.Add(1)
	b.SegmentationNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SegmentationErrors.Add(1)
	}
}

// RecordMatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMatch(results int, duration time.Duration) {
	b.MatchCount.Add(1)
	b.MatchResults.Add(int64(results))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:            b.LoadCount.Load(),
		LoadErrors:           b.LoadErrors.Load(),
		LookupCount:          b.LookupCount.Load(),
		LookupMisses:         b.LookupMisses.Load(),
		SegmentationCount:    b.SegmentationCount.Load(),
		SegmentationErrors:   b.SegmentationErrors.Load(),
		SegmentationAvgNanos: b.getAvgSegmentationNanos(),
		MatchCount:           b.MatchCount.Load(),
		MatchResults:         b.MatchResults.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSegmentationNanos() int64 {
	count := b.SegmentationCount.Load()
	if count == 0 {
		return 0
	}
	return b.SegmentationNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount            int64
	LoadErrors           int64
	LookupCount          int64
	LookupMisses         int64
	SegmentationCount    int64
	SegmentationErrors   int64
	SegmentationAvgNanos int64
	MatchCount           int64
	MatchResults         int64
}
