package openlist

import (
	"sync/atomic"
)

// InsertOutcome classifies what Insert did with an entry.
type InsertOutcome int

const (
	// Inserted means the entry was stored.
	Inserted InsertOutcome = iota
	// FilteredNonPreferred means a preferred-only list dropped the entry.
	FilteredNonPreferred
	// FilteredDeadEnd means the entry was judged a dead end.
	FilteredDeadEnd
)

// String returns the outcome label.
func (o InsertOutcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case FilteredNonPreferred:
		return "non_preferred"
	case FilteredDeadEnd:
		return "dead_end"
	default:
		return "unknown"
	}
}

// MetricsCollector defines an interface for collecting open list metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus (see the prommetrics package).
type MetricsCollector interface {
	// RecordInsert is called after every Insert call.
	RecordInsert(outcome InsertOutcome)

	// RecordRemove is called after every RemoveMin call. position is the
	// 0-based type-bucket position the entry was served from.
	RecordRemove(position int)

	// RecordDimensionIncrease is called whenever a plateau raises its
	// dimension; dim is the new value.
	RecordDimensionIncrease(dim int)

	// RecordClear is called after Clear.
	RecordClear()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(InsertOutcome)  {}
func (NoopMetricsCollector) RecordRemove(int)            {}
func (NoopMetricsCollector) RecordDimensionIncrease(int) {}
func (NoopMetricsCollector) RecordClear()                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount          atomic.Int64
	FilteredNonPreferred atomic.Int64
	FilteredDeadEnds     atomic.Int64
	RemoveCount          atomic.Int64
	DimensionIncreases   atomic.Int64
	MaxDimension         atomic.Int64
	ClearCount           atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(outcome InsertOutcome) {
	switch outcome {
	case Inserted:
		b.InsertCount.Add(1)
	case FilteredNonPreferred:
		b.FilteredNonPreferred.Add(1)
	case FilteredDeadEnd:
		b.FilteredDeadEnds.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(int) {
	b.RemoveCount.Add(1)
}

// RecordDimensionIncrease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDimensionIncrease(dim int) {
	b.DimensionIncreases.Add(1)
	for {
		cur := b.MaxDimension.Load()
		if int64(dim) <= cur || b.MaxDimension.CompareAndSwap(cur, int64(dim)) {
			return
		}
	}
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear() {
	b.ClearCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:          b.InsertCount.Load(),
		FilteredNonPreferred: b.FilteredNonPreferred.Load(),
		FilteredDeadEnds:     b.FilteredDeadEnds.Load(),
		RemoveCount:          b.RemoveCount.Load(),
		DimensionIncreases:   b.DimensionIncreases.Load(),
		MaxDimension:         b.MaxDimension.Load(),
		ClearCount:           b.ClearCount.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount          int64
	FilteredNonPreferred int64
	FilteredDeadEnds     int64
	RemoveCount          int64
	DimensionIncreases   int64
	MaxDimension         int64
	ClearCount           int64
}
