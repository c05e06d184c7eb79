package scenario

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting scenario metrics.
type MetricsCollector interface {
	// RecordStep is called after each step. err is nil when the step met its
	// expectations, including steps that expected an error and got it.
	RecordStep(op Op, duration time.Duration, err error)

	// RecordRun is called once per run with the number of steps completed.
	RecordRun(steps int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordStep(Op, time.Duration, error) {}
func (NoopMetricsCollector) RecordRun(int, time.Duration, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	MutationCount  atomic.Int64
	ReadCount      atomic.Int64
	ShiftCount     atomic.Int64
	StepErrors     atomic.Int64
	StepTotalNanos atomic.Int64
	RunCount       atomic.Int64
	RunErrors      atomic.Int64
	RunTotalNanos  atomic.Int64
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(op Op, duration time.Duration, err error) {
	switch op {
	case OpSet, OpUnset:
		b.MutationCount.Add(1)
	case OpShiftLeft:
		b.ShiftCount.Add(1)
	default:
		b.ReadCount.Add(1)
	}
	b.StepTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.StepErrors.Add(1)
	}
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(steps int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	steps := b.MutationCount.Load() + b.ReadCount.Load() + b.ShiftCount.Load()
	var avg int64
	if steps > 0 {
		avg = b.StepTotalNanos.Load() / steps
	}
	return BasicMetricsStats{
		MutationCount: b.MutationCount.Load(),
		ReadCount:     b.ReadCount.Load(),
		ShiftCount:    b.ShiftCount.Load(),
		StepErrors:    b.StepErrors.Load(),
		StepAvgNanos:  avg,
		RunCount:      b.RunCount.Load(),
		RunErrors:     b.RunErrors.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	MutationCount int64
	ReadCount     int64
	ShiftCount    int64
	StepErrors    int64
	StepAvgNanos  int64
	RunCount      int64
	RunErrors     int64
}
