// Package series assembles the final analysis bundle consumed by renderers
// and the CLI.
package series

import (
	"github.com/arloliu/solvemon/aggregate"
	"github.com/arloliu/solvemon/errs"
	"github.com/arloliu/solvemon/format"
	"github.com/arloliu/solvemon/schema"
)

// Metrics is the statically-shaped result of one analysis run.
//
// Every series is aligned by row index: element i of each slice belongs to
// valid row i, and all slices share the length Rows. Rate series are signed
// so producer-side counter corruption shows up as negative values.
//
// RateConflicts, FinalConflicts and FinalChecksum are only populated for the
// extended schema variant; RateConflicts is nil otherwise.
type Metrics struct {
	// Run identity.
	Variant format.SchemaVariant
	Workers int
	Rows    int
	Digest  uint64 // xxHash64 of the raw log buffer

	// Shared x-axis, seconds since the producer's start instant, ascending.
	Timestamps []float64

	// Per-tick rate series from cross-worker counter sums.
	RatePush           []int64
	RatePop            []int64
	RateSteal          []int64
	RateFailedSteal    []int64
	RateEarlyBacktrack []int64
	RateSelfConsumed   []int64
	RateStolenFrom     []int64
	RateRejectedDepth  []int64
	RateRejectedFull   []int64

	// Per-tick rate series from global counters.
	RateAllocatedPaths []int64
	RateConflicts      []int64 // extended variant only

	// Cross-worker gauge averages.
	AvgMaxQueueLen []float64
	AvgQueueLen    []float64

	// Final scalars, taken from the last valid row without differencing.
	FinalAllocatedPaths uint64
	FinalConflicts      uint64 // extended variant only
	FinalChecksum       uint64 // extended variant only, opaque
}

// Len returns the shared series length.
func (m *Metrics) Len() int {
	return m.Rows
}

// Build assembles the bundle from the valid-row subsequence.
//
// rows must already be filtered: every row is a real sample in file order.
// An empty slice yields errs.ErrEmptyDataset, the soft "no valid data"
// outcome. Build performs no numeric work beyond delegating to aggregate,
// and no I/O-shaped error can originate here.
func Build(rows []schema.Record, layout schema.Layout, digest uint64) (*Metrics, error) {
	if len(rows) == 0 {
		return nil, errs.ErrEmptyDataset
	}

	last := rows[len(rows)-1]

	m := &Metrics{
		Variant: layout.Variant,
		Workers: layout.MaxWorkers,
		Rows:    len(rows),
		Digest:  digest,

		Timestamps: aggregate.Seconds(rows),

		RatePush:           workerRate(rows, func(w *schema.WorkerBlock) uint64 { return w.Push }),
		RatePop:            workerRate(rows, func(w *schema.WorkerBlock) uint64 { return w.Pop }),
		RateSteal:          workerRate(rows, func(w *schema.WorkerBlock) uint64 { return w.Steal }),
		RateFailedSteal:    workerRate(rows, func(w *schema.WorkerBlock) uint64 { return w.FailedSteals }),
		RateEarlyBacktrack: workerRate(rows, func(w *schema.WorkerBlock) uint64 { return w.EarlyBacktracks }),
		RateSelfConsumed:   workerRate(rows, func(w *schema.WorkerBlock) uint64 { return w.SelfConsumed }),
		RateStolenFrom:     workerRate(rows, func(w *schema.WorkerBlock) uint64 { return w.StolenFrom }),
		RateRejectedDepth:  workerRate(rows, func(w *schema.WorkerBlock) uint64 { return w.RejectedDepth }),
		RateRejectedFull:   workerRate(rows, func(w *schema.WorkerBlock) uint64 { return w.RejectedFull }),

		RateAllocatedPaths: aggregate.Rates(aggregate.GlobalSeries(rows, func(r *schema.Record) uint64 { return r.GlobalAllocatedPaths })),

		AvgMaxQueueLen: aggregate.MeanAcrossWorkers(rows, func(w *schema.WorkerBlock) float64 { return float64(w.MaxQueueLen) }),
		AvgQueueLen:    aggregate.MeanAcrossWorkers(rows, func(w *schema.WorkerBlock) float64 { return w.AvgQueueLen }),

		FinalAllocatedPaths: last.GlobalAllocatedPaths,
	}

	if layout.Variant == format.SchemaExtended {
		m.RateConflicts = aggregate.Rates(aggregate.GlobalSeries(rows, func(r *schema.Record) uint64 { return r.GlobalConflicts }))
		m.FinalConflicts = last.GlobalConflicts
		m.FinalChecksum = last.GlobalPathChecksum
	}

	return m, nil
}

func workerRate(rows []schema.Record, field func(*schema.WorkerBlock) uint64) []int64 {
	return aggregate.Rates(aggregate.SumAcrossWorkers(rows, field))
}
