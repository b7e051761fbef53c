// Package aggregate converts valid log rows into per-tick series.
//
// Counters in the log are cumulative, so rates are exact successive
// differences with the implicit pre-log value of zero; gauges are averaged
// across workers per row. There is no smoothing, no clamping, and no
// re-sorting: the functions here are pure arithmetic over the row order the
// decoder produced.
package aggregate

import "github.com/arloliu/solvemon/schema"

// SumAcrossWorkers sums field over every worker block of each row, yielding
// one scalar per row. The sum wraps at 64 bits; a real log would need each
// worker to exceed 2^64/workers events to hit that, which is accepted.
func SumAcrossWorkers(rows []schema.Record, field func(*schema.WorkerBlock) uint64) []uint64 {
	sums := make([]uint64, len(rows))
	for i := range rows {
		var sum uint64
		for j := range rows[i].Workers {
			sum += field(&rows[i].Workers[j])
		}
		sums[i] = sum
	}

	return sums
}

// MeanAcrossWorkers averages field over every worker block of each row. Used
// for gauge fields where a cross-worker sum has no meaning.
func MeanAcrossWorkers(rows []schema.Record, field func(*schema.WorkerBlock) float64) []float64 {
	means := make([]float64, len(rows))
	for i := range rows {
		var sum float64
		for j := range rows[i].Workers {
			sum += field(&rows[i].Workers[j])
		}
		means[i] = sum / float64(len(rows[i].Workers))
	}

	return means
}

// GlobalSeries extracts one global record field per row.
func GlobalSeries(rows []schema.Record, field func(*schema.Record) uint64) []uint64 {
	values := make([]uint64, len(rows))
	for i := range rows {
		values[i] = field(&rows[i])
	}

	return values
}

// Rates converts a cumulative counter sequence into per-tick event counts:
// R[0] = S[0] (the value before the log is implicitly zero) and
// R[i] = S[i] - S[i-1].
//
// The subtraction is wrap-around and the result is signed, so a decreasing
// counter, which the producer's monotonicity contract forbids, surfaces as a
// negative rate instead of being silently fixed. A negative rate is a signal
// of producer-side counter corruption.
func Rates(s []uint64) []int64 {
	rates := make([]int64, len(s))

	var prev uint64
	for i, v := range s {
		rates[i] = int64(v - prev)
		prev = v
	}

	return rates
}

// Seconds converts each row's millisecond timestamp to seconds. Computed
// once per run and shared by every series as the common x-axis.
func Seconds(rows []schema.Record) []float64 {
	ts := make([]float64, len(rows))
	for i := range rows {
		ts[i] = float64(rows[i].TimestampMS) / 1000.0
	}

	return ts
}
