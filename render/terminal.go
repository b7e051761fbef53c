// Package render presents an analysis bundle on a terminal.
//
// Rendering is presentation only: every number comes straight from the
// series bundle and nothing is re-derived or re-validated here.
package render

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"

	"github.com/arloliu/solvemon/format"
	"github.com/arloliu/solvemon/series"
)

const (
	histogramBins  = 9
	histogramWidth = 40
)

// Summary writes the run identity and final scalars.
func Summary(w io.Writer, m *series.Metrics) error {
	duration := 0.0
	if m.Rows > 0 {
		duration = m.Timestamps[m.Rows-1] - m.Timestamps[0]
	}

	fmt.Fprintln(w, "=== Solver Metrics ===")
	fmt.Fprintf(w, "Schema          : %s, %d workers\n", m.Variant, m.Workers)
	fmt.Fprintf(w, "Samples         : %d over %.1fs\n", m.Rows, duration)
	fmt.Fprintf(w, "Log Digest      : %016x\n", m.Digest)
	fmt.Fprintf(w, "Allocated Paths : %d\n", m.FinalAllocatedPaths)

	if m.Variant == format.SchemaExtended {
		fmt.Fprintf(w, "Total Conflicts : %d\n", m.FinalConflicts)
		fmt.Fprintf(w, "Path Checksum   : 0x%016X\n", m.FinalChecksum)
	}

	return nil
}

// Histograms draws a per-tick rate distribution for each core rate series.
func Histograms(w io.Writer, m *series.Metrics) error {
	sections := []struct {
		name  string
		rates []int64
	}{
		{"Push (Production)", m.RatePush},
		{"Pop (Consumption)", m.RatePop},
		{"Successful Steals", m.RateSteal},
		{"Failed Steal Attempts", m.RateFailedSteal},
		{"Early Backtracks (Stolen)", m.RateEarlyBacktrack},
		{"Self Consumed", m.RateSelfConsumed},
	}

	if m.RateConflicts != nil {
		sections = append(sections, struct {
			name  string
			rates []int64
		}{"Global Conflicts/Tick", m.RateConflicts})
	}

	for _, section := range sections {
		fmt.Fprintf(w, "\n--- %s ---\n", section.name)

		if constant, v := constantRate(section.rates); constant {
			fmt.Fprintf(w, "constant at %d/tick over %d ticks\n", v, len(section.rates))
			continue
		}

		hist := histogram.Hist(histogramBins, toFloats(section.rates))
		if err := histogram.Fprint(w, hist, histogram.Linear(histogramWidth)); err != nil {
			return fmt.Errorf("render %s histogram: %w", section.name, err)
		}
	}

	return nil
}

// constantRate reports whether every tick has the same rate. A single-bucket
// histogram carries no information, so those series get a one-line note.
func constantRate(rates []int64) (bool, int64) {
	if len(rates) == 0 {
		return true, 0
	}

	for _, r := range rates[1:] {
		if r != rates[0] {
			return false, 0
		}
	}

	return true, rates[0]
}

func toFloats(rates []int64) []float64 {
	values := make([]float64, len(rates))
	for i, r := range rates {
		values[i] = float64(r)
	}

	return values
}
