package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/solvemon/format"
	"github.com/arloliu/solvemon/schema"
	"github.com/arloliu/solvemon/series"
)

func buildMetrics(t *testing.T) *series.Metrics {
	t.Helper()

	layout, err := schema.NewLayout(format.SchemaExtended, 2)
	require.NoError(t, err)

	rows := []schema.Record{
		{
			TimestampMS:     500,
			GlobalConflicts: 5,
			Workers:         []schema.WorkerBlock{{Push: 4}, {Push: 6}},
		},
		{
			TimestampMS:        1500,
			GlobalConflicts:    9,
			GlobalPathChecksum: 0xABCD,
			Workers:            []schema.WorkerBlock{{Push: 7}, {Push: 7}},
		},
	}

	m, err := series.Build(rows, layout, 42)
	require.NoError(t, err)

	return m
}

// TestSummary verifies the summary reports the final scalars verbatim
func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, buildMetrics(t)))

	out := buf.String()
	require.Contains(t, out, "Extended, 2 workers")
	require.Contains(t, out, "2 over 1.0s")
	require.Contains(t, out, "Total Conflicts : 9")
	require.Contains(t, out, "0x000000000000ABCD")
}

// TestSummaryBaseVariant verifies base-variant output omits conflict fields
func TestSummaryBaseVariant(t *testing.T) {
	layout, err := schema.NewLayout(format.SchemaBase, 1)
	require.NoError(t, err)

	rows := []schema.Record{
		{TimestampMS: 500, GlobalAllocatedPaths: 3, Workers: []schema.WorkerBlock{{Push: 1}}},
	}

	m, err := series.Build(rows, layout, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, m))

	out := buf.String()
	require.Contains(t, out, "Allocated Paths : 3")
	require.NotContains(t, out, "Total Conflicts")
	require.NotContains(t, out, "Path Checksum")
}

// TestHistograms verifies every rate series renders without error
func TestHistograms(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Histograms(&buf, buildMetrics(t)))

	out := buf.String()
	require.Contains(t, out, "Push (Production)")
	require.Contains(t, out, "Global Conflicts/Tick")
}
