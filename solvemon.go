// Package solvemon decodes the binary telemetry logs written by the parallel
// work-stealing solver and turns per-worker cumulative counters into
// time-aligned rate and gauge series.
//
// The log is a flat sequence of fixed-size records with no header: each
// record holds a timestamp, global counters, and one counter block per
// worker. The worker count and schema variant are producer build
// configuration and must be supplied by the caller.
//
// # Basic Usage
//
//	metrics, err := solvemon.Analyze("metrics.bin",
//	    logfile.WithMaxWorkers(16),
//	    logfile.WithSchemaVariant(format.SchemaExtended),
//	)
//	if err != nil {
//	    // errs.ErrEmptyDataset and errs.ErrFileNotFound are soft outcomes
//	    return err
//	}
//	fmt.Printf("final conflicts: %d\n", metrics.FinalConflicts)
//
// # Package Structure
//
// This package provides one-call wrappers over the pipeline. For finer
// control, use the logfile, aggregate and series packages directly:
// Decode → FilterValid → Build is the whole pipeline, and each stage is a
// pure function over the previous stage's output.
package solvemon

import (
	"github.com/arloliu/solvemon/internal/hash"
	"github.com/arloliu/solvemon/logfile"
	"github.com/arloliu/solvemon/series"
)

// Analyze reads a metrics log from disk and runs the full pipeline.
//
// Returns errs.ErrFileNotFound when the path is missing, errs.ErrSizeMismatch
// when the file cannot divide into whole records, and errs.ErrEmptyDataset
// when every record is an unwritten padding row. No partial result is ever
// returned alongside an error.
func Analyze(path string, opts ...logfile.Option) (*series.Metrics, error) {
	decoder, err := logfile.Open(path, opts...)
	if err != nil {
		return nil, err
	}

	return build(decoder)
}

// AnalyzeBytes runs the full pipeline over an in-memory log buffer.
func AnalyzeBytes(data []byte, opts ...logfile.Option) (*series.Metrics, error) {
	decoder, err := logfile.NewDecoder(data, opts...)
	if err != nil {
		return nil, err
	}

	return build(decoder)
}

func build(decoder *logfile.Decoder) (*series.Metrics, error) {
	valid := logfile.FilterValid(decoder.Decode())

	return series.Build(valid, decoder.Layout(), hash.Digest(decoder.Data()))
}
