// Package errs defines the sentinel errors shared across the solvemon
// decoding pipeline. Callers match them with errors.Is; use sites add
// context by wrapping with fmt.Errorf("%w: ...").
package errs

import "errors"

var (
	// ErrFileNotFound indicates the metrics log path does not exist.
	ErrFileNotFound = errors.New("metrics log not found")

	// ErrSizeMismatch indicates the log length is not a whole multiple of the
	// configured record stride. This usually means the worker count or schema
	// variant does not match the producer's build configuration.
	ErrSizeMismatch = errors.New("log size is not a multiple of the record size")

	// ErrInvalidWorkerCount indicates a non-positive worker count was configured.
	ErrInvalidWorkerCount = errors.New("worker count must be positive")

	// ErrUnknownSchemaVariant indicates a schema variant outside the known set.
	ErrUnknownSchemaVariant = errors.New("unknown schema variant")

	// ErrUnknownCompression indicates a compression type outside the known set.
	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrEmptyDataset indicates every decoded row carried a zero timestamp.
	// This is a normal outcome for a log that was preallocated but never
	// written, not a decode failure.
	ErrEmptyDataset = errors.New("no valid data")
)
