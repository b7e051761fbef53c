package schema

import (
	"fmt"

	"github.com/arloliu/solvemon/endian"
	"github.com/arloliu/solvemon/errs"
	"github.com/arloliu/solvemon/format"
)

// Record header sizes for the two layout variants.
const (
	// BaseHeaderSize covers timestamp_ms and global_allocated_paths.
	BaseHeaderSize = 16
	// ExtendedHeaderSize adds global_conflicts and global_path_checksum.
	ExtendedHeaderSize = 32
)

// Byte offsets of the record header fields.
const (
	timestampMSOffset          = 0
	globalAllocatedPathsOffset = 8
	globalConflictsOffset      = 16 // extended variant only
	globalPathChecksumOffset   = 24 // extended variant only
)

// Record is one decoded log row: a timestamp, the global counters, and one
// worker block per configured worker.
//
// TimestampMS is milliseconds since the producer's start instant; zero marks
// a preallocated slot that was never written. The record layer does not
// interpret that, it only carries the value.
//
// GlobalConflicts and GlobalPathChecksum are only written by the extended
// layout variant and stay zero for base-variant records. The checksum is an
// opaque value that is only meaningful at the final valid row.
type Record struct {
	TimestampMS          uint64
	GlobalAllocatedPaths uint64
	GlobalConflicts      uint64
	GlobalPathChecksum   uint64
	Workers              []WorkerBlock
}

// Layout describes one concrete record layout: a schema variant plus the
// producer's configured worker count. The worker count is not recoverable
// from the file; a mismatch mis-slices every row, so the decoder rejects at
// least the file sizes that cannot divide into whole records.
type Layout struct {
	Variant    format.SchemaVariant
	MaxWorkers int
}

// NewLayout creates a Layout after validating the variant and worker count.
func NewLayout(variant format.SchemaVariant, maxWorkers int) (Layout, error) {
	if variant != format.SchemaBase && variant != format.SchemaExtended {
		return Layout{}, fmt.Errorf("%w: %d", errs.ErrUnknownSchemaVariant, variant)
	}

	if maxWorkers <= 0 {
		return Layout{}, fmt.Errorf("%w: %d", errs.ErrInvalidWorkerCount, maxWorkers)
	}

	return Layout{Variant: variant, MaxWorkers: maxWorkers}, nil
}

func (l Layout) extended() bool {
	return l.Variant == format.SchemaExtended
}

// HeaderSize returns the record header size in bytes.
func (l Layout) HeaderSize() int {
	if l.extended() {
		return ExtendedHeaderSize
	}

	return BaseHeaderSize
}

// WorkerBlockSize returns the per-worker block size in bytes.
func (l Layout) WorkerBlockSize() int {
	if l.extended() {
		return ExtendedWorkerBlockSize
	}

	return BaseWorkerBlockSize
}

// RecordSize returns the full record stride in bytes.
func (l Layout) RecordSize() int {
	return l.HeaderSize() + l.MaxWorkers*l.WorkerBlockSize()
}

// ParseRecord reinterprets exactly one record slice. data must be at least
// RecordSize bytes; the caller slices the file into record strides and
// guarantees the length, so no validation happens here.
func (l Layout) ParseRecord(data []byte, engine endian.EndianEngine) Record {
	rec := Record{
		TimestampMS:          engine.Uint64(data[timestampMSOffset:]),
		GlobalAllocatedPaths: engine.Uint64(data[globalAllocatedPathsOffset:]),
		Workers:              make([]WorkerBlock, l.MaxWorkers),
	}

	if l.extended() {
		rec.GlobalConflicts = engine.Uint64(data[globalConflictsOffset:])
		rec.GlobalPathChecksum = engine.Uint64(data[globalPathChecksumOffset:])
	}

	blockSize := l.WorkerBlockSize()
	offset := l.HeaderSize()
	for i := 0; i < l.MaxWorkers; i++ {
		rec.Workers[i] = parseWorkerBlock(data[offset:], l.extended(), engine)
		offset += blockSize
	}

	return rec
}

// AppendRecord serializes rec in this layout and appends it to dst. Missing
// trailing worker blocks are emitted as zero blocks and extra ones are
// dropped, which keeps fixture construction terse. The producer side of the
// format is external; this exists for tests and archival tooling.
func (l Layout) AppendRecord(dst []byte, rec Record, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint64(dst, rec.TimestampMS)
	dst = engine.AppendUint64(dst, rec.GlobalAllocatedPaths)

	if l.extended() {
		dst = engine.AppendUint64(dst, rec.GlobalConflicts)
		dst = engine.AppendUint64(dst, rec.GlobalPathChecksum)
	}

	for i := 0; i < l.MaxWorkers; i++ {
		var w WorkerBlock
		if i < len(rec.Workers) {
			w = rec.Workers[i]
		}

		dst = appendWorkerBlock(dst, w, l.extended(), engine)
	}

	return dst
}
