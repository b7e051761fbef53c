// Package logfile turns a solver metrics log file into an ordered sequence
// of typed records.
//
// The pipeline is strictly layered: Open/NewDecoder validate that the buffer
// divides into whole records, Decode reinterprets every record slice without
// looking at its content, and FilterValid drops the zero-timestamp padding
// rows. Everything downstream of FilterValid only ever sees real samples.
package logfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arloliu/solvemon/compress"
	"github.com/arloliu/solvemon/endian"
	"github.com/arloliu/solvemon/errs"
	"github.com/arloliu/solvemon/format"
	"github.com/arloliu/solvemon/internal/options"
	"github.com/arloliu/solvemon/schema"
)

// Decoder maps a raw log buffer to typed records.
//
// The buffer is immutable for the decoder's lifetime and the decoder is a
// pure view over it: decoding the same buffer twice yields identical records.
//
// Note: the Decoder is not safe for concurrent use by multiple goroutines.
type Decoder struct {
	data        []byte
	layout      schema.Layout
	engine      endian.EndianEngine
	maxWorkers  int
	variant     format.SchemaVariant
	compression format.CompressionType
}

func newDecoder(opts ...Option) (*Decoder, error) {
	d := &Decoder{
		engine:      endian.GetLittleEndianEngine(),
		maxWorkers:  DefaultMaxWorkers,
		variant:     format.SchemaExtended,
		compression: format.CompressionAuto,
	}

	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	layout, err := schema.NewLayout(d.variant, d.maxWorkers)
	if err != nil {
		return nil, err
	}
	d.layout = layout

	return d, nil
}

// NewDecoder creates a Decoder over an in-memory log buffer.
//
// The buffer length must be a whole multiple of the configured record stride;
// anything else is rejected with errs.ErrSizeMismatch rather than partially
// read, since a short tail usually means the worker count or schema variant
// is wrong for this log. With compression left on auto the buffer is taken
// as-is; pass WithCompression to decompress an in-memory archive.
func NewDecoder(data []byte, opts ...Option) (*Decoder, error) {
	d, err := newDecoder(opts...)
	if err != nil {
		return nil, err
	}

	if d.compression != format.CompressionAuto && d.compression != format.CompressionNone {
		codec, err := compress.CreateCodec(d.compression)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, d.compression)
		}

		data, err = codec.Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("decompress log: %w", err)
		}
	}

	if err := d.setData(data); err != nil {
		return nil, err
	}

	return d, nil
}

// Open reads a metrics log from disk and creates a Decoder over it.
//
// A missing path is reported as errs.ErrFileNotFound. Compressed archives
// are recognized by extension (.zst, .s2, .lz4) unless WithCompression
// overrides the sniffing. The file is read once; no handle stays open after
// Open returns.
func Open(path string, opts ...Option) (*Decoder, error) {
	d, err := newDecoder(opts...)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errs.ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("read log %s: %w", path, err)
	}

	compression := d.compression
	if compression == format.CompressionAuto {
		compression = sniffCompression(path)
	}

	codec, err := compress.CreateCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, compression)
	}

	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("decompress log %s: %w", path, err)
	}

	if err := d.setData(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

func (d *Decoder) setData(data []byte) error {
	if len(data)%d.layout.RecordSize() != 0 {
		return fmt.Errorf("%w: %d bytes with %d-byte records (workers=%d, schema=%s)",
			errs.ErrSizeMismatch, len(data), d.layout.RecordSize(), d.layout.MaxWorkers, d.layout.Variant)
	}

	d.data = data

	return nil
}

// sniffCompression maps a file extension to its codec. Unknown extensions,
// including the conventional bare .bin, mean an uncompressed log.
func sniffCompression(path string) format.CompressionType {
	switch filepath.Ext(path) {
	case ".zst":
		return format.CompressionZstd
	case ".s2":
		return format.CompressionS2
	case ".lz4":
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}

// Layout returns the record layout this decoder was configured with.
func (d *Decoder) Layout() schema.Layout {
	return d.layout
}

// Data returns the decompressed log buffer backing this decoder.
func (d *Decoder) Data() []byte {
	return d.data
}

// Rows returns the number of records in the buffer, including padding rows.
func (d *Decoder) Rows() int {
	return len(d.data) / d.layout.RecordSize()
}

// Decode reinterprets the whole buffer as records in file order.
//
// No content validation happens here: zero-timestamp padding rows come back
// like any other record and are dropped later by FilterValid.
func (d *Decoder) Decode() []schema.Record {
	stride := d.layout.RecordSize()
	records := make([]schema.Record, 0, d.Rows())

	for offset := 0; offset+stride <= len(d.data); offset += stride {
		records = append(records, d.layout.ParseRecord(d.data[offset:offset+stride], d.engine))
	}

	return records
}

// FilterValid returns the ordered subsequence of records that carry a
// non-zero timestamp. An empty result is a normal outcome for a log that was
// preallocated but never written; the series builder reports it as
// errs.ErrEmptyDataset.
func FilterValid(records []schema.Record) []schema.Record {
	valid := make([]schema.Record, 0, len(records))
	for i := range records {
		if records[i].TimestampMS > 0 {
			valid = append(valid, records[i])
		}
	}

	return valid
}
