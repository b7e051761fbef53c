package logfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/solvemon/compress"
	"github.com/arloliu/solvemon/endian"
	"github.com/arloliu/solvemon/errs"
	"github.com/arloliu/solvemon/format"
	"github.com/arloliu/solvemon/schema"
)

func buildLog(t *testing.T, layout schema.Layout, records ...schema.Record) []byte {
	t.Helper()

	engine := endian.GetLittleEndianEngine()

	var buf []byte
	for _, rec := range records {
		buf = layout.AppendRecord(buf, rec, engine)
	}

	return buf
}

func extLayout(t *testing.T, workers int) schema.Layout {
	t.Helper()

	layout, err := schema.NewLayout(format.SchemaExtended, workers)
	require.NoError(t, err)

	return layout
}

// TestNewDecoderSizeMismatch verifies truncated or mis-sliced logs are rejected
func TestNewDecoderSizeMismatch(t *testing.T) {
	layout := extLayout(t, 2)
	data := buildLog(t, layout, schema.Record{TimestampMS: 1})

	// Truncated trailing record must be rejected, not partially read.
	_, err := NewDecoder(data[:len(data)-1], WithMaxWorkers(2))
	require.ErrorIs(t, err, errs.ErrSizeMismatch)

	// A wrong worker count that does not divide the file is caught too.
	_, err = NewDecoder(data, WithMaxWorkers(3))
	require.ErrorIs(t, err, errs.ErrSizeMismatch)
}

// TestNewDecoderInvalidConfig verifies option validation
func TestNewDecoderInvalidConfig(t *testing.T) {
	_, err := NewDecoder(nil, WithMaxWorkers(0))
	require.ErrorIs(t, err, errs.ErrInvalidWorkerCount)

	_, err = NewDecoder(nil, WithSchemaVariant(format.SchemaVariant(0x7f)))
	require.ErrorIs(t, err, errs.ErrUnknownSchemaVariant)
}

// TestDecodePreservesFileOrder verifies records come back in file order with
// no content interpretation
func TestDecodePreservesFileOrder(t *testing.T) {
	layout := extLayout(t, 1)
	data := buildLog(t, layout,
		schema.Record{TimestampMS: 0},
		schema.Record{TimestampMS: 500, GlobalConflicts: 1},
		schema.Record{TimestampMS: 1000, GlobalConflicts: 3},
	)

	decoder, err := NewDecoder(data, WithMaxWorkers(1))
	require.NoError(t, err)
	require.Equal(t, 3, decoder.Rows())

	records := decoder.Decode()
	require.Len(t, records, 3)
	require.Equal(t, uint64(0), records[0].TimestampMS)
	require.Equal(t, uint64(500), records[1].TimestampMS)
	require.Equal(t, uint64(1000), records[2].TimestampMS)
}

// TestFilterValid verifies zero-timestamp padding rows are dropped and order
// is preserved
func TestFilterValid(t *testing.T) {
	records := []schema.Record{
		{TimestampMS: 0},
		{TimestampMS: 500},
		{TimestampMS: 1000},
	}

	valid := FilterValid(records)
	require.Len(t, valid, 2)
	require.Equal(t, uint64(500), valid[0].TimestampMS)
	require.Equal(t, uint64(1000), valid[1].TimestampMS)

	require.Empty(t, FilterValid([]schema.Record{{TimestampMS: 0}, {TimestampMS: 0}}))
	require.Empty(t, FilterValid(nil))
}

// TestOpenMissingFile verifies a missing path maps to ErrFileNotFound
func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.bin"))
	require.ErrorIs(t, err, errs.ErrFileNotFound)
}

// TestOpenRawFile verifies the plain uncompressed path end to end
func TestOpenRawFile(t *testing.T) {
	layout := extLayout(t, 2)
	data := buildLog(t, layout,
		schema.Record{TimestampMS: 500, GlobalConflicts: 5},
		schema.Record{TimestampMS: 1000, GlobalConflicts: 9},
	)

	path := filepath.Join(t.TempDir(), "metrics.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	decoder, err := Open(path, WithMaxWorkers(2))
	require.NoError(t, err)
	require.Equal(t, 2, decoder.Rows())
	require.Equal(t, data, decoder.Data())
}

// TestOpenSniffsCompression verifies each archive extension decompresses
// transparently to the same records
func TestOpenSniffsCompression(t *testing.T) {
	layout := extLayout(t, 1)
	data := buildLog(t, layout,
		schema.Record{TimestampMS: 500, GlobalAllocatedPaths: 3},
		schema.Record{TimestampMS: 1000, GlobalAllocatedPaths: 8},
	)

	cases := []struct {
		ext   string
		codec format.CompressionType
	}{
		{".zst", format.CompressionZstd},
		{".s2", format.CompressionS2},
		{".lz4", format.CompressionLZ4},
	}

	for _, tc := range cases {
		t.Run(tc.codec.String(), func(t *testing.T) {
			codec, err := compress.CreateCodec(tc.codec)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "metrics.bin"+tc.ext)
			require.NoError(t, os.WriteFile(path, compressed, 0o644))

			decoder, err := Open(path, WithMaxWorkers(1))
			require.NoError(t, err)
			require.Equal(t, data, decoder.Data())

			records := decoder.Decode()
			require.Len(t, records, 2)
			require.Equal(t, uint64(8), records[1].GlobalAllocatedPaths)
		})
	}
}

// TestOpenCompressionOverride verifies WithCompression beats the extension
func TestOpenCompressionOverride(t *testing.T) {
	layout := extLayout(t, 1)
	data := buildLog(t, layout, schema.Record{TimestampMS: 500})

	codec, err := compress.CreateCodec(format.CompressionS2)
	require.NoError(t, err)

	compressed, err := codec.Compress(data)
	require.NoError(t, err)

	// Misleading name: S2 payload in a .bin file.
	path := filepath.Join(t.TempDir(), "metrics.bin")
	require.NoError(t, os.WriteFile(path, compressed, 0o644))

	decoder, err := Open(path, WithMaxWorkers(1), WithCompression(format.CompressionS2))
	require.NoError(t, err)
	require.Equal(t, data, decoder.Data())
}

// TestDecodeBigEndian verifies the endian option flows through to parsing
func TestDecodeBigEndian(t *testing.T) {
	layout := extLayout(t, 1)
	engine := endian.GetBigEndianEngine()

	buf := layout.AppendRecord(nil, schema.Record{TimestampMS: 500, GlobalConflicts: 2}, engine)

	decoder, err := NewDecoder(buf, WithMaxWorkers(1), WithBigEndian())
	require.NoError(t, err)

	records := decoder.Decode()
	require.Equal(t, uint64(500), records[0].TimestampMS)
	require.Equal(t, uint64(2), records[0].GlobalConflicts)
}
