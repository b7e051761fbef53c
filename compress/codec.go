// Package compress provides the codecs used to read archived solver metrics
// logs.
//
// A metrics log is often captured on a build farm and shipped compressed;
// the decoder transparently decompresses the whole file before interpreting
// the record stream. Each codec handles one algorithm:
//   - None: pass-through for uncompressed logs
//   - Zstd: best ratio for long runs of near-identical counter rows
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// Compression of a log is only needed to produce test fixtures and archival
// copies, so every codec implements both directions.
package compress

import (
	"fmt"

	"github.com/arloliu/solvemon/format"
)

// Compressor compresses a complete log buffer.
//
// The returned slice is newly allocated and owned by the caller; the input is
// never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a complete log buffer compressed with the matching
// algorithm. It returns an error when the input is corrupted or was produced
// by a different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions for implementations that share state or
// pooled resources between them.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns the Codec for the given compression type.
//
// format.CompressionAuto is not a codec: extension sniffing happens in the
// logfile package before a codec is selected, so it is rejected here.
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("invalid compression: %s", compressionType)
	}
}
