package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/solvemon/format"
)

// logLikeData builds a buffer shaped like a real metrics log: long runs of
// slowly-changing little-endian counters.
func logLikeData(size int) []byte {
	data := make([]byte, size)
	for i := 0; i < size; i += 8 {
		data[i] = byte(i / 64)
	}

	return data
}

// TestCreateCodec verifies the factory covers every concrete codec and
// rejects the rest
func TestCreateCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := CreateCodec(ct)
		require.NoError(t, err, "codec %s", ct)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionAuto)
	require.Error(t, err)

	_, err = CreateCodec(format.CompressionType(0x7f))
	require.Error(t, err)
}

// TestCodecRoundTrip verifies Compress then Decompress restores the exact
// buffer for every codec
func TestCodecRoundTrip(t *testing.T) {
	data := logLikeData(8192)

	cases := []struct {
		name  string
		codec Codec
	}{
		{"NoOp", NewNoOpCodec()},
		{"Zstd", NewZstdCodec()},
		{"S2", NewS2Codec()},
		{"LZ4", NewLZ4Codec()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			compressed, err := tc.codec.Compress(data)
			require.NoError(t, err)

			restored, err := tc.codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(data, restored))
		})
	}
}

// TestCodecEmptyInput verifies empty buffers pass through every codec
func TestCodecEmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewNoOpCodec(), NewZstdCodec(), NewS2Codec(), NewLZ4Codec()} {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

// TestZstdShrinksRepetitiveLog verifies the recommended archive codec
// actually compresses counter-shaped data
func TestZstdShrinksRepetitiveLog(t *testing.T) {
	data := logLikeData(64 * 1024)

	compressed, err := NewZstdCodec().Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(data)/4)
}

// TestDecompressCorrupted verifies corrupted archives fail instead of
// returning garbage
func TestDecompressCorrupted(t *testing.T) {
	garbage := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	_, err := NewZstdCodec().Decompress(garbage)
	require.Error(t, err)

	_, err = NewS2Codec().Decompress(garbage)
	require.Error(t, err)
}
