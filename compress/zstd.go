package compress

// ZstdCodec compresses log buffers with Zstandard.
//
// Counter rows change slowly between ticks, so a solver log is extremely
// repetitive and zstd routinely shrinks it by an order of magnitude. This is
// the recommended codec for archived logs.
//
// The implementation is selected at build time: the default pure-Go path uses
// klauspost/compress, and a cgo path backed by valyala/gozstd is kept behind
// a build tag for hosts where the C library is measurably faster.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
