package compress

// NoOpCodec passes log buffers through untouched. It backs
// format.CompressionNone so the decoder can treat every input uniformly.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is without copying.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is without copying. The returned
// slice shares memory with the input, which is fine for the decoder because
// the log buffer is immutable for the whole run.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
