package compress

// NoOpCompressor is format.CompressionNone: a passthrough for callers who'd
// rather skip the CPU cost of compressing a geocache sidecar entirely.
//
// The returned slice aliases the input's backing array; callers shouldn't
// mutate data they've handed to Compress after the call returns.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
