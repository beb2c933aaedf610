package compress

import "github.com/klauspost/compress/s2"

// S2Compressor sits between ZstdCompressor and LZ4Compressor: a balanced
// ratio/speed tradeoff for callers who don't want to commit to either
// extreme for their geocache sidecars.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
