package compress

// ZstdCompressor gives geocache its best compression ratio at the cost of
// compression speed. A sidecar is written once per geometry inference and
// read many times afterward, so trading encode speed for a smaller file on
// disk is the right tradeoff here.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor that encodes at its
// best-compression level.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
