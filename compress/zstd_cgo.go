//go:build cgo

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress uses a high compression level: geocache sidecars are written once
// per miss and read on every subsequent open, so it's worth spending more
// CPU at write time for a smaller file.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, 19), nil
}

func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
