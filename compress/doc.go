// Package compress provides interchangeable compression codecs for
// geocache sidecar payloads.
//
// A Codec is a Compressor plus a Decompressor:
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// CreateCodec picks an implementation by format.CompressionType:
//
//   - CompressionNone: passthrough, for callers who'd rather skip the CPU cost
//   - CompressionZstd: best ratio, moderate speed
//   - CompressionS2: balanced ratio and speed
//   - CompressionLZ4: fastest decompression, lighter ratio
//
// geocache entries are small (a few hundred int32 line indices), so the
// choice mostly trades a few microseconds of CPU for a smaller sidecar file
// on disk; none of these algorithms meaningfully struggle at this size.
package compress
