// Package geocache persists a geometry.Geometry next to the SEG-Y file it
// describes, content-addressed by a fingerprint over the bytes that define
// a survey's shape (binary header, file size, trace0, trace count): a stale
// or mismatched sidecar is simply a cache miss rather than silently wrong
// geometry.
package geocache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/traceio/segy/compress"
	"github.com/traceio/segy/format"
	"github.com/traceio/segy/geometry"
	"github.com/traceio/segy/internal/hash"
	"github.com/traceio/segy/segyerr"
)

// SidecarSuffix names the on-disk cache file relative to the SEG-Y path it
// describes: path + SidecarSuffix.
const SidecarSuffix = ".geocache"

// ErrCorrupt is returned when a sidecar file exists but cannot be parsed as
// a geocache entry.
var ErrCorrupt = errors.New("geocache: corrupted cache entry")

// Fingerprint returns the xxHash64 of the values that together identify a
// survey's geometry: the binary header bytes, the file size, the first
// trace offset, and the trace count.
func Fingerprint(binHeader []byte, fileSize int64, trace0 uint32, tracecount uint64) uint64 {
	buf := make([]byte, 0, len(binHeader)+20)
	buf = append(buf, binHeader...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(fileSize)) //nolint:gosec // file sizes are non-negative
	buf = binary.BigEndian.AppendUint32(buf, trace0)
	buf = binary.BigEndian.AppendUint64(buf, tracecount)

	return hash.ID(string(buf))
}

// Cache reads and writes geometry sidecars under one compression codec.
type Cache struct {
	codec compress.Codec
}

// New builds a Cache that compresses sidecar payloads with compressionType.
func New(compressionType format.CompressionType) (*Cache, error) {
	codec, err := compress.CreateCodec(compressionType, "geocache")
	if err != nil {
		return nil, err
	}

	return &Cache{codec: codec}, nil
}

func sidecarPath(segyPath string) string {
	return segyPath + SidecarSuffix
}

// Load reads the sidecar for segyPath and returns its Geometry if present
// and its stored fingerprint matches want. A missing sidecar or a
// fingerprint mismatch both return segyerr.ErrNotFound: the caller is
// expected to fall back to geometry.Infer and Store the result.
func (c *Cache) Load(segyPath string, want uint64) (*geometry.Geometry, error) {
	raw, err := os.ReadFile(sidecarPath(segyPath)) //nolint:gosec // path is caller-controlled, same as the .sgy file it sits beside
	if err != nil {
		if os.IsNotExist(err) {
			return nil, segyerr.ErrNotFound
		}

		return nil, err
	}

	if len(raw) < 8 {
		return nil, ErrCorrupt
	}

	stored := binary.BigEndian.Uint64(raw[:8])
	if stored != want {
		return nil, segyerr.ErrNotFound
	}

	payload, err := c.codec.Decompress(raw[8:])
	if err != nil {
		return nil, fmt.Errorf("geocache: decompress: %w", err)
	}

	g, err := decode(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return g, nil
}

// Store compresses and writes g as the sidecar for segyPath, tagged with
// fingerprint so a later Load can detect staleness.
func (c *Cache) Store(segyPath string, fingerprint uint64, g *geometry.Geometry) error {
	compressed, err := c.codec.Compress(encode(g))
	if err != nil {
		return fmt.Errorf("geocache: compress: %w", err)
	}

	out := make([]byte, 0, 8+len(compressed))
	out = binary.BigEndian.AppendUint64(out, fingerprint)
	out = append(out, compressed...)

	return os.WriteFile(sidecarPath(segyPath), out, 0o600)
}

func encode(g *geometry.Geometry) []byte {
	size := 1 + 4*6 + 4*3 + 4*(len(g.InlineIndices)+len(g.CrosslineIndices)+len(g.OffsetIndices))
	buf := make([]byte, 0, size)

	buf = append(buf, byte(g.Sorting)) //nolint:gosec // Sorting has two values
	buf = binary.BigEndian.AppendUint32(buf, g.Offsets)
	buf = binary.BigEndian.AppendUint32(buf, g.Ilines)
	buf = binary.BigEndian.AppendUint32(buf, g.Xlines)
	buf = binary.BigEndian.AppendUint32(buf, g.ILStride)
	buf = binary.BigEndian.AppendUint32(buf, g.XLStride)
	buf = binary.BigEndian.AppendUint32(buf, math.Float32bits(g.Rotation))
	buf = appendInt32Slice(buf, g.InlineIndices)
	buf = appendInt32Slice(buf, g.CrosslineIndices)
	buf = appendInt32Slice(buf, g.OffsetIndices)

	return buf
}

func decode(buf []byte) (*geometry.Geometry, error) {
	r := &reader{buf: buf}

	sorting := geometry.Sorting(r.byte())
	offsets := r.uint32()
	ilines := r.uint32()
	xlines := r.uint32()
	ilStride := r.uint32()
	xlStride := r.uint32()
	rotation := math.Float32frombits(r.uint32())
	inlineIndices := r.int32Slice()
	crosslineIndices := r.int32Slice()
	offsetIndices := r.int32Slice()

	if r.err != nil {
		return nil, r.err
	}

	return &geometry.Geometry{
		Sorting:          sorting,
		Offsets:          offsets,
		Ilines:           ilines,
		Xlines:           xlines,
		ILStride:         ilStride,
		XLStride:         xlStride,
		InlineIndices:    inlineIndices,
		CrosslineIndices: crosslineIndices,
		OffsetIndices:    offsetIndices,
		Rotation:         rotation,
	}, nil
}

func appendInt32Slice(buf []byte, vs []int32) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(vs))) //nolint:gosec // line counts fit in uint32
	for _, v := range vs {
		buf = binary.BigEndian.AppendUint32(buf, uint32(v)) //nolint:gosec // reinterpreting a stored int32
	}

	return buf
}

// reader walks buf sequentially, latching the first short-read error so
// callers can decode a whole record and check err once at the end.
type reader struct {
	buf []byte
	pos int
	err error
}

func (r *reader) need(n int) bool {
	if r.err != nil {
		return false
	}

	if r.pos+n > len(r.buf) {
		r.err = fmt.Errorf("%w: truncated at offset %d", ErrCorrupt, r.pos)

		return false
	}

	return true
}

func (r *reader) byte() byte {
	if !r.need(1) {
		return 0
	}

	v := r.buf[r.pos]
	r.pos++

	return v
}

func (r *reader) uint32() uint32 {
	if !r.need(4) {
		return 0
	}

	v := binary.BigEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4

	return v
}

func (r *reader) int32Slice() []int32 {
	n := r.uint32()
	if r.err != nil {
		return nil
	}

	out := make([]int32, n)
	for i := range out {
		out[i] = int32(r.uint32()) //nolint:gosec // reinterpreting a stored int32
	}

	return out
}
