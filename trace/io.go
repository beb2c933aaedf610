package trace

import (
	"fmt"
	"math"

	"github.com/traceio/segy/endian"
	"github.com/traceio/segy/file"
	"github.com/traceio/segy/header"
	"github.com/traceio/segy/ibmfloat"
	"github.com/traceio/segy/segyerr"
)

var (
	wireEndian   = endian.GetBigEndianEngine()
	nativeEngine = endian.GetNativeEngine()
)

// IO composes a file.Handle with BinaryParams to give trace-indexed
// random access. It holds no data of its own beyond those two things.
type IO struct {
	h      *file.Handle
	params BinaryParams
}

// New builds a trace.IO over an already-open handle, deriving BinaryParams
// from binHeader and the handle's current size.
func New(h *file.Handle, binHeader []byte) (*IO, error) {
	size, err := h.Size()
	if err != nil {
		return nil, err
	}

	params, err := DeriveBinaryParams(binHeader, size)
	if err != nil {
		return nil, err
	}

	return &IO{h: h, params: params}, nil
}

// Params returns the derived binary parameters this IO was built from.
func (t *IO) Params() BinaryParams { return t.params }

func (t *IO) traceOffset(traceNo uint64) int64 {
	blockSize := int64(header.TraceHeaderSize) + int64(t.params.TraceSize)

	return int64(t.params.Trace0) + int64(traceNo)*blockSize //nolint:gosec // traceNo is bounds-checked by callers
}

// ReadTraceHeader reads the 240-byte header of trace traceNo.
func (t *IO) ReadTraceHeader(traceNo uint64) ([]byte, error) {
	if traceNo >= t.params.TraceCount {
		return nil, fmt.Errorf("%w: trace %d out of range [0,%d)", segyerr.ErrInvalidArgs, traceNo, t.params.TraceCount)
	}

	buf := make([]byte, header.TraceHeaderSize)

	_, err := t.h.ReadAt(t.traceOffset(traceNo), buf)
	if err != nil {
		return nil, err
	}

	return buf, nil
}

// WriteTraceHeader writes a 240-byte header for trace traceNo.
func (t *IO) WriteTraceHeader(traceNo uint64, buf []byte) error {
	if len(buf) != header.TraceHeaderSize {
		return fmt.Errorf("%w: trace header must be %d bytes, got %d", segyerr.ErrInvalidArgs, header.TraceHeaderSize, len(buf))
	}

	_, err := t.h.WriteAt(t.traceOffset(traceNo), buf)

	return err
}

// ReadTrace reads the full on-disk sample payload of trace traceNo, in its
// raw on-wire big-endian form. Call ToNative to convert in place.
func (t *IO) ReadTrace(traceNo uint64) ([]byte, error) {
	return t.ReadSubtrace(traceNo, 0, int(t.params.Samples), 1)
}

// WriteTrace writes a full sample payload (already in on-wire form, e.g.
// via FromNative) for trace traceNo.
func (t *IO) WriteTrace(traceNo uint64, buf []byte) error {
	bps, err := BytesPerSample(t.params.Format)
	if err != nil {
		return err
	}

	if len(buf) != int(t.params.Samples)*bps {
		return fmt.Errorf("%w: trace payload must be %d bytes, got %d", segyerr.ErrInvalidArgs, int(t.params.Samples)*bps, len(buf))
	}

	offset := t.traceOffset(traceNo) + int64(header.TraceHeaderSize)
	_, err = t.h.WriteAt(offset, buf)

	return err
}

// ReadSubtrace reads samples [start, stop) of trace traceNo, striding by
// step. stop == -1 with a negative step means "reverse the full trace":
// samples are read from the end back to start. A negative step with any
// other stop returns segyerr.ErrInvalidArgs.
func (t *IO) ReadSubtrace(traceNo uint64, start, stop, step int) ([]byte, error) {
	if traceNo >= t.params.TraceCount {
		return nil, fmt.Errorf("%w: trace %d out of range [0,%d)", segyerr.ErrInvalidArgs, traceNo, t.params.TraceCount)
	}

	bps, err := BytesPerSample(t.params.Format)
	if err != nil {
		return nil, err
	}

	samples := int(t.params.Samples)

	if step < 0 {
		if stop != -1 {
			return nil, fmt.Errorf("%w: negative step requires stop == -1", segyerr.ErrInvalidArgs)
		}

		return t.readReversed(traceNo, start, -step, bps, samples)
	}

	if step == 0 {
		return nil, fmt.Errorf("%w: step must not be 0", segyerr.ErrInvalidArgs)
	}

	if start < 0 || stop < start || stop > samples {
		return nil, fmt.Errorf("%w: invalid subtrace range [%d,%d) of %d samples", segyerr.ErrInvalidArgs, start, stop, samples)
	}

	payloadOffset := t.traceOffset(traceNo) + int64(header.TraceHeaderSize) + int64(start*bps)
	n := stop - start

	full := make([]byte, n*bps)
	if _, err := t.h.ReadAt(payloadOffset, full); err != nil {
		return nil, err
	}

	if step == 1 {
		return full, nil
	}

	out := make([]byte, 0, ((n-1)/step+1)*bps)
	for i := 0; i < n; i += step {
		out = append(out, full[i*bps:(i+1)*bps]...)
	}

	return out, nil
}

// readReversed implements the stop == -1 reverse-read convention: the
// elements [start, samples) are read in reverse order, striding by
// strideMagnitude.
func (t *IO) readReversed(traceNo uint64, start, strideMagnitude, bps, samples int) ([]byte, error) {
	if start < 0 || start >= samples {
		return nil, fmt.Errorf("%w: invalid reverse-read start %d of %d samples", segyerr.ErrInvalidArgs, start, samples)
	}

	payloadOffset := t.traceOffset(traceNo) + int64(header.TraceHeaderSize) + int64(start*bps)

	full := make([]byte, (samples-start)*bps)
	if _, err := t.h.ReadAt(payloadOffset, full); err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(full)/strideMagnitude+bps)
	for i := len(full)/bps - 1; i >= 0; i -= strideMagnitude {
		out = append(out, full[i*bps:(i+1)*bps]...)
	}

	return out, nil
}

// ToNative converts every on-disk (big-endian wire) sample in buf to the
// host's native byte representation, in place. IBM float words are decoded
// to IEEE 754 and re-encoded in native byte order; integer and IEEE float
// words are simply byte-swapped if the host is little-endian.
func (t *IO) ToNative(buf []byte) error {
	return convertSamples(t.params.Format, buf, true)
}

// FromNative is the inverse of ToNative.
func (t *IO) FromNative(buf []byte) error {
	return convertSamples(t.params.Format, buf, false)
}

func convertSamples(format Format, buf []byte, toNative bool) error {
	bps, err := BytesPerSample(format)
	if err != nil {
		return err
	}

	if len(buf)%bps != 0 {
		return fmt.Errorf("%w: buffer length %d is not a multiple of sample width %d", segyerr.ErrInvalidArgs, len(buf), bps)
	}

	switch format {
	case FormatIBMFloat:
		convertIBM(buf, toNative)
	case FormatIEEEFloat:
		convertIEEE(buf)
	case FormatInt32, FormatFixedGain:
		convertInt32(buf)
	case FormatInt16:
		convertInt16(buf)
	case FormatInt8:
		// single-byte elements carry no endianness.
	}

	return nil
}

func convertIBM(buf []byte, toNative bool) {
	for off := 0; off+4 <= len(buf); off += 4 {
		word := buf[off : off+4]

		if toNative {
			bits := wireEndian.Uint32(word)
			f := ibmfloat.ToIEEE(bits)
			nativeEngine.PutUint32(word, math.Float32bits(f))
		} else {
			f := math.Float32frombits(nativeEngine.Uint32(word))
			wireEndian.PutUint32(word, ibmfloat.FromIEEE(f))
		}
	}
}

// convertIEEE reverses the byte order of each 4-byte element; like
// convertInt32, the swap is its own inverse.
func convertIEEE(buf []byte) {
	for off := 0; off+4 <= len(buf); off += 4 {
		word := buf[off : off+4]
		nativeEngine.PutUint32(word, wireEndian.Uint32(word))
	}
}

// convertInt32 reverses the byte order of each 4-byte element. Swapping
// wire<->native order is its own inverse, so one function serves both
// ToNative and FromNative.
func convertInt32(buf []byte) {
	for off := 0; off+4 <= len(buf); off += 4 {
		word := buf[off : off+4]
		nativeEngine.PutUint32(word, wireEndian.Uint32(word))
	}
}

func convertInt16(buf []byte) {
	for off := 0; off+2 <= len(buf); off += 2 {
		word := buf[off : off+2]
		v := wireEndian.Uint16(word)
		nativeEngine.PutUint16(word, v)
	}
}
