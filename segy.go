// Package segy provides a convenient top-level entry point over the file,
// header, trace, geometry, line, textheader and geocache packages:
// Open/Create handle the common case of "I have a path, give me trace and
// text access", while advanced callers reach for those packages directly
// for strided line access or a custom compression codec on the geometry
// cache.
package segy

import (
	"errors"

	"github.com/traceio/segy/file"
	"github.com/traceio/segy/format"
	"github.com/traceio/segy/geocache"
	"github.com/traceio/segy/geometry"
	"github.com/traceio/segy/header"
	"github.com/traceio/segy/line"
	"github.com/traceio/segy/segyerr"
	"github.com/traceio/segy/textheader"
	"github.com/traceio/segy/trace"
)

// geocacheCompression is the codec InferGeometry uses when it writes a
// fresh geocache sidecar: large 4-D surveys can have tens of thousands of
// line indices, worth compressing on disk.
const geocacheCompression = format.CompressionZstd

// File composes an open file.Handle with the binary header it was built
// from and the two accessors almost every caller needs: trace-indexed I/O
// and textual header I/O. LineIO is not embedded here since it requires a
// Geometry's stride/offsets; call line.Read/Write with the result of
// InferGeometry directly.
type File struct {
	h         *file.Handle
	path      string
	BinHeader []byte
	Trace     *trace.IO
	Text      *textheader.IO
}

// Open opens an existing SEG-Y file in mode ("r" or "r+") and derives its
// binary parameters and textual/trace accessors from the binary header.
func Open(path, mode string) (*File, error) {
	h, err := file.Open(path, mode)
	if err != nil {
		return nil, err
	}

	f, err := wrap(h, path)
	if err != nil {
		h.Close()

		return nil, err
	}

	return f, nil
}

// Create opens path in "w+" mode and writes binHeader as its binary header
// before deriving accessors. binHeader must be BinaryHeaderSize bytes and
// must already carry the survey's Samples, Format and ExtHeaders fields;
// TraceCount will be zero until traces are written and the handle is
// reopened with Open, since DeriveBinaryParams derives it from file size.
func Create(path string, binHeader []byte) (*File, error) {
	h, err := file.Open(path, "w+")
	if err != nil {
		return nil, err
	}

	if _, err := h.WriteAt(header.BinaryHeaderStart, binHeader); err != nil {
		h.Close()

		return nil, err
	}

	f, err := wrap(h, path)
	if err != nil {
		h.Close()

		return nil, err
	}

	return f, nil
}

func wrap(h *file.Handle, path string) (*File, error) {
	binHeader := make([]byte, header.BinaryHeaderSize)
	if _, err := h.ReadAt(header.BinaryHeaderStart, binHeader); err != nil {
		return nil, err
	}

	tio, err := trace.New(h, binHeader)
	if err != nil {
		return nil, err
	}

	extHeaders, err := header.GetBinaryField(binHeader, header.BinExtHeaders)
	if err != nil {
		return nil, err
	}

	return &File{
		h:         h,
		path:      path,
		BinHeader: binHeader,
		Trace:     tio,
		Text:      textheader.New(h, uint32(extHeaders)), //nolint:gosec // ExtHeaders is a small field-width int32
	}, nil
}

// Close releases the underlying file handle.
func (f *File) Close() error {
	return f.h.Close()
}

// InferGeometry returns f's survey layout, consulting the geocache sidecar
// next to f's path before paying for a fresh O(tracecount) header scan. A
// cache miss (sidecar absent, or its fingerprint no longer matching f) falls
// back to geometry.Infer and writes the result back to the sidecar for next
// time; a sidecar that can't be written is not fatal, since the cache is
// purely an optimization over re-inferring from the trace headers.
func (f *File) InferGeometry(fields geometry.Fields) (*geometry.Geometry, error) {
	cache, err := geocache.New(geocacheCompression)
	if err != nil {
		return nil, err
	}

	fileSize, err := f.h.Size()
	if err != nil {
		return nil, err
	}

	params := f.Trace.Params()
	fp := geocache.Fingerprint(f.BinHeader, fileSize, params.Trace0, params.TraceCount)

	g, err := cache.Load(f.path, fp)
	switch {
	case err == nil:
		return g, nil
	case errors.Is(err, segyerr.ErrNotFound):
		// fall through to a fresh inference below
	default:
		return nil, err
	}

	g, err = geometry.Infer(f.Trace, fields)
	if err != nil {
		return nil, err
	}

	_ = cache.Store(f.path, fp, g) // best-effort: caching never blocks a successful inference

	return g, nil
}

// ReadLine reads lineLength traces starting at firstTrace, stride*offsets
// traces apart, concatenating their raw on-wire sample payloads.
func (f *File) ReadLine(firstTrace uint64, lineLength int, stride, offsets uint32) ([]byte, error) {
	return line.Read(f.Trace, firstTrace, lineLength, stride, offsets)
}

// WriteLine is the inverse of ReadLine.
func (f *File) WriteLine(firstTrace uint64, lineLength int, stride, offsets uint32, buf []byte) error {
	return line.Write(f.Trace, firstTrace, lineLength, stride, offsets, buf)
}
