package header

import (
	"fmt"

	"github.com/traceio/segy/endian"
	"github.com/traceio/segy/segyerr"
)

// wireEndian is the byte order every SEG-Y header field is stored in:
// all on-wire integer fields are big-endian. The seg-flip-endianness tool is
// the one caller that deliberately reads/writes the opposite order, which it
// does by calling the raw endian.EndianEngine codec directly rather than
// through this package.
var wireEndian = endian.GetBigEndianEngine()

// GetTraceField reads a recognised field from a 240-byte trace header
// buffer, sign-extending 2-byte fields to int32. offset is 1-indexed from
// the start of the header (e.g. header.TrInline).
func GetTraceField(buf []byte, offset int) (int32, error) {
	if len(buf) != TraceHeaderSize {
		return 0, fmt.Errorf("%w: trace header must be %d bytes, got %d", segyerr.ErrInvalidArgs, TraceHeaderSize, len(buf))
	}

	width := TraceFieldWidth(offset)
	if width == 0 {
		return 0, fmt.Errorf("%w: trace header offset %d", segyerr.ErrInvalidField, offset)
	}

	return readField(buf, offset-1, width), nil
}

// SetTraceField writes value into a recognised field of a 240-byte trace
// header buffer, truncating to the field's width if value overflows it.
func SetTraceField(buf []byte, offset int, value int32) error {
	if len(buf) != TraceHeaderSize {
		return fmt.Errorf("%w: trace header must be %d bytes, got %d", segyerr.ErrInvalidArgs, TraceHeaderSize, len(buf))
	}

	width := TraceFieldWidth(offset)
	if width == 0 {
		return fmt.Errorf("%w: trace header offset %d", segyerr.ErrInvalidField, offset)
	}

	writeField(buf, offset-1, width, value)

	return nil
}

// GetBinaryField reads a recognised field from a 400-byte binary header
// buffer. offset is the absolute file offset (e.g. header.BinFormat = 3225).
func GetBinaryField(buf []byte, offset int) (int32, error) {
	if len(buf) != BinaryHeaderSize {
		return 0, fmt.Errorf("%w: binary header must be %d bytes, got %d", segyerr.ErrInvalidArgs, BinaryHeaderSize, len(buf))
	}

	width := BinaryFieldWidth(offset)
	if width == 0 {
		return 0, fmt.Errorf("%w: binary header offset %d", segyerr.ErrInvalidField, offset)
	}

	rel := offset - BinaryHeaderStart

	return readField(buf, rel-1, width), nil
}

// SetBinaryField writes value into a recognised field of a 400-byte binary
// header buffer, truncating to the field's width if value overflows it.
func SetBinaryField(buf []byte, offset int, value int32) error {
	if len(buf) != BinaryHeaderSize {
		return fmt.Errorf("%w: binary header must be %d bytes, got %d", segyerr.ErrInvalidArgs, BinaryHeaderSize, len(buf))
	}

	width := BinaryFieldWidth(offset)
	if width == 0 {
		return fmt.Errorf("%w: binary header offset %d", segyerr.ErrInvalidField, offset)
	}

	rel := offset - BinaryHeaderStart
	writeField(buf, rel-1, width, value)

	return nil
}

// readField loads a big-endian 2- or 4-byte field at the given 0-indexed
// buffer position, sign-extending 2-byte fields to int32.
func readField(buf []byte, pos, width int) int32 {
	if width == 2 {
		return int32(int16(wireEndian.Uint16(buf[pos : pos+2]))) //nolint:gosec // width-checked by caller
	}

	return int32(wireEndian.Uint32(buf[pos : pos+4])) //nolint:gosec // width-checked by caller
}

// writeField stores value as a big-endian 2- or 4-byte field at the given
// 0-indexed buffer position, truncating if value does not fit.
func writeField(buf []byte, pos, width int, value int32) {
	if width == 2 {
		wireEndian.PutUint16(buf[pos:pos+2], uint16(value)) //nolint:gosec // truncation is the documented contract
		return
	}

	wireEndian.PutUint32(buf[pos:pos+4], uint32(value)) //nolint:gosec // truncation is the documented contract
}
