// Package textheader implements TextHeaderIO: read/write access to the
// primary and extended 3200-byte textual headers, translating through
// EBCDIC on the wire boundary the way trace.IO translates sample words
// through endian conversion on its own wire boundary.
package textheader

import (
	"fmt"

	"github.com/traceio/segy/ebcdic"
	"github.com/traceio/segy/file"
	"github.com/traceio/segy/segyerr"
)

// Size is the fixed length, in bytes, of every textual header: primary or
// extended.
const Size = 3200

// primaryOffset is the byte offset of the primary textual header.
const primaryOffset = 0

// extendedBase is the byte offset of the first extended textual header.
const extendedBase = 3600

// IO gives access to a file's textual headers at fixed offsets: the primary
// header at byte 0 and extended header i at 3600+i*Size, between the binary
// header and the first trace. It holds the extended header count, which
// bounds ReadExtended/WriteExtended; trace.DeriveBinaryParams folds the same
// count into trace0.
type IO struct {
	h          *file.Handle
	extHeaders uint32
}

// New builds a textheader.IO over h, given the extended header count read
// from the binary header.
func New(h *file.Handle, extHeaders uint32) *IO {
	return &IO{h: h, extHeaders: extHeaders}
}

// ReadPrimary reads the primary textual header and converts it from EBCDIC
// to ASCII. The returned buffer is always exactly Size bytes.
func (t *IO) ReadPrimary() ([]byte, error) {
	return t.read(primaryOffset)
}

// ReadExtended reads extended textual header i (0-indexed) and converts it
// from EBCDIC to ASCII.
func (t *IO) ReadExtended(i uint32) ([]byte, error) {
	if i >= t.extHeaders {
		return nil, fmt.Errorf("%w: extended header %d out of range [0,%d)", segyerr.ErrInvalidArgs, i, t.extHeaders)
	}

	return t.read(extendedBase + int64(i)*Size)
}

func (t *IO) read(offset int64) ([]byte, error) {
	buf := make([]byte, Size)
	if _, err := t.h.ReadAt(offset, buf); err != nil {
		return nil, err
	}

	return ebcdic.ToASCII(buf), nil
}

// WritePrimary converts ascii to EBCDIC and writes it as the primary
// textual header. ascii must be exactly Size bytes.
func (t *IO) WritePrimary(ascii []byte) error {
	return t.write(primaryOffset, ascii)
}

// WriteExtended converts ascii to EBCDIC and writes it as extended textual
// header i (0-indexed). ascii must be exactly Size bytes.
func (t *IO) WriteExtended(i uint32, ascii []byte) error {
	if i >= t.extHeaders {
		return fmt.Errorf("%w: extended header %d out of range [0,%d)", segyerr.ErrInvalidArgs, i, t.extHeaders)
	}

	return t.write(extendedBase+int64(i)*Size, ascii)
}

func (t *IO) write(offset int64, ascii []byte) error {
	if len(ascii) != Size {
		return fmt.Errorf("%w: textual header must be %d bytes, got %d", segyerr.ErrInvalidArgs, Size, len(ascii))
	}

	_, err := t.h.WriteAt(offset, ebcdic.ToEBCDIC(ascii))

	return err
}
