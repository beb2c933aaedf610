package file

import (
	"fmt"
	"os"

	"github.com/traceio/segy/segyerr"
)

// streamBacking wraps an *os.File and serves every access through
// ReadAt/WriteAt, which Go implements with 64-bit offsets regardless of
// platform word size.
type streamBacking struct {
	f *os.File
}

func openStream(path string, mode OpenMode) (*streamBacking, error) {
	var (
		f   *os.File
		err error
	)

	switch mode {
	case ReadOnly:
		f, err = os.Open(path)
	case ReadWrite:
		f, err = os.OpenFile(path, os.O_RDWR, 0o644)
	case CreateReadWrite:
		f, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	default:
		return nil, fmt.Errorf("%w: unknown open mode %v", segyerr.ErrInvalidArgs, mode)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %v", segyerr.ErrOpen, err)
	}

	return &streamBacking{f: f}, nil
}

func (s *streamBacking) readAt(buf []byte, offset int64) (int, error) {
	n, err := s.f.ReadAt(buf, offset)
	if err != nil {
		return n, fmt.Errorf("%w: %v", segyerr.ErrRead, err)
	}

	return n, nil
}

func (s *streamBacking) writeAt(buf []byte, offset int64) (int, error) {
	n, err := s.f.WriteAt(buf, offset)
	if err != nil {
		return n, fmt.Errorf("%w: %v", segyerr.ErrWrite, err)
	}

	return n, nil
}

func (s *streamBacking) size() (int64, error) {
	info, err := s.f.Stat()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", segyerr.ErrSeek, err)
	}

	return info.Size(), nil
}

func (s *streamBacking) flush(async bool) error {
	if async {
		// Go's standard library has no portable async-flush primitive, so
		// an async flush of a stream is a no-op; only the sync path below
		// calls Sync.
		return nil
	}

	if err := s.f.Sync(); err != nil {
		return fmt.Errorf("%w: %v", segyerr.ErrWrite, err)
	}

	return nil
}

func (s *streamBacking) close() error {
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("%w: %v", segyerr.ErrOpen, err)
	}

	return nil
}
