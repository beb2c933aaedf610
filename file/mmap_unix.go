//go:build unix

package file

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/traceio/segy/segyerr"
)

// mmapBacking maps an *os.File into the process address space and serves
// reads/writes as slice operations against that mapping, the way
// calvinalkan-agent-task/pkg/slotcache maps its cache file with
// syscall.Mmap/Munmap.
type mmapBacking struct {
	f    *os.File
	data []byte
}

func openMmap(f *os.File, mode OpenMode, size int64) (*mmapBacking, error) {
	if size == 0 {
		return nil, fmt.Errorf("%w: cannot mmap an empty file", segyerr.ErrMmapInvalid)
	}

	prot := unix.PROT_READ
	if mode.writable() {
		prot |= unix.PROT_WRITE
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), prot, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", segyerr.ErrMmap, err)
	}

	return &mmapBacking{f: f, data: data}, nil
}

func (m *mmapBacking) readAt(buf []byte, offset int64) (int, error) {
	if offset < 0 || offset > int64(len(m.data)) {
		return 0, fmt.Errorf("%w: offset %d out of range", segyerr.ErrSeek, offset)
	}

	n := copy(buf, m.data[offset:])

	return n, nil
}

func (m *mmapBacking) writeAt(buf []byte, offset int64) (int, error) {
	if offset < 0 || offset+int64(len(buf)) > int64(len(m.data)) {
		return 0, fmt.Errorf("%w: write at %d, len %d exceeds mapping", segyerr.ErrSeek, offset, len(buf))
	}

	n := copy(m.data[offset:], buf)

	return n, nil
}

func (m *mmapBacking) size() (int64, error) {
	return int64(len(m.data)), nil
}

func (m *mmapBacking) flush(async bool) error {
	flags := unix.MS_SYNC
	if async {
		flags = unix.MS_ASYNC
	}

	if err := unix.Msync(m.data, flags); err != nil {
		return fmt.Errorf("%w: %v", segyerr.ErrWrite, err)
	}

	return nil
}

func (m *mmapBacking) close() error {
	if err := unix.Munmap(m.data); err != nil {
		return fmt.Errorf("%w: %v", segyerr.ErrMmap, err)
	}

	return m.f.Close()
}
