package file

import (
	"fmt"
	"sync"

	"github.com/traceio/segy/segyerr"
)

// BackingMode reports which strategy a Handle is currently using.
type BackingMode int

const (
	// Stream is the default: every access goes through ReadAt/WriteAt on a
	// buffered *os.File.
	Stream BackingMode = iota
	// Mmap means the file is mapped into the process address space.
	Mmap
)

// Handle owns the underlying byte stream for one open SEG-Y file. It starts
// in stream mode; a caller may opt into mmap mode with TryMmap. Concurrent
// use of one Handle from multiple goroutines is undefined, matching the
// single-threaded resource model the rest of this module assumes.
type Handle struct {
	mu       sync.Mutex
	path     string
	openMode OpenMode
	mode     BackingMode
	backing  backing
	pos      int64
	closed   bool
}

// Open opens path with the given mode string ("r", "r+", "w+", optionally
// with a trailing "b") in stream mode.
func Open(path string, mode string) (*Handle, error) {
	om, err := parseOpenMode(mode)
	if err != nil {
		return nil, err
	}

	b, err := openStream(path, om)
	if err != nil {
		return nil, err
	}

	return &Handle{path: path, openMode: om, mode: Stream, backing: b}, nil
}

// Mode reports the handle's current backing mode.
func (h *Handle) Mode() BackingMode {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.mode
}

// TryMmap upgrades a stream-mode handle to mmap mode. The underlying
// *os.File is reused; on success the handle's size is fixed to the mapping
// size at the moment of the call (a file that grows afterward requires
// re-opening). Returns segyerr.ErrMmap-wrapped errors on platforms or
// filesystems that cannot support the mapping; the caller is expected to
// fall back to stream mode, which remains fully functional.
func (h *Handle) TryMmap() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return segyerr.ErrClosed
	}

	if h.mode == Mmap {
		return nil
	}

	sb, ok := h.backing.(*streamBacking)
	if !ok {
		return fmt.Errorf("%w: handle is not in stream mode", segyerr.ErrMmapInvalid)
	}

	size, err := sb.size()
	if err != nil {
		return err
	}

	mb, err := openMmap(sb.f, h.openMode, size)
	if err != nil {
		return err
	}

	h.backing = mb
	h.mode = Mmap

	return nil
}

// Close releases the handle's resources. Closing an already-closed handle
// is an error.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return segyerr.ErrClosed
	}

	h.closed = true

	return h.backing.close()
}

// Flush commits pending writes. async selects between scheduling the
// writeback (mmap: MS_ASYNC; stream: a no-op, since Go has no portable
// async-fsync) and waiting for it to reach stable storage.
func (h *Handle) Flush(async bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return segyerr.ErrClosed
	}

	return h.backing.flush(async)
}

// Size returns the current file size in bytes.
func (h *Handle) Size() (int64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return 0, segyerr.ErrClosed
	}

	return h.backing.size()
}

// Seek sets the handle's cursor to an absolute byte offset. Both backing
// modes accept any 64-bit offset; there is no chunked-seek limitation to
// work around in Go.
func (h *Handle) Seek(absoluteOffset int64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return segyerr.ErrClosed
	}

	if absoluteOffset < 0 {
		return fmt.Errorf("%w: negative offset %d", segyerr.ErrSeek, absoluteOffset)
	}

	h.pos = absoluteOffset

	return nil
}

// Tell returns the handle's current cursor position.
func (h *Handle) Tell() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pos
}

// Read reads into buf starting at the cursor and advances it.
func (h *Handle) Read(buf []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return 0, segyerr.ErrClosed
	}

	n, err := h.backing.readAt(buf, h.pos)
	h.pos += int64(n)

	return n, err
}

// Write writes buf starting at the cursor and advances it.
func (h *Handle) Write(buf []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return 0, segyerr.ErrClosed
	}

	if !h.openMode.writable() {
		return 0, segyerr.ErrReadOnly
	}

	n, err := h.backing.writeAt(buf, h.pos)
	h.pos += int64(n)

	return n, err
}

// ReadAt reads into buf at offset without disturbing the cursor. This is
// the preferred path: it fuses seek with read and is always 64-bit safe.
func (h *Handle) ReadAt(offset int64, buf []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return 0, segyerr.ErrClosed
	}

	return h.backing.readAt(buf, offset)
}

// WriteAt writes buf at offset without disturbing the cursor.
func (h *Handle) WriteAt(offset int64, buf []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return 0, segyerr.ErrClosed
	}

	if !h.openMode.writable() {
		return 0, segyerr.ErrReadOnly
	}

	return h.backing.writeAt(buf, offset)
}
