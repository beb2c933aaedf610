//go:build !unix

package file

import (
	"fmt"
	"os"

	"github.com/traceio/segy/segyerr"
)

// mmapBacking has no implementation on platforms without the unix mmap
// syscalls; openMmap always fails, leaving stream mode as the only path.
type mmapBacking struct{}

func openMmap(f *os.File, mode OpenMode, size int64) (*mmapBacking, error) {
	return nil, fmt.Errorf("%w: mmap is not supported on this platform", segyerr.ErrMmap)
}

func (m *mmapBacking) readAt(buf []byte, offset int64) (int, error) { return 0, nil }
func (m *mmapBacking) writeAt(buf []byte, offset int64) (int, error) { return 0, nil }
func (m *mmapBacking) size() (int64, error)                          { return 0, nil }
func (m *mmapBacking) flush(async bool) error                        { return nil }
func (m *mmapBacking) close() error                                  { return nil }
