package file

import (
	"fmt"
	"strings"

	"github.com/traceio/segy/segyerr"
)

// OpenMode is the access mode a Handle was opened with.
type OpenMode int

const (
	// ReadOnly opens an existing file for reading only.
	ReadOnly OpenMode = iota
	// ReadWrite opens an existing file for reading and writing.
	ReadWrite
	// CreateReadWrite creates (truncating if present) a file for reading and writing.
	CreateReadWrite
)

func (m OpenMode) writable() bool {
	return m == ReadWrite || m == CreateReadWrite
}

func (m OpenMode) String() string {
	switch m {
	case ReadOnly:
		return "r"
	case ReadWrite:
		return "r+"
	case CreateReadWrite:
		return "w+"
	default:
		return "unknown"
	}
}

// parseOpenMode accepts "r", "r+", "w+", and the same three with a trailing
// "b" (binary mode, accepted for source compatibility and ignored — Go
// makes no text/binary distinction). Any other string is rejected.
func parseOpenMode(s string) (OpenMode, error) {
	trimmed := strings.TrimSuffix(s, "b")

	switch trimmed {
	case "r":
		return ReadOnly, nil
	case "r+":
		return ReadWrite, nil
	case "w+":
		return CreateReadWrite, nil
	default:
		return 0, fmt.Errorf("%w: unrecognised open mode %q", segyerr.ErrInvalidArgs, s)
	}
}
