package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenWithOptions_TryMmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.sgy")
	require.NoError(t, os.WriteFile(path, make([]byte, 4096), 0o644))

	h, err := OpenWithOptions(path, "r", WithTryMmap())
	require.NoError(t, err)
	defer h.Close()

	if h.Mode() != Mmap {
		t.Skip("mmap unsupported on this platform; stream-mode fallback is expected behaviour")
	}

	buf := make([]byte, 4)
	_, err = h.ReadAt(0, buf)
	require.NoError(t, err)
}

func TestOpenWithOptions_NoOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.sgy")

	h, err := OpenWithOptions(path, "w+")
	require.NoError(t, err)
	defer h.Close()

	require.Equal(t, Stream, h.Mode())
}
