package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/traceio/segy/file"
	"github.com/traceio/segy/header"
)

// buildFlipFixture writes a single-trace file with a handful of recognised
// fields set to distinguishable values, plus one Int32 sample.
func buildFlipFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.sgy")
	h, err := file.Open(path, "w+")
	require.NoError(t, err)

	binHeader := make([]byte, header.BinaryHeaderSize)
	require.NoError(t, header.SetBinaryField(binHeader, header.BinSamples, 1))
	require.NoError(t, header.SetBinaryField(binHeader, header.BinFormat, 2))
	require.NoError(t, header.SetBinaryField(binHeader, header.BinExtHeaders, 0))
	require.NoError(t, header.SetBinaryField(binHeader, header.BinJobID, 0x01020304))
	_, err = h.WriteAt(header.BinaryHeaderStart, binHeader)
	require.NoError(t, err)

	hdr := make([]byte, header.TraceHeaderSize)
	require.NoError(t, header.SetTraceField(hdr, header.TrInline, 0x0506))
	_, err = h.WriteAt(3600, hdr)
	require.NoError(t, err)

	payload := []byte{0x01, 0x02, 0x03, 0x04}
	_, err = h.WriteAt(3600+int64(header.TraceHeaderSize), payload)
	require.NoError(t, err)

	require.NoError(t, h.Close())

	return path
}

func reopenForRead(t *testing.T, path string) *file.Handle {
	t.Helper()

	h, err := file.Open(path, "r")
	require.NoError(t, err)

	return h
}

func TestRun_FlipsBinaryField(t *testing.T) {
	src := buildFlipFixture(t)
	dst := filepath.Join(t.TempDir(), "flipped.sgy")

	require.NoError(t, run(src, dst, -1, -1, -1, -1))

	h := reopenForRead(t, dst)
	defer h.Close()

	binHeader := make([]byte, header.BinaryHeaderSize)
	_, err := h.ReadAt(header.BinaryHeaderStart, binHeader)
	require.NoError(t, err)

	v, err := header.GetBinaryField(binHeader, header.BinJobID)
	require.NoError(t, err)
	require.Equal(t, int32(0x04030201), v)
}

func TestRun_FlipsSample(t *testing.T) {
	src := buildFlipFixture(t)
	dst := filepath.Join(t.TempDir(), "flipped.sgy")

	require.NoError(t, run(src, dst, -1, -1, -1, -1))

	h := reopenForRead(t, dst)
	defer h.Close()

	buf := make([]byte, 4)
	_, err := h.ReadAt(3600+int64(header.TraceHeaderSize), buf)
	require.NoError(t, err)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
}

func TestRun_RejectsConflictingFormatFlags(t *testing.T) {
	src := buildFlipFixture(t)
	dst := filepath.Join(t.TempDir(), "flipped.sgy")

	err := run(src, dst, -1, -1, 4, 2)
	require.Error(t, err)
}
