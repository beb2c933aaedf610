package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/traceio/segy/file"
	"github.com/traceio/segy/header"
	"github.com/traceio/segy/trace"
)

// buildFixture writes traceCount one-sample traces, each with TrInline set
// to its trace number, and returns the path to the resulting file.
func buildFixture(t *testing.T, traceCount int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.sgy")
	h, err := file.Open(path, "w+")
	require.NoError(t, err)

	binHeader := make([]byte, header.BinaryHeaderSize)
	require.NoError(t, header.SetBinaryField(binHeader, header.BinSamples, 1))
	require.NoError(t, header.SetBinaryField(binHeader, header.BinFormat, int32(trace.FormatInt32)))
	require.NoError(t, header.SetBinaryField(binHeader, header.BinExtHeaders, 0))
	_, err = h.WriteAt(header.BinaryHeaderStart, binHeader)
	require.NoError(t, err)

	blockSize := header.TraceHeaderSize + 4
	trace0 := int64(3600)

	for tr := 0; tr < traceCount; tr++ {
		buf := make([]byte, header.TraceHeaderSize)
		require.NoError(t, header.SetTraceField(buf, header.TrInline, int32(tr))) //nolint:gosec // tr is bounded by traceCount

		offset := trace0 + int64(tr)*int64(blockSize)
		_, err := h.WriteAt(offset, buf)
		require.NoError(t, err)
		_, err = h.WriteAt(offset+int64(header.TraceHeaderSize), make([]byte, 4))
		require.NoError(t, err)
	}

	require.NoError(t, h.Close())

	return path
}

func TestRun_SingleTrace(t *testing.T) {
	path := buildFixture(t, 3)

	err := run(path, 1, nil, false, false)
	require.NoError(t, err)
}

func TestRun_Range(t *testing.T) {
	path := buildFixture(t, 5)

	err := run(path, -1, []string{"1", "4", "1"}, false, true)
	require.NoError(t, err)
}

func TestRun_DefaultCoversWholeFile(t *testing.T) {
	path := buildFixture(t, 4)

	err := run(path, -1, nil, false, false)
	require.NoError(t, err)
}

func TestRun_MutuallyExclusiveFlags(t *testing.T) {
	path := buildFixture(t, 2)

	err := run(path, 0, []string{"0", "1", "1"}, false, false)
	require.Error(t, err)
}

func TestRun_BadRangeArity(t *testing.T) {
	path := buildFixture(t, 2)

	err := run(path, -1, []string{"0", "1"}, false, false)
	require.Error(t, err)
}

func TestRun_StrictStopsOnOutOfRangeTrace(t *testing.T) {
	path := buildFixture(t, 2)

	err := run(path, -1, []string{"0", "5", "1"}, true, false)
	require.Error(t, err)
}

func TestRun_NonStrictSkipsOutOfRangeTrace(t *testing.T) {
	path := buildFixture(t, 2)

	err := run(path, -1, []string{"0", "5", "1"}, false, false)
	require.NoError(t, err)
}
