package header

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTraceField_RoundTrip(t *testing.T) {
	buf := make([]byte, TraceHeaderSize)

	require.NoError(t, SetTraceField(buf, TrInline, 12345))
	require.NoError(t, SetTraceField(buf, TrSampleCount, 1500))

	got, err := GetTraceField(buf, TrInline)
	require.NoError(t, err)
	require.Equal(t, int32(12345), got)

	got, err = GetTraceField(buf, TrSampleCount)
	require.NoError(t, err)
	require.Equal(t, int32(1500), got)
}

func TestTraceField_Negative(t *testing.T) {
	buf := make([]byte, TraceHeaderSize)

	require.NoError(t, SetTraceField(buf, TrOffset, -42))

	got, err := GetTraceField(buf, TrOffset)
	require.NoError(t, err)
	require.Equal(t, int32(-42), got)
}

func TestTraceField_TwoByteSignExtension(t *testing.T) {
	buf := make([]byte, TraceHeaderSize)

	require.NoError(t, SetTraceField(buf, TrElevScalar, -100))

	got, err := GetTraceField(buf, TrElevScalar)
	require.NoError(t, err)
	require.Equal(t, int32(-100), got)
}

func TestTraceField_UnrecognisedOffset(t *testing.T) {
	buf := make([]byte, TraceHeaderSize)

	_, err := GetTraceField(buf, 2)
	require.Error(t, err)

	err = SetTraceField(buf, 2, 1)
	require.Error(t, err)
}

func TestTraceField_WrongBufferSize(t *testing.T) {
	buf := make([]byte, 10)

	_, err := GetTraceField(buf, TrInline)
	require.Error(t, err)
}

func TestBinaryField_RoundTrip(t *testing.T) {
	buf := make([]byte, BinaryHeaderSize)

	require.NoError(t, SetBinaryField(buf, BinJobID, 99999))
	require.NoError(t, SetBinaryField(buf, BinFormat, 5))

	got, err := GetBinaryField(buf, BinJobID)
	require.NoError(t, err)
	require.Equal(t, int32(99999), got)

	got, err = GetBinaryField(buf, BinFormat)
	require.NoError(t, err)
	require.Equal(t, int32(5), got)
}

func TestBinaryField_UnrecognisedOffset(t *testing.T) {
	buf := make([]byte, BinaryHeaderSize)

	_, err := GetBinaryField(buf, 3300)
	require.Error(t, err)
}

func TestBinaryField_LastFieldInRun(t *testing.T) {
	buf := make([]byte, BinaryHeaderSize)

	require.NoError(t, SetBinaryField(buf, BinVibratoryPolarity, 7))

	got, err := GetBinaryField(buf, BinVibratoryPolarity)
	require.NoError(t, err)
	require.Equal(t, int32(7), got)

	// The second contiguous run must not be disturbed.
	require.NoError(t, SetBinaryField(buf, BinExtHeaders, 1))

	got, err = GetBinaryField(buf, BinExtHeaders)
	require.NoError(t, err)
	require.Equal(t, int32(1), got)
}
