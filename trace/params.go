package trace

import (
	"fmt"

	"github.com/traceio/segy/header"
	"github.com/traceio/segy/segyerr"
)

// BinaryParams are the values derived once from a binary header buffer
// (plus, for tracecount, the file size) that every subsequent trace access
// is keyed by.
type BinaryParams struct {
	Trace0     uint32
	Samples    uint32
	Format     Format
	TraceSize  uint32 // bytes per sample payload (not including the 240-byte header)
	TraceCount uint64
}

// DeriveBinaryParams reads trace0, samples and format out of a 400-byte
// binary header buffer. fileSize is the total file size, used to derive
// TraceCount; pass -1 to skip that derivation (e.g. before the file has any
// traces written).
func DeriveBinaryParams(binHeader []byte, fileSize int64) (BinaryParams, error) {
	extHeaders, err := header.GetBinaryField(binHeader, header.BinExtHeaders)
	if err != nil {
		return BinaryParams{}, err
	}

	trace0 := uint32(3600 + 3200*extHeaders) //nolint:gosec // extHeaders is a small field-width int32

	samplesRaw, err := header.GetBinaryField(binHeader, header.BinSamples)
	if err != nil {
		return BinaryParams{}, err
	}

	if samplesRaw <= 0 {
		return BinaryParams{}, fmt.Errorf("%w: samples per trace must be > 0, got %d", segyerr.ErrInvalidArgs, samplesRaw)
	}

	samples := uint32(samplesRaw) //nolint:gosec // validated positive above

	formatRaw, err := header.GetBinaryField(binHeader, header.BinFormat)
	if err != nil {
		return BinaryParams{}, err
	}

	format := Format(formatRaw) //nolint:gosec // width-checked by GetBinaryField

	bps, err := BytesPerSample(format)
	if err != nil {
		return BinaryParams{}, err
	}

	traceSize := samples * uint32(bps) //nolint:gosec // bps is 1, 2 or 4

	params := BinaryParams{
		Trace0:    trace0,
		Samples:   samples,
		Format:    format,
		TraceSize: traceSize,
	}

	if fileSize < 0 {
		return params, nil
	}

	traceBlockSize := int64(header.TraceHeaderSize) + int64(traceSize)
	remaining := fileSize - int64(trace0)

	if remaining < 0 || remaining%traceBlockSize != 0 {
		return BinaryParams{}, fmt.Errorf("%w: (file_size - trace0) %d not a multiple of trace block size %d", segyerr.ErrTraceSizeMismatch, remaining, traceBlockSize)
	}

	params.TraceCount = uint64(remaining / traceBlockSize) //nolint:gosec // remaining and traceBlockSize are both non-negative

	return params, nil
}

// SampleInterval returns the sample interval, preferring the trace header's
// value over the binary header's, letting a trace header override a
// survey-wide default. Returns segyerr.ErrIntervalUnknown rather than
// leaving the result ambiguous when both are zero.
func SampleInterval(binHeader, traceHeader []byte) (int32, error) {
	fromTrace, err := header.GetTraceField(traceHeader, header.TrSampleInter)
	if err != nil {
		return 0, err
	}

	if fromTrace != 0 {
		return fromTrace, nil
	}

	fromBinary, err := header.GetBinaryField(binHeader, header.BinInterval)
	if err != nil {
		return 0, err
	}

	if fromBinary != 0 {
		return fromBinary, nil
	}

	return 0, segyerr.ErrIntervalUnknown
}
