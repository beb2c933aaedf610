// Command seg-flip-endianness byte-reverses every recognised binary- and
// trace-header field, plus every sample, of a SEG-Y file. It exists to
// manufacture deliberately wrong-endian fixtures for testing the rest of
// this module's endianness handling; it is not a tool a working survey
// pipeline would ever run.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/traceio/segy/file"
	"github.com/traceio/segy/header"
	"github.com/traceio/segy/internal/cliutil"
	"github.com/traceio/segy/trace"
)

const toolName = "seg-flip-endianness"

const (
	textHeaderSize = 3200
	extendedBase   = 3600
)

func main() {
	var (
		extHeaders int
		samples    int
		rawBytes   int
		formatCode int
	)

	cmd := &cobra.Command{
		Use:   toolName + " [-e EXT] [-s SAMPLES] [-F BYTES | -f FMT] IN OUT",
		Short: "Byte-reverse every recognised field and every sample of a SEG-Y file",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0], args[1], extHeaders, samples, rawBytes, formatCode)
		},
	}

	cmd.Flags().IntVarP(&extHeaders, "ext-headers", "e", -1, "external/extended header count (overrides the value in the binary header)")
	cmd.Flags().IntVarP(&samples, "samples", "s", -1, "samples per trace (overrides the value in the binary header)")
	cmd.Flags().IntVarP(&rawBytes, "bytes", "F", -1, "bytes per sample, bypassing the format code entirely")
	cmd.Flags().IntVarP(&formatCode, "format", "f", -1, "sample format code to derive bytes-per-sample from")

	if err := cmd.Execute(); err != nil {
		cliutil.Fail(toolName, err)
	}
}

func run(inPath, outPath string, extHeadersFlag, samplesFlag, rawBytes, formatCode int) error {
	if rawBytes >= 0 && formatCode >= 0 {
		return fmt.Errorf("%s: -F and -f are mutually exclusive", toolName)
	}

	in, err := file.Open(inPath, "r")
	if err != nil {
		return err
	}
	defer in.Close()

	srcBin := make([]byte, header.BinaryHeaderSize)
	if _, err := in.ReadAt(header.BinaryHeaderStart, srcBin); err != nil {
		return err
	}

	extHeaders, err := resolveExtHeaders(srcBin, extHeadersFlag)
	if err != nil {
		return err
	}

	samples, err := resolveSamples(srcBin, samplesFlag)
	if err != nil {
		return err
	}

	bps, err := resolveBytesPerSample(srcBin, rawBytes, formatCode)
	if err != nil {
		return err
	}

	out, err := file.Open(outPath, "w+")
	if err != nil {
		return err
	}
	defer out.Close()

	if err := copyTextHeaders(in, out, extHeaders); err != nil {
		return err
	}

	dstBin := make([]byte, header.BinaryHeaderSize)
	copy(dstBin, srcBin)
	flipBinaryFields(dstBin)

	if _, err := out.WriteAt(header.BinaryHeaderStart, dstBin); err != nil {
		return err
	}

	return flipTraces(in, out, trace0(extHeaders), samples, bps)
}

func trace0(extHeaders int) int64 {
	return extendedBase + int64(extHeaders)*textHeaderSize
}

func resolveExtHeaders(binHeader []byte, flag int) (int, error) {
	if flag >= 0 {
		return flag, nil
	}

	v, err := header.GetBinaryField(binHeader, header.BinExtHeaders)

	return int(v), err
}

func resolveSamples(binHeader []byte, flag int) (int, error) {
	if flag >= 0 {
		return flag, nil
	}

	v, err := header.GetBinaryField(binHeader, header.BinSamples)
	if err != nil {
		return 0, err
	}

	if v <= 0 {
		return 0, fmt.Errorf("%w: samples per trace must be > 0, got %d", os.ErrInvalid, v)
	}

	return int(v), nil
}

func resolveBytesPerSample(binHeader []byte, rawBytes, formatCode int) (int, error) {
	switch {
	case rawBytes >= 0:
		return rawBytes, nil
	case formatCode >= 0:
		return trace.BytesPerSample(trace.Format(formatCode)) //nolint:gosec // formatCode is a small user-supplied code
	default:
		v, err := header.GetBinaryField(binHeader, header.BinFormat)
		if err != nil {
			return 0, err
		}

		return trace.BytesPerSample(trace.Format(v)) //nolint:gosec // format codes are single-digit values
	}
}

// copyTextHeaders copies the primary and every extended textual header
// unchanged: they're EBCDIC card images, not binary fields, so they are
// outside this tool's "byte-reverse every field" contract.
func copyTextHeaders(in, out *file.Handle, extHeaders int) error {
	buf := make([]byte, textHeaderSize)
	if _, err := in.ReadAt(0, buf); err != nil {
		return err
	}

	if _, err := out.WriteAt(0, buf); err != nil {
		return err
	}

	for i := 0; i < extHeaders; i++ {
		offset := int64(extendedBase + i*textHeaderSize)
		if _, err := in.ReadAt(offset, buf); err != nil {
			return err
		}

		if _, err := out.WriteAt(offset, buf); err != nil {
			return err
		}
	}

	return nil
}

// flipBinaryFields reverses the byte order of every recognised field in
// place, leaving unassigned regions untouched.
func flipBinaryFields(buf []byte) {
	for rel := 1; rel <= header.BinaryHeaderSize; rel++ {
		off := header.BinaryHeaderStart + rel
		width := header.BinaryFieldWidth(off)
		if width == 0 {
			continue
		}

		reverseBytes(buf[rel-1 : rel-1+width])
	}
}

// flipTraceHeader reverses the byte order of every recognised field of a
// 240-byte trace header buffer in place.
func flipTraceHeader(buf []byte) {
	for off := 1; off <= header.TraceHeaderSize; off++ {
		width := header.TraceFieldWidth(off)
		if width == 0 {
			continue
		}

		reverseBytes(buf[off-1 : off-1+width])
	}
}

// flipTraces streams every trace from in to out, reversing the header
// fields and sample words of each as it goes.
func flipTraces(in, out *file.Handle, trace0 int64, samples, bps int) error {
	traceSize := int64(header.TraceHeaderSize + samples*bps)

	size, err := in.Size()
	if err != nil {
		return err
	}

	remaining := size - trace0
	if remaining < 0 || remaining%traceSize != 0 {
		return fmt.Errorf("%s: file size does not divide evenly into trace blocks", toolName)
	}

	tracecount := remaining / traceSize

	hdrBuf := make([]byte, header.TraceHeaderSize)
	sampleBuf := make([]byte, samples*bps)

	for tr := int64(0); tr < tracecount; tr++ {
		offset := trace0 + tr*traceSize

		if _, err := in.ReadAt(offset, hdrBuf); err != nil {
			return fmt.Errorf("trace %d: %w", tr, err)
		}

		if _, err := in.ReadAt(offset+int64(header.TraceHeaderSize), sampleBuf); err != nil {
			return fmt.Errorf("trace %d: %w", tr, err)
		}

		flipTraceHeader(hdrBuf)

		for s := 0; s+bps <= len(sampleBuf); s += bps {
			reverseBytes(sampleBuf[s : s+bps])
		}

		if _, err := out.WriteAt(offset, hdrBuf); err != nil {
			return fmt.Errorf("trace %d: %w", tr, err)
		}

		if _, err := out.WriteAt(offset+int64(header.TraceHeaderSize), sampleBuf); err != nil {
			return fmt.Errorf("trace %d: %w", tr, err)
		}
	}

	return nil
}

func reverseBytes(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
