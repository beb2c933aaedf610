// Command seg-crop copies a sub-cube of a SEG-Y file by filtering traces
// whose inline/crossline number fall inside a requested window, and
// cropping samples in time.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/traceio/segy/file"
	"github.com/traceio/segy/header"
	"github.com/traceio/segy/internal/cliutil"
	"github.com/traceio/segy/textheader"
	"github.com/traceio/segy/trace"
)

const toolName = "seg-crop"

type window struct {
	ilStart, ilStop int32
	xlStart, xlStop int32
	sStart, sStop   int
}

func main() {
	var (
		ilStart, ilStop int32
		xlStart, xlStop int32
		sStart, sStop   int
		ilByte, xlByte  int
		verbose         bool
	)

	cmd := &cobra.Command{
		Use:   toolName + " -i IL -I IL -x XL -X XL -s N -S N [--il BYTE] [--xl BYTE] [-v] SRC DST",
		Short: "Copy a sub-cube of a SEG-Y file, cropped by inline/crossline window and sample range",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			w := window{ilStart: ilStart, ilStop: ilStop, xlStart: xlStart, xlStop: xlStop, sStart: sStart, sStop: sStop}

			return run(args[0], args[1], w, ilByte, xlByte, verbose)
		},
	}

	cmd.Flags().Int32VarP(&ilStart, "il-start", "i", minInt32, "lowest inline number to keep")
	cmd.Flags().Int32VarP(&ilStop, "il-stop", "I", maxInt32, "highest inline number to keep")
	cmd.Flags().Int32VarP(&xlStart, "xl-start", "x", minInt32, "lowest crossline number to keep")
	cmd.Flags().Int32VarP(&xlStop, "xl-stop", "X", maxInt32, "highest crossline number to keep")
	cmd.Flags().IntVarP(&sStart, "sample-start", "s", 0, "first sample index to keep")
	cmd.Flags().IntVarP(&sStop, "sample-stop", "S", -1, "sample index to stop before (-1 means every sample)")
	cmd.Flags().IntVar(&ilByte, "il", header.TrInline, "trace header byte offset holding the inline number")
	cmd.Flags().IntVar(&xlByte, "xl", header.TrCrossline, "trace header byte offset holding the crossline number")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print a trace-count summary after copying")

	if err := cmd.Execute(); err != nil {
		cliutil.Fail(toolName, err)
	}
}

const (
	minInt32 = -1 << 31
	maxInt32 = 1<<31 - 1
)

func run(srcPath, dstPath string, w window, ilByte, xlByte int, verbose bool) error {
	srcHandle, err := file.Open(srcPath, "r")
	if err != nil {
		return err
	}
	defer srcHandle.Close()

	srcBin := make([]byte, header.BinaryHeaderSize)
	if _, err := srcHandle.ReadAt(header.BinaryHeaderStart, srcBin); err != nil {
		return err
	}

	srcTio, err := trace.New(srcHandle, srcBin)
	if err != nil {
		return err
	}

	if w.sStop < 0 {
		w.sStop = int(srcTio.Params().Samples)
	}

	extHeaders, err := header.GetBinaryField(srcBin, header.BinExtHeaders)
	if err != nil {
		return err
	}

	srcText := textheader.New(srcHandle, uint32(extHeaders)) //nolint:gosec // ExtHeaders is a small field-width int32

	dstHandle, err := file.Open(dstPath, "w+")
	if err != nil {
		return err
	}
	defer dstHandle.Close()

	dstBin := make([]byte, len(srcBin))
	copy(dstBin, srcBin)

	if err := header.SetBinaryField(dstBin, header.BinSamples, int32(w.sStop-w.sStart)); err != nil { //nolint:gosec // cropped sample counts fit in int32
		return err
	}

	if _, err := dstHandle.WriteAt(header.BinaryHeaderStart, dstBin); err != nil {
		return err
	}

	if err := copyTextHeaders(srcText, dstHandle, uint32(extHeaders)); err != nil { //nolint:gosec // ExtHeaders is a small field-width int32
		return err
	}

	dstTio, err := trace.New(dstHandle, dstBin)
	if err != nil {
		return err
	}

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	spin.Prefix = fmt.Sprintf("Cropping %s -> %s... ", srcPath, dstPath)
	spin.Start()
	kept, scanned, err := crop(srcTio, dstTio, w, ilByte, xlByte)
	spin.Stop()

	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("%s: kept %d of %d traces\n", toolName, kept, scanned)
	}

	return nil
}

func copyTextHeaders(srcText *textheader.IO, dstHandle *file.Handle, extHeaders uint32) error {
	dstText := textheader.New(dstHandle, extHeaders)

	primary, err := srcText.ReadPrimary()
	if err != nil {
		return err
	}

	if err := dstText.WritePrimary(primary); err != nil {
		return err
	}

	for i := uint32(0); i < extHeaders; i++ {
		ext, err := srcText.ReadExtended(i)
		if err != nil {
			return err
		}

		if err := dstText.WriteExtended(i, ext); err != nil {
			return err
		}
	}

	return nil
}

// crop scans every source trace, keeping those whose inline/crossline
// number fall inside w, cropped to w's sample range, and returns how many
// traces were kept out of how many scanned.
func crop(srcTio, dstTio *trace.IO, w window, ilByte, xlByte int) (kept, scanned uint64, err error) {
	outTrace := uint64(0)

	for traceNo := uint64(0); traceNo < srcTio.Params().TraceCount; traceNo++ {
		scanned++

		hdr, err := srcTio.ReadTraceHeader(traceNo)
		if err != nil {
			return kept, scanned, fmt.Errorf("trace %d: %w", traceNo, err)
		}

		il, err := header.GetTraceField(hdr, ilByte)
		if err != nil {
			return kept, scanned, err
		}

		xl, err := header.GetTraceField(hdr, xlByte)
		if err != nil {
			return kept, scanned, err
		}

		if il < w.ilStart || il > w.ilStop || xl < w.xlStart || xl > w.xlStop {
			continue
		}

		samples, err := srcTio.ReadSubtrace(traceNo, w.sStart, w.sStop, 1)
		if err != nil {
			return kept, scanned, fmt.Errorf("trace %d: %w", traceNo, err)
		}

		outHdr := make([]byte, len(hdr))
		copy(outHdr, hdr)

		if err := header.SetTraceField(outHdr, header.TrSampleCount, int32(w.sStop-w.sStart)); err != nil { //nolint:gosec // cropped sample counts fit in int32
			return kept, scanned, err
		}

		if err := dstTio.WriteTraceHeader(outTrace, outHdr); err != nil {
			return kept, scanned, fmt.Errorf("trace %d: %w", traceNo, err)
		}

		if err := dstTio.WriteTrace(outTrace, samples); err != nil {
			return kept, scanned, fmt.Errorf("trace %d: %w", traceNo, err)
		}

		outTrace++
		kept++
	}

	return kept, scanned, nil
}
