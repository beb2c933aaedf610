// Command seg-cat-traceheader prints recognised trace-header fields for
// one or more traces of a SEG-Y file.
package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/traceio/segy/file"
	"github.com/traceio/segy/header"
	"github.com/traceio/segy/internal/cliutil"
	"github.com/traceio/segy/trace"
)

const toolName = "seg-cat-traceheader"

func main() {
	var (
		traceNo     int64
		rangeArgs   []string
		strict      bool
		segyioNames bool
	)

	cmd := &cobra.Command{
		Use:   toolName + " [-t N | -r START STOP STEP] [--strict] [--segyio-names] FILE",
		Short: "Print recognised trace-header fields for selected traces",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0], traceNo, rangeArgs, strict, segyioNames)
		},
	}

	cmd.Flags().Int64VarP(&traceNo, "trace", "t", -1, "print only trace N")
	cmd.Flags().StringSliceVarP(&rangeArgs, "range", "r", nil, "print traces START,STOP,STEP")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on the first unreadable trace instead of skipping it")
	cmd.Flags().BoolVar(&segyioNames, "segyio-names", false, "label fields with segyio-style names instead of offsets")

	if err := cmd.Execute(); err != nil {
		cliutil.Fail(toolName, err)
	}
}

func run(path string, traceNo int64, rangeArgs []string, strict, segyioNames bool) error {
	h, err := file.Open(path, "r")
	if err != nil {
		return err
	}
	defer h.Close()

	binHeader := make([]byte, header.BinaryHeaderSize)
	if _, err := h.ReadAt(header.BinaryHeaderStart, binHeader); err != nil {
		return err
	}

	tio, err := trace.New(h, binHeader)
	if err != nil {
		return err
	}

	start, stop, step, err := resolveRange(traceNo, rangeArgs, int64(tio.Params().TraceCount)) //nolint:gosec // trace counts fit in int64
	if err != nil {
		return err
	}

	offsets := make([]int, 0, len(header.TraceFieldNames))
	for off := range header.TraceFieldNames {
		offsets = append(offsets, off)
	}

	slices.Sort(offsets)

	for n := start; n != stop; n += step {
		if err := catOne(tio, uint64(n), offsets, segyioNames); err != nil { //nolint:gosec // n is bounds-checked by resolveRange
			if strict {
				return fmt.Errorf("trace %d: %w", n, err)
			}

			fmt.Fprintf(os.Stderr, "%s: trace %d: %v\n", toolName, n, err)
		}
	}

	return nil
}

// resolveRange turns the mutually exclusive -t/-r flags into a half-open
// [start, stop) iteration with the given step. -t N is equivalent to
// -r N,N+1,1. With neither flag set, it defaults to every trace.
func resolveRange(traceNo int64, rangeArgs []string, traceCount int64) (start, stop, step int64, err error) {
	switch {
	case traceNo >= 0 && len(rangeArgs) > 0:
		return 0, 0, 0, fmt.Errorf("%s: -t and -r are mutually exclusive", toolName)
	case traceNo >= 0:
		return traceNo, traceNo + 1, 1, nil
	case len(rangeArgs) > 0:
		if len(rangeArgs) != 3 {
			return 0, 0, 0, fmt.Errorf("%s: -r takes exactly START,STOP,STEP", toolName)
		}

		var vals [3]int64
		for i, s := range rangeArgs {
			if _, err := fmt.Sscanf(s, "%d", &vals[i]); err != nil {
				return 0, 0, 0, fmt.Errorf("%s: -r: %q is not an integer", toolName, s)
			}
		}

		if vals[2] == 0 {
			return 0, 0, 0, fmt.Errorf("%s: -r: step cannot be 0", toolName)
		}

		return vals[0], vals[1], vals[2], nil
	default:
		return 0, traceCount, 1, nil
	}
}

func catOne(tio *trace.IO, traceNo uint64, offsets []int, segyioNames bool) error {
	buf, err := tio.ReadTraceHeader(traceNo)
	if err != nil {
		return err
	}

	fmt.Printf("=== trace %d ===\n", traceNo)

	for _, off := range offsets {
		v, err := header.GetTraceField(buf, off)
		if err != nil {
			return err
		}

		if segyioNames {
			fmt.Printf("%-10s = %d\n", header.TraceFieldNames[off], v)
		} else {
			fmt.Printf("%5d = %d\n", off, v)
		}
	}

	return nil
}
