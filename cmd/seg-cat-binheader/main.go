// Command seg-cat-binheader prints every recognised field of a SEG-Y
// binary header, labelled with its Seismic-Unix short name.
package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/traceio/segy/file"
	"github.com/traceio/segy/header"
	"github.com/traceio/segy/internal/cliutil"
)

const toolName = "seg-cat-binheader"

func main() {
	cmd := &cobra.Command{
		Use:   toolName + " FILE...",
		Short: "Print every recognised binary-header field",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args)
		},
	}

	if err := cmd.Execute(); err != nil {
		cliutil.Fail(toolName, err)
	}
}

func run(paths []string) error {
	offsets := make([]int, 0, len(header.BinaryFieldNames))
	for off := range header.BinaryFieldNames {
		offsets = append(offsets, off)
	}

	slices.Sort(offsets)

	for _, path := range paths {
		if err := catOne(path, offsets); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s: %v\n", toolName, path, err)
		}
	}

	return nil
}

func catOne(path string, offsets []int) error {
	h, err := file.Open(path, "r")
	if err != nil {
		return err
	}
	defer h.Close()

	binHeader := make([]byte, header.BinaryHeaderSize)
	if _, err := h.ReadAt(header.BinaryHeaderStart, binHeader); err != nil {
		return err
	}

	fmt.Printf("=== %s ===\n", path)

	for _, off := range offsets {
		v, err := header.GetBinaryField(binHeader, off)
		if err != nil {
			return err
		}

		fmt.Printf("%-10s %5d = %d\n", header.BinaryFieldNames[off], off, v)
	}

	return nil
}
