// Command seg-cat-textheader prints a SEG-Y file's textual headers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/traceio/segy/file"
	"github.com/traceio/segy/header"
	"github.com/traceio/segy/internal/cliutil"
	"github.com/traceio/segy/textheader"
)

const toolName = "seg-cat-textheader"

func main() {
	var (
		num    int
		all    bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   toolName + " [--num N | --all] [--strict] FILE...",
		Short: "Print one or more SEG-Y textual headers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args, num, all, strict)
		},
	}

	cmd.Flags().IntVar(&num, "num", -1, "print extended textual header N instead of the primary header")
	cmd.Flags().BoolVar(&all, "all", false, "print the primary header followed by every extended header")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on the first unreadable file instead of continuing")

	if err := cmd.Execute(); err != nil {
		cliutil.Fail(toolName, err)
	}
}

func run(paths []string, num int, all, strict bool) error {
	for _, path := range paths {
		if err := catOne(path, num, all); err != nil {
			if strict {
				return fmt.Errorf("%s: %w", path, err)
			}

			fmt.Fprintf(os.Stderr, "%s: %s: %v\n", toolName, path, err)
		}
	}

	return nil
}

func catOne(path string, num int, all bool) error {
	h, err := file.Open(path, "r")
	if err != nil {
		return err
	}
	defer h.Close()

	binHeader := make([]byte, header.BinaryHeaderSize)
	if _, err := h.ReadAt(header.BinaryHeaderStart, binHeader); err != nil {
		return err
	}

	extHeaders, err := header.GetBinaryField(binHeader, header.BinExtHeaders)
	if err != nil {
		return err
	}

	tio := textheader.New(h, uint32(extHeaders)) //nolint:gosec // ExtHeaders is a small field-width int32

	fmt.Printf("=== %s: primary textual header ===\n", path)

	primary, err := tio.ReadPrimary()
	if err != nil {
		return err
	}

	printCardImage(primary)

	switch {
	case all:
		for i := uint32(0); i < uint32(extHeaders); i++ { //nolint:gosec // ExtHeaders is a small field-width int32
			ext, err := tio.ReadExtended(i)
			if err != nil {
				return err
			}

			fmt.Printf("=== %s: extended textual header %d ===\n", path, i)
			printCardImage(ext)
		}
	case num >= 0:
		ext, err := tio.ReadExtended(uint32(num)) //nolint:gosec // validated by ReadExtended's own range check
		if err != nil {
			return err
		}

		fmt.Printf("=== %s: extended textual header %d ===\n", path, num)
		printCardImage(ext)
	}

	return nil
}

// printCardImage prints a 3200-byte textual header as forty 80-character
// "card image" lines, the conventional textual-header layout.
func printCardImage(buf []byte) {
	const cardWidth = 80

	for off := 0; off+cardWidth <= len(buf); off += cardWidth {
		fmt.Println(string(buf[off : off+cardWidth]))
	}
}
