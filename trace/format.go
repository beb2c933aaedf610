// Package trace implements TraceIO: deriving trace0/trsize/tracecount from
// the binary header, and reading/writing whole or partial traces with
// endianness normalisation on the sample payload.
package trace

import (
	"fmt"

	"github.com/traceio/segy/segyerr"
)

// Format is the on-disk element type of a trace's sample array.
type Format int16

const (
	FormatIBMFloat   Format = 1
	FormatInt32      Format = 2
	FormatInt16      Format = 3
	FormatFixedGain  Format = 4
	FormatIEEEFloat  Format = 5
	FormatInt8       Format = 8
)

// BytesPerSample returns the on-disk width of one sample in format, or
// segyerr.ErrInvalidFormat if format is not one of the six recognised codes.
func BytesPerSample(format Format) (int, error) {
	switch format {
	case FormatIBMFloat, FormatInt32, FormatFixedGain, FormatIEEEFloat:
		return 4, nil
	case FormatInt16:
		return 2, nil
	case FormatInt8:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: sample format code %d", segyerr.ErrInvalidFormat, format)
	}
}
