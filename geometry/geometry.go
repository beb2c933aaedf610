// Package geometry implements GeometryEngine: reverse-engineering the layout
// of a 3-D or 4-D survey purely from trace-header fields, with no external
// manifest to consult. Every algorithm here mirrors a scan-then-decide shape
// similar to an index-building-by-scan pass over a fixed-width collection.
package geometry

import (
	"fmt"
	"math"

	"github.com/traceio/segy/header"
	"github.com/traceio/segy/segyerr"
	"github.com/traceio/segy/trace"
)

// Sorting is the major axis along which traces are laid out on disk.
type Sorting int

const (
	InlineSorted Sorting = iota
	CrosslineSorted
)

func (s Sorting) String() string {
	if s == InlineSorted {
		return "inline"
	}

	return "crossline"
}

// Geometry is the full set of values the engine infers about a survey.
type Geometry struct {
	Sorting          Sorting
	Offsets          uint32
	Ilines           uint32
	Xlines           uint32
	ILStride         uint32
	XLStride         uint32
	InlineIndices    []int32
	CrosslineIndices []int32
	OffsetIndices    []int32
	Rotation         float32
}

// Fields names the three trace-header byte offsets the engine consults:
// inline number, crossline number, and offset.
type Fields struct {
	Inline    int
	Crossline int
	Offset    int
}

func readTriple(tio *trace.IO, f Fields, traceNo uint64) (il, xl, off int32, err error) {
	h, err := tio.ReadTraceHeader(traceNo)
	if err != nil {
		return 0, 0, 0, err
	}

	il, err = header.GetTraceField(h, f.Inline)
	if err != nil {
		return 0, 0, 0, err
	}

	xl, err = header.GetTraceField(h, f.Crossline)
	if err != nil {
		return 0, 0, 0, err
	}

	off, err = header.GetTraceField(h, f.Offset)
	if err != nil {
		return 0, 0, 0, err
	}

	return il, xl, off, nil
}

// Infer derives a complete Geometry for tio's survey using header fields f.
func Infer(tio *trace.IO, f Fields) (*Geometry, error) {
	tracecount := tio.Params().TraceCount
	if tracecount == 0 {
		return nil, fmt.Errorf("%w: no traces", segyerr.ErrInvalidOffsets)
	}

	sorting, err := inferSorting(tio, f, tracecount)
	if err != nil {
		return nil, err
	}

	il0, xl0, _, err := readTriple(tio, f, 0)
	if err != nil {
		return nil, err
	}

	offsets, err := inferOffsets(tio, f, il0, xl0, tracecount)
	if err != nil {
		return nil, err
	}

	offsetIndices, err := lineIndices(tio, f.Offset, 0, 1, int(offsets))
	if err != nil {
		return nil, err
	}

	// The axis that cycles fastest from one trace to the next is crossline
	// for an inline-sorted file, inline for a crossline-sorted one.
	countField := f.Crossline
	if sorting == CrosslineSorted {
		countField = f.Inline
	}

	blockCount, cycleCount, err := countLines(tio, countField, f.Offset, offsets, tracecount)
	if err != nil {
		return nil, err
	}

	g := &Geometry{Sorting: sorting, Offsets: offsets, OffsetIndices: offsetIndices}

	if sorting == InlineSorted {
		g.Ilines, g.Xlines = blockCount, cycleCount
		g.ILStride, g.XLStride = 1, g.Xlines

		g.CrosslineIndices, err = lineIndices(tio, f.Crossline, 0, int64(offsets), int(g.Xlines))
		if err != nil {
			return nil, err
		}

		g.InlineIndices, err = lineIndices(tio, f.Inline, 0, int64(g.Xlines)*int64(offsets), int(g.Ilines))
		if err != nil {
			return nil, err
		}
	} else {
		g.Ilines, g.Xlines = cycleCount, blockCount
		g.ILStride, g.XLStride = g.Ilines, 1

		g.InlineIndices, err = lineIndices(tio, f.Inline, 0, int64(offsets), int(g.Ilines))
		if err != nil {
			return nil, err
		}

		g.CrosslineIndices, err = lineIndices(tio, f.Crossline, 0, int64(g.Ilines)*int64(offsets), int(g.Xlines))
		if err != nil {
			return nil, err
		}
	}

	rotation, err := computeRotation(tio, g)
	if err != nil {
		return nil, err
	}

	g.Rotation = rotation

	if uint64(g.Ilines)*uint64(g.Xlines)*uint64(g.Offsets) != tracecount {
		return nil, fmt.Errorf("%w: ilines*xlines*offsets (%d*%d*%d) != tracecount %d",
			segyerr.ErrInvalidOffsets, g.Ilines, g.Xlines, g.Offsets, tracecount)
	}

	return g, nil
}

// inferSorting walks forward from trace 1 while the offset field keeps
// changing (cycling through an offset gather), stopping as soon as it
// returns to off0 or the file ends. That trace's (il, xl) is compared
// against trace 0 and the file's last trace to settle which axis is slow.
func inferSorting(tio *trace.IO, f Fields, tracecount uint64) (Sorting, error) {
	il0, xl0, off0, err := readTriple(tio, f, 0)
	if err != nil {
		return 0, err
	}

	il1, xl1 := il0, xl0

	if tracecount > 1 {
		off1 := off0
		traceno := uint64(1)

		for {
			il, xl, off, err := readTriple(tio, f, traceno)
			if err != nil {
				return 0, err
			}

			il1, xl1, off1 = il, xl, off
			traceno++

			if off0 == off1 || traceno >= tracecount {
				break
			}
		}
	}

	ilLast, xlLast, _, err := readTriple(tio, f, tracecount-1)
	if err != nil {
		return 0, err
	}

	switch {
	case il0 == ilLast:
		return CrosslineSorted, nil
	case xl0 == xlLast:
		return InlineSorted, nil
	case il0 == il1:
		return InlineSorted, nil
	case xl0 == xl1:
		return CrosslineSorted, nil
	default:
		return 0, fmt.Errorf("%w: cannot determine sorting from trace headers", segyerr.ErrInvalidSorting)
	}
}

func inferOffsets(tio *trace.IO, f Fields, il0, xl0 int32, tracecount uint64) (uint32, error) {
	if tracecount == 1 {
		return 1, nil
	}

	var count uint64
	for count = 0; count < tracecount; count++ {
		il, xl, _, err := readTriple(tio, f, count)
		if err != nil {
			return 0, err
		}

		if il != il0 || xl != xl0 {
			break
		}
	}

	if count == 0 {
		return 0, fmt.Errorf("%w: offsets count derived as 0", segyerr.ErrInvalidOffsets)
	}

	return uint32(count), nil //nolint:gosec // count is bounded by tracecount
}

// countLines steps through cells (groups of offsets consecutive traces) by
// reading field at the start of each, until it returns to field's starting
// value at offset index 0 again. cycleCount is the number of cells in that
// period — the size of field's own axis. blockCount is how many such cycles
// fit in the whole file, i.e. the size of the other axis.
func countLines(tio *trace.IO, field, offField int, offsets uint32, tracecount uint64) (blockCount, cycleCount uint32, err error) {
	h0, err := tio.ReadTraceHeader(0)
	if err != nil {
		return 0, 0, err
	}

	ln0, err := header.GetTraceField(h0, field)
	if err != nil {
		return 0, 0, err
	}

	off0, err := header.GetTraceField(h0, offField)
	if err != nil {
		return 0, 0, err
	}

	cycleCount = 1

	for pos := uint64(offsets); pos < tracecount; pos += uint64(offsets) {
		h, err := tio.ReadTraceHeader(pos)
		if err != nil {
			return 0, 0, err
		}

		ln, err := header.GetTraceField(h, field)
		if err != nil {
			return 0, 0, err
		}

		off, err := header.GetTraceField(h, offField)
		if err != nil {
			return 0, 0, err
		}

		if ln == ln0 && off == off0 {
			break
		}

		cycleCount++
	}

	denom := uint64(cycleCount) * uint64(offsets)
	if denom == 0 || tracecount%denom != 0 {
		return 0, 0, fmt.Errorf("%w: tracecount %d not divisible by cycle_count*offsets (%d)", segyerr.ErrInvalidOffsets, tracecount, denom)
	}

	blockCount = uint32(tracecount / denom) //nolint:gosec // bounded by tracecount

	return blockCount, cycleCount, nil
}

func lineIndices(tio *trace.IO, field int, startTrace, stride int64, n int) ([]int32, error) {
	out := make([]int32, 0, n)

	for i := 0; i < n; i++ {
		traceNo := startTrace + int64(i)*stride
		h, err := tio.ReadTraceHeader(uint64(traceNo)) //nolint:gosec // caller-bounded
		if err != nil {
			return nil, err
		}

		v, err := header.GetTraceField(h, field)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

// LineTrace0 finds the first trace number (at offset index 0) of the line
// identified by lineno within linenos, given the stride along that axis.
func LineTrace0(lineno int32, length int, stride, offsets uint32, linenos []int32) (uint32, error) {
	idx := -1

	for i, v := range linenos {
		if v == lineno {
			idx = i

			break
		}
	}

	if idx == -1 {
		return 0, fmt.Errorf("%w: line %d not found", segyerr.ErrMissingLineIndex, lineno)
	}

	var first uint32
	if stride == 1 {
		first = uint32(idx * length) //nolint:gosec // bounded by survey size
	} else {
		first = uint32(idx) //nolint:gosec // bounded by survey size
	}

	return first * offsets, nil
}

// computeRotation reads the first and last trace of the first inline (the
// inline found at index 0 of InlineIndices) and derives the clockwise angle
// from north (+CDP_Y) to that line's direction.
func computeRotation(tio *trace.IO, g *Geometry) (float32, error) {
	if len(g.InlineIndices) == 0 {
		return 0, nil
	}

	firstLineStart, err := LineTrace0(g.InlineIndices[0], int(g.Xlines), g.ILStride, g.Offsets, g.InlineIndices)
	if err != nil {
		return 0, err
	}

	firstHeader, err := tio.ReadTraceHeader(uint64(firstLineStart))
	if err != nil {
		return 0, err
	}

	lastIdx := firstLineStart + uint32(int(g.Xlines)-1)*g.ILStride*g.Offsets
	lastHeader, err := tio.ReadTraceHeader(uint64(lastIdx))
	if err != nil {
		return 0, err
	}

	x0, err := header.GetTraceField(firstHeader, header.TrCdpX)
	if err != nil {
		return 0, err
	}

	y0, err := header.GetTraceField(firstHeader, header.TrCdpY)
	if err != nil {
		return 0, err
	}

	x1, err := header.GetTraceField(lastHeader, header.TrCdpX)
	if err != nil {
		return 0, err
	}

	y1, err := header.GetTraceField(lastHeader, header.TrCdpY)
	if err != nil {
		return 0, err
	}

	dx := float64(x1 - x0)
	dy := float64(y1 - y0)

	angle := math.Atan2(dx, dy) // clockwise from north (+Y): swap args vs. standard atan2(y,x)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return float32(angle), nil
}
