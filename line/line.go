// Package line implements LineIO: strided read/write of an inline or
// crossline across one offset plane. It composes a trace.IO with the
// stride/offsets values a geometry.Geometry already worked out, iterating
// and concatenating each member trace's payload rather than holding its
// own copy of them.
package line

import (
	"fmt"

	"github.com/traceio/segy/internal/pool"
	"github.com/traceio/segy/segyerr"
	"github.com/traceio/segy/trace"
)

// Read concatenates the sample payloads of lineLength traces, starting at
// firstTrace and advancing stride*offsets traces at each step, in their raw
// on-wire form. Call trace.IO.ToNative on the result to decode samples.
//
// The accumulation buffer is drawn from the shared line-buffer pool to
// avoid repeated reallocation while the line grows; the slice returned to
// the caller is a fresh copy, so the pooled buffer is safe to reuse as soon
// as Read returns.
func Read(tio *trace.IO, firstTrace uint64, lineLength int, stride, offsets uint32) ([]byte, error) {
	if lineLength <= 0 {
		return nil, fmt.Errorf("%w: line length must be > 0, got %d", segyerr.ErrInvalidArgs, lineLength)
	}

	step := uint64(stride) * uint64(offsets)

	bps, err := trace.BytesPerSample(tio.Params().Format)
	if err != nil {
		return nil, err
	}

	samples := int(tio.Params().Samples)

	bb := pool.GetLineBuffer()
	defer pool.PutLineBuffer(bb)

	bb.Grow(lineLength * samples * bps)

	traceNo := firstTrace
	for i := 0; i < lineLength; i++ {
		buf, err := tio.ReadTrace(traceNo)
		if err != nil {
			return nil, fmt.Errorf("line: trace %d of %d: %w", i, lineLength, err)
		}

		bb.MustWrite(buf)
		traceNo += step
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}

// Write is the inverse of Read: it splits buf (already in on-wire form, e.g.
// via trace.IO.FromNative) into lineLength equal trace payloads and writes
// each at firstTrace, firstTrace+stride*offsets, ....
func Write(tio *trace.IO, firstTrace uint64, lineLength int, stride, offsets uint32, buf []byte) error {
	if lineLength <= 0 {
		return fmt.Errorf("%w: line length must be > 0, got %d", segyerr.ErrInvalidArgs, lineLength)
	}

	bps, err := trace.BytesPerSample(tio.Params().Format)
	if err != nil {
		return err
	}

	traceSize := int(tio.Params().Samples) * bps
	if len(buf) != lineLength*traceSize {
		return fmt.Errorf("%w: line payload must be %d bytes, got %d", segyerr.ErrInvalidArgs, lineLength*traceSize, len(buf))
	}

	step := uint64(stride) * uint64(offsets)

	traceNo := firstTrace
	for i := 0; i < lineLength; i++ {
		chunk := buf[i*traceSize : (i+1)*traceSize]

		if err := tio.WriteTrace(traceNo, chunk); err != nil {
			return fmt.Errorf("line: trace %d of %d: %w", i, lineLength, err)
		}

		traceNo += step
	}

	return nil
}
