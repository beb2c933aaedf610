package file

// backing is the strategy interface a Handle delegates actual I/O to: one
// implementation for buffered stream access, one for a memory mapping.
// Capability-gating a ReadableFile/WritableFile split (per the design notes
// this module follows) happens one level up, in Handle itself, since both
// backings support both directions and only the open mode restricts writes.
type backing interface {
	readAt(buf []byte, offset int64) (int, error)
	writeAt(buf []byte, offset int64) (int, error)
	size() (int64, error)
	flush(async bool) error
	close() error
}
