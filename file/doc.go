// Package file implements FileHandle: the component that owns the
// underlying byte stream for a SEG-Y file, in either of two interchangeable
// backing modes chosen at open time.
//
// Stream mode wraps an *os.File and uses ReadAt/WriteAt for every access;
// Go's standard library already fuses seek with read/write using 64-bit
// offsets, so the chunked-seek workaround older C implementations need on
// 32-bit platforms has no Go equivalent here. Mmap mode maps the file into
// the process address space via golang.org/x/sys/unix.Mmap (build-tagged to platforms
// that support it) and turns reads/writes into memcpy.
package file
