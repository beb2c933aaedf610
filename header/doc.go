// Package header provides a field catalogue and accessor layer for the two
// fixed-size SEG-Y headers: two small constant tables that say which byte
// offsets inside a 240-byte trace header or 400-byte binary header are
// recognised fields, plus big-endian get/set accessors gated by those
// tables.
//
// Byte offsets follow the format's on-disk convention: 1-indexed from the
// start of the header (trace header fields) or from the start of the file
// (binary header fields, so "3225" names the Sample Format Code field rather
// than "25"). This package converts to 0-indexed buffer positions internally.
//
// The tables are laid out as contiguous arrays indexed by offset, not maps —
// the dominant access pattern is a known, small, compile-time offset, so an
// array lookup is both the simplest and the fastest option.
package header
