// Package segyerr defines the flat error-code taxonomy shared by every
// package in this module.
//
// Every exported function that can fail returns a plain Go error; callers
// probe the taxonomy with errors.Is against the sentinels below. No package
// in this module panics for a caller-reachable failure — panics are reserved
// for programmer errors such as invalid buffer slicing.
package segyerr

import "errors"

// Code is a numbered, wire-visible error kind.
type Code uint8

const (
	OK                Code = 0
	OpenError         Code = 1
	SeekError         Code = 2
	ReadError         Code = 3
	WriteError        Code = 4
	InvalidField      Code = 5
	InvalidSorting    Code = 6
	MissingLineIndex  Code = 7
	InvalidOffsets    Code = 8
	TraceSizeMismatch Code = 9
	InvalidArgs       Code = 10
	MmapError         Code = 11
	MmapInvalid       Code = 12
	ReadOnly          Code = 13
	NotFound          Code = 14
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case OpenError:
		return "OpenError"
	case SeekError:
		return "SeekError"
	case ReadError:
		return "ReadError"
	case WriteError:
		return "WriteError"
	case InvalidField:
		return "InvalidField"
	case InvalidSorting:
		return "InvalidSorting"
	case MissingLineIndex:
		return "MissingLineIndex"
	case InvalidOffsets:
		return "InvalidOffsets"
	case TraceSizeMismatch:
		return "TraceSizeMismatch"
	case InvalidArgs:
		return "InvalidArgs"
	case MmapError:
		return "MmapError"
	case MmapInvalid:
		return "MmapInvalid"
	case ReadOnly:
		return "ReadOnly"
	case NotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// Sentinel errors, one per Code. Wrap with fmt.Errorf("%w: ...", ErrXxx) to
// add context without losing errors.Is compatibility.
var (
	ErrOpen              = errors.New("segy: open error")
	ErrSeek              = errors.New("segy: seek error")
	ErrRead              = errors.New("segy: read error")
	ErrWrite             = errors.New("segy: write error")
	ErrInvalidField      = errors.New("segy: invalid field")
	ErrInvalidSorting    = errors.New("segy: invalid sorting")
	ErrMissingLineIndex  = errors.New("segy: missing line index")
	ErrInvalidOffsets    = errors.New("segy: invalid offsets")
	ErrTraceSizeMismatch = errors.New("segy: trace size mismatch")
	ErrInvalidArgs       = errors.New("segy: invalid arguments")
	ErrMmap              = errors.New("segy: mmap error")
	ErrMmapInvalid       = errors.New("segy: mmap invalid")
	ErrReadOnly          = errors.New("segy: read-only handle")
	ErrNotFound          = errors.New("segy: not found")
	ErrInvalidFormat     = errors.New("segy: invalid sample format")
	ErrIntervalUnknown   = errors.New("segy: sample interval unknown")
	ErrClosed            = errors.New("segy: handle already closed")
)

// CodeOf maps a sentinel (or an error wrapping one) to its wire Code.
// A nil err maps to OK, true; an error matching no sentinel returns OK, false.
func CodeOf(err error) (Code, bool) {
	if err == nil {
		return OK, true
	}

	switch {
	case errors.Is(err, ErrOpen):
		return OpenError, true
	case errors.Is(err, ErrSeek):
		return SeekError, true
	case errors.Is(err, ErrRead):
		return ReadError, true
	case errors.Is(err, ErrWrite):
		return WriteError, true
	case errors.Is(err, ErrInvalidField):
		return InvalidField, true
	case errors.Is(err, ErrInvalidSorting):
		return InvalidSorting, true
	case errors.Is(err, ErrMissingLineIndex):
		return MissingLineIndex, true
	case errors.Is(err, ErrInvalidOffsets):
		return InvalidOffsets, true
	case errors.Is(err, ErrTraceSizeMismatch):
		return TraceSizeMismatch, true
	case errors.Is(err, ErrInvalidArgs):
		return InvalidArgs, true
	case errors.Is(err, ErrMmap):
		return MmapError, true
	case errors.Is(err, ErrMmapInvalid):
		return MmapInvalid, true
	case errors.Is(err, ErrReadOnly):
		return ReadOnly, true
	case errors.Is(err, ErrNotFound):
		return NotFound, true
	default:
		return OK, false
	}
}
