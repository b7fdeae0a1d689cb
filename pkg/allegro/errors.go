package allegro

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyErrors aborts a parse once the recoverable-error ceiling is
	// reached; the file is presumed corrupt.
	ErrTooManyErrors = errors.New("too many parsing errors, file may be corrupted or not a valid netlist")

	// ErrIndexOutOfRange is returned by index-based queries outside [0, Len).
	ErrIndexOutOfRange = errors.New("invalid net index")

	// ErrInvalidIndex is returned when a textual net index is not an integer.
	ErrInvalidIndex = errors.New("net index must be an integer")

	// ErrRefdesNotFound reports a reference designator absent from the net
	// table.
	ErrRefdesNotFound = errors.New("refdes not found in netlist")
)

// SizeExceededError reports an input file larger than the configured
// ceiling. The check runs before any line is read.
type SizeExceededError struct {
	Size int64
	Max  int64
}

func (e *SizeExceededError) Error() string {
	return fmt.Sprintf("file size (%.2f MB) exceeds maximum allowed size (%.2f MB)",
		float64(e.Size)/(1024*1024), float64(e.Max)/(1024*1024))
}

// lineError is a recoverable per-line parse failure. It is counted and
// logged; parsing continues with the next line.
type lineError struct {
	line int
	msg  string
}

func (e *lineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.line, e.msg)
}
