package fasta

import (
	"errors"
	"fmt"
)

// ErrNotIndexable is returned by OpenIndexed for inputs that cannot be
// read at random offsets (stdin, gzip streams).
var ErrNotIndexable = errors.New("fasta: input does not support random access")

// FormatError reports malformed FASTA input. Line is 1-based.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("fasta: line %d: %s", e.Line, e.Msg)
	}
	return "fasta: " + e.Msg
}

// IOError wraps a failure of the underlying stream.
type IOError struct {
	Op   string // open, read, write, close
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("fasta: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("fasta: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
