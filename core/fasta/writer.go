// core/fasta/writer.go
package fasta

import (
	"bufio"
	"io"
)

// DefaultWidth is the conventional FASTA line width.
const DefaultWidth = 60

// Writer serializes records as FASTA, wrapping sequence lines at a fixed
// width. A width <= 0 writes each sequence on a single line.
type Writer struct {
	w     *bufio.Writer
	width int
	err   error

	flushEach bool
}

func NewWriter(w io.Writer, width int) *Writer {
	return &Writer{w: bufio.NewWriter(w), width: width}
}

// Write emits one record: a header line followed by zero or more sequence
// lines. Output is buffered; call Flush when done, or use SetFlushEach to
// push every record through as soon as it is complete.
func (w *Writer) Write(rec Record) error {
	if w.err != nil {
		return w.err
	}
	if err := w.writeHeader(rec); err != nil {
		return w.check(err)
	}
	seq := rec.Seq
	step := w.width
	if step <= 0 {
		step = len(seq)
	}
	for len(seq) > 0 {
		n := min(step, len(seq))
		if _, err := w.w.Write(seq[:n]); err != nil {
			return w.check(err)
		}
		if err := w.w.WriteByte('\n'); err != nil {
			return w.check(err)
		}
		seq = seq[n:]
	}
	if w.flushEach {
		return w.check(w.w.Flush())
	}
	return nil
}

func (w *Writer) writeHeader(rec Record) error {
	if err := w.w.WriteByte('>'); err != nil {
		return err
	}
	if _, err := w.w.WriteString(rec.ID); err != nil {
		return err
	}
	if rec.Desc != "" {
		if err := w.w.WriteByte(' '); err != nil {
			return err
		}
		if _, err := w.w.WriteString(rec.Desc); err != nil {
			return err
		}
	}
	return w.w.WriteByte('\n')
}

// SetFlushEach makes Write flush after every record, so the underlying
// writer only ever ends on a record boundary. Use it for unstaged outputs.
func (w *Writer) SetFlushEach(on bool) { w.flushEach = on }

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.check(w.w.Flush())
}

func (w *Writer) check(err error) error {
	if err != nil {
		w.err = &IOError{Op: "write", Err: err}
	}
	return w.err
}

// WriteAll writes recs to w with the given width and flushes.
func WriteAll(w io.Writer, recs []Record, width int) error {
	fw := NewWriter(w, width)
	for _, r := range recs {
		if err := fw.Write(r); err != nil {
			return err
		}
	}
	return fw.Flush()
}
