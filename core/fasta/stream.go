// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)

// Reader parses FASTA from an io.Reader one record at a time.
// It is single-pass and not restartable.
type Reader struct {
	sc   *bufio.Scanner
	line int
	hdr  []byte // title of the next record
	next bool   // hdr holds a header not yet returned
	err  error
}

// NewReader returns a streaming Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)
	return &Reader{sc: sc}
}

// Read returns the next record, or io.EOF when the input is exhausted.
// After a non-EOF error every later call returns the same error.
func (r *Reader) Read() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}
	for !r.next {
		raw, ok := r.scan()
		if !ok {
			return Record{}, r.finish()
		}
		line := bytes.TrimSpace(raw)
		if len(line) == 0 {
			continue
		}
		if raw[0] != '>' {
			return Record{}, r.fail(&FormatError{Line: r.line, Msg: "sequence data before first header"})
		}
		r.hdr = append(r.hdr[:0], raw[1:]...)
		r.next = true
	}

	id, desc := parseHeader(r.hdr)
	rec := Record{ID: id, Desc: desc, Seq: []byte{}}
	r.next = false

	for {
		raw, ok := r.scan()
		if !ok {
			if err := r.scanErr(); err != nil {
				return Record{}, r.fail(err)
			}
			return rec, nil
		}
		line := bytes.TrimSpace(raw)
		if len(line) == 0 {
			continue
		}
		if raw[0] == '>' {
			r.hdr = append(r.hdr[:0], raw[1:]...)
			r.next = true
			return rec, nil
		}
		if bytes.IndexByte(line, '>') >= 0 {
			return Record{}, r.fail(&FormatError{Line: r.line, Msg: "'>' inside sequence data of " + rec.ID})
		}
		rec.Seq = appendSeq(rec.Seq, line)
	}
}

func (r *Reader) scan() ([]byte, bool) {
	if !r.sc.Scan() {
		return nil, false
	}
	r.line++
	return r.sc.Bytes(), true
}

func (r *Reader) scanErr() error {
	err := r.sc.Err()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bufio.ErrTooLong):
		return &FormatError{Line: r.line + 1, Msg: "line exceeds 64 MiB"}
	default:
		return &IOError{Op: "read", Err: err}
	}
}

func (r *Reader) finish() error {
	if err := r.scanErr(); err != nil {
		return r.fail(err)
	}
	return io.EOF
}

func (r *Reader) fail(err error) error {
	r.err = err
	return err
}

// ReadAll parses every record in r. Nothing is returned on error, so a
// caller never sees a partially parsed collection.
func ReadAll(r io.Reader) ([]Record, error) {
	fr := NewReader(r)
	var recs []Record
	for {
		rec, err := fr.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}

// appendSeq appends line to seq with ASCII whitespace removed.
func appendSeq(seq, line []byte) []byte {
	if bytes.IndexAny(line, " \t\r\n\v\f") < 0 {
		return append(seq, line...)
	}
	for _, c := range line {
		switch c {
		case ' ', '\t', '\r', '\n', '\v', '\f':
		default:
			seq = append(seq, c)
		}
	}
	return seq
}

// parseHeader splits a header title into its id token and description.
func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i:]))
	}
	return string(hdr), ""
}
