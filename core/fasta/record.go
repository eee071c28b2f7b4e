// core/fasta/record.go
package fasta

import "io"

// Record is one FASTA entry. Seq holds the concatenated sequence lines with
// case preserved and all whitespace removed.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// Header returns the header line without the leading '>'.
func (r Record) Header() string {
	if r.Desc == "" {
		return r.ID
	}
	return r.ID + " " + r.Desc
}

// Source yields records in file order. Read returns io.EOF after the last
// record.
type Source interface {
	Read() (Record, error)
}

// Resolver is implemented by sources that can look a record up by id.
type Resolver interface {
	Resolve(id string) (Record, error)
}

// SliceReader is a Source over records already held in memory.
type SliceReader struct {
	recs []Record
	next int
}

func NewSliceReader(recs []Record) *SliceReader { return &SliceReader{recs: recs} }

func (s *SliceReader) Read() (Record, error) {
	if s.next >= len(s.recs) {
		return Record{}, io.EOF
	}
	r := s.recs[s.next]
	s.next++
	return r, nil
}
