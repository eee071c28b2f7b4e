// Package pad applies the NN marker to a selected subset of FASTA records.
//
// Selection is by exact id membership only. The transform is deliberately
// not idempotent: a record that is already padded gains another marker on
// every pass.
package pad

import (
	"sort"

	"contigpad-core/fasta"
)

// Marker is prepended and appended to every targeted sequence.
const Marker = "NN"

// Apply returns rec with the marker on both ends when its id is targeted.
// rec itself is never modified; untargeted records are returned as is.
func Apply(rec fasta.Record, targets Targets) (fasta.Record, bool) {
	if !targets.Has(rec.ID) {
		return rec, false
	}
	seq := make([]byte, 0, len(rec.Seq)+2*len(Marker))
	seq = append(seq, Marker...)
	seq = append(seq, rec.Seq...)
	seq = append(seq, Marker...)
	return fasta.Record{ID: rec.ID, Desc: rec.Desc, Seq: seq}, true
}

// Modify applies the marker to every targeted record, preserving order and
// length. Duplicate ids are each evaluated independently.
func Modify(recs []fasta.Record, targets Targets) []fasta.Record {
	out := make([]fasta.Record, len(recs))
	for i, r := range recs {
		out[i], _ = Apply(r, targets)
	}
	return out
}

// Source wraps a fasta.Source and pads targeted records as they stream by.
type Source struct {
	src     fasta.Source
	targets Targets
	seen    map[string]struct{}
	records int
	padded  int
}

func NewSource(src fasta.Source, targets Targets) *Source {
	return &Source{src: src, targets: targets, seen: make(map[string]struct{}, len(targets))}
}

func (s *Source) Read() (fasta.Record, error) {
	rec, err := s.src.Read()
	if err != nil {
		return rec, err
	}
	s.records++
	out, hit := Apply(rec, s.targets)
	if hit {
		s.padded++
		s.seen[rec.ID] = struct{}{}
	}
	return out, nil
}

// Records is the number of records read so far.
func (s *Source) Records() int { return s.records }

// Padded is the number of records that received the marker.
func (s *Source) Padded() int { return s.padded }

// Unmatched lists targets not seen so far, sorted.
func (s *Source) Unmatched() []string {
	var out []string
	for id := range s.targets {
		if _, ok := s.seen[id]; !ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
