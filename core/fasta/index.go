// core/fasta/index.go
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/btree"
)

// Entry locates one record inside an indexed file. SeqOff and SeqLen span
// the raw sequence block (line terminators included) that follows the header.
type Entry struct {
	Ord    int // position in file order, 0-based
	ID     string
	Desc   string
	SeqOff int64
	SeqLen int64
}

// FileIndex maps record ids to their byte ranges. Entries are kept ordered by
// file position; the id map only accelerates lookup.
type FileIndex struct {
	entries *btree.BTreeG[Entry]
	byID    map[string]int // first occurrence wins
}

func newFileIndex() *FileIndex {
	return &FileIndex{
		entries: btree.NewG[Entry](32, func(a, b Entry) bool { return a.Ord < b.Ord }),
		byID:    make(map[string]int),
	}
}

// BuildIndex scans r once, validating the format and recording where every
// record's sequence lives. The returned offsets are relative to the start of r.
func BuildIndex(r io.Reader) (*FileIndex, error) {
	idx := newFileIndex()
	br := bufio.NewReaderSize(r, 64*1024)

	var (
		off     int64
		lineNo  int
		cur     *Entry
		started bool
	)
	closeEntry := func(end int64) {
		if cur == nil {
			return
		}
		cur.SeqLen = end - cur.SeqOff
		idx.entries.ReplaceOrInsert(*cur)
		if _, dup := idx.byID[cur.ID]; !dup {
			idx.byID[cur.ID] = cur.Ord
		}
	}

	for {
		raw, err := br.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, &IOError{Op: "read", Err: err}
		}
		if len(raw) == 0 && err == io.EOF {
			break
		}
		start := off
		off += int64(len(raw))
		lineNo++
		if len(raw) > maxLine {
			return nil, &FormatError{Line: lineNo, Msg: "line exceeds 64 MiB"}
		}

		line := bytes.TrimSpace(raw)
		switch {
		case len(line) == 0:
		case raw[0] == '>':
			closeEntry(start)
			id, desc := parseHeader(raw[1:])
			cur = &Entry{Ord: idx.entries.Len(), ID: id, Desc: desc, SeqOff: off}
			started = true
		case !started:
			return nil, &FormatError{Line: lineNo, Msg: "sequence data before first header"}
		case bytes.IndexByte(line, '>') >= 0:
			return nil, &FormatError{Line: lineNo, Msg: "'>' inside sequence data of " + cur.ID}
		}
		if err == io.EOF {
			break
		}
	}
	closeEntry(off)
	return idx, nil
}

// Len reports the number of indexed records.
func (x *FileIndex) Len() int { return x.entries.Len() }

// Lookup returns the first entry with the given id.
func (x *FileIndex) Lookup(id string) (Entry, bool) {
	ord, ok := x.byID[id]
	if !ok {
		return Entry{}, false
	}
	return x.At(ord)
}

// At returns the entry at file position ord.
func (x *FileIndex) At(ord int) (Entry, bool) {
	return x.entries.Get(Entry{Ord: ord})
}

// Ascend calls fn for every entry in file order until fn returns false.
func (x *FileIndex) Ascend(fn func(Entry) bool) { x.entries.Ascend(fn) }

// IDs returns record ids in file order, duplicates included.
func (x *FileIndex) IDs() []string {
	ids := make([]string, 0, x.Len())
	x.Ascend(func(e Entry) bool {
		ids = append(ids, e.ID)
		return true
	})
	return ids
}

// ReaderAtCloser is the random-access handle an IndexedFile owns.
type ReaderAtCloser interface {
	io.ReaderAt
	io.Closer
}

// IndexedFile resolves records on demand from a FileIndex. Read walks the
// index in file order; Resolve looks records up by id.
type IndexedFile struct {
	ra   ReaderAtCloser
	idx  *FileIndex
	next int
	path string
}

// OpenIndexed opens path, indexes it and returns a Source backed by random
// access. The file is closed on every error path; on success the caller
// must Close it. Stdin and gzip inputs yield ErrNotIndexable.
func OpenIndexed(path string) (*IndexedFile, error) {
	if path == "-" {
		return nil, ErrNotIndexable
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	gz, err := sniffGzip(fh, path)
	if err != nil {
		_ = fh.Close()
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	if gz {
		_ = fh.Close()
		return nil, ErrNotIndexable
	}
	idx, err := BuildIndex(fh)
	if err != nil {
		_ = fh.Close()
		var ioe *IOError
		if errors.As(err, &ioe) {
			ioe.Path = path
		}
		return nil, err
	}
	return &IndexedFile{ra: fh, idx: idx, path: path}, nil
}

// NewIndexedFile wraps an already built index over ra.
func NewIndexedFile(ra ReaderAtCloser, idx *FileIndex) *IndexedFile {
	return &IndexedFile{ra: ra, idx: idx}
}

// Index exposes the underlying FileIndex.
func (f *IndexedFile) Index() *FileIndex { return f.idx }

func (f *IndexedFile) Read() (Record, error) {
	e, ok := f.idx.At(f.next)
	if !ok {
		return Record{}, io.EOF
	}
	f.next++
	return f.load(e)
}

// Resolve returns the first record whose id matches.
func (f *IndexedFile) Resolve(id string) (Record, error) {
	e, ok := f.idx.Lookup(id)
	if !ok {
		return Record{}, fmt.Errorf("fasta: no record with id %q", id)
	}
	return f.load(e)
}

func (f *IndexedFile) load(e Entry) (Record, error) {
	block := make([]byte, e.SeqLen)
	if n, err := f.ra.ReadAt(block, e.SeqOff); n < len(block) {
		if err == nil || err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return Record{}, &IOError{Op: "read", Path: f.path, Err: err}
	}
	seq := appendSeq(make([]byte, 0, len(block)), block)
	return Record{ID: e.ID, Desc: e.Desc, Seq: seq}, nil
}

func (f *IndexedFile) Close() error {
	if err := f.ra.Close(); err != nil {
		return &IOError{Op: "close", Path: f.path, Err: err}
	}
	return nil
}
