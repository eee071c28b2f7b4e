package writers

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"contigpad-core/fasta"
)

// Output is a destination that only becomes visible on Commit.
type Output struct {
	io.Writer
	path string
	tmp  *os.File
	gz   *gzip.Writer
	done bool
}

// Create opens path for writing. "-" writes to stdout directly; any other
// path is staged in a temp file in the same directory.
func Create(path string, stdout io.Writer) (*Output, error) {
	if path == "-" {
		return &Output{Writer: stdout, path: path}, nil
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return nil, &fasta.IOError{Op: "open", Path: path, Err: err}
	}
	o := &Output{Writer: tmp, path: path, tmp: tmp}
	if strings.HasSuffix(path, ".gz") {
		o.gz = gzip.NewWriter(tmp)
		o.Writer = o.gz
	}
	return o, nil
}

// Staged reports whether writes are held back until Commit. Unstaged
// outputs (stdout) see every byte as soon as it is flushed.
func (o *Output) Staged() bool { return o.tmp != nil }

// Commit finishes the output and moves it into place.
func (o *Output) Commit() error {
	if o.done || o.tmp == nil {
		o.done = true
		return nil
	}
	o.done = true
	var err error
	if o.gz != nil {
		err = o.gz.Close()
	}
	err = errors.Join(err, o.tmp.Chmod(0o644), o.tmp.Close())
	if err == nil {
		err = os.Rename(o.tmp.Name(), o.path)
	}
	if err != nil {
		_ = os.Remove(o.tmp.Name())
		return &fasta.IOError{Op: "write", Path: o.path, Err: err}
	}
	return nil
}

// Abort discards a staged output. It is a no-op after Commit.
func (o *Output) Abort() {
	if o.done || o.tmp == nil {
		o.done = true
		return
	}
	o.done = true
	_ = o.tmp.Close()
	_ = os.Remove(o.tmp.Name())
}
