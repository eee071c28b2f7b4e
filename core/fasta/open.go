// core/fasta/open.go
package fasta

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "-" reads stdin; gzip input is detected
// by magic number (1F 8B) or by .gz suffix and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
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
	if !gz {
		return fh, nil
	}
	gr, err := gzip.NewReader(fh)
	if err != nil {
		_ = fh.Close()
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
}

// sniffGzip peeks at the first two bytes of fh and rewinds it.
func sniffGzip(fh *os.File, path string) (bool, error) {
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	return (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz"), nil
}
