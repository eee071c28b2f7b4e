package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contigpad-core/fasta"
	"contigpad/internal/cli"
	"contigpad/internal/config"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitOK},
		{"broken pipe", &fasta.IOError{Op: "write", Err: syscall.EPIPE}, ExitOK},
		{"canceled", fmt.Errorf("run: %w", context.Canceled), ExitCanceled},
		{"usage", &cli.UsageError{Err: errors.New("bad flag")}, ExitUsage},
		{"format", &fasta.FormatError{Line: 1, Msg: "x"}, ExitUsage},
		{"io", &fasta.IOError{Op: "open", Path: "a.fa", Err: errors.New("denied")}, ExitIO},
		{"other", errors.New("?"), ExitIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestBrokenStdoutIsNotAFailure(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		Input:     writeTemp(t, dir, "in.fa", ">a\nACGT\n"),
		Output:    "-",
		Sequences: writeTemp(t, dir, "ids.txt", "a\n"),
		Wrap:      60,
		Strategy:  config.StrategyStream,
		LogLevel:  "info",
	}
	err := Execute(context.Background(), cfg, brokenPipe{}, log.New(io.Discard))
	require.Error(t, err)
	assert.Equal(t, ExitOK, exitCode(err))
}

func TestIndexedFallbackIsLogged(t *testing.T) {
	// Fake stdin by swapping os.Stdin
	orig := os.Stdin
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r
	defer func() { os.Stdin = orig }()
	go func() {
		_, _ = io.WriteString(w, ">a\nAC\n>b\nGT\n")
		_ = w.Close()
	}()

	var logs bytes.Buffer
	cfg := config.Config{Input: "-", Strategy: config.StrategyIndexed}
	src, closeSrc, err := openSource(cfg, log.New(&logs))
	require.NoError(t, err)
	defer closeSrc()

	assert.IsType(t, &fasta.SliceReader{}, src)
	assert.Contains(t, logs.String(), "reading it eagerly")
	rec, err := src.Read()
	require.NoError(t, err)
	assert.Equal(t, "a", rec.ID)
}

func writeTemp(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}
