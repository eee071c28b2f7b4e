package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counter(n int) func() (int, error) {
	i := 0
	return func() (int, error) {
		if i >= n {
			return 0, io.EOF
		}
		i++
		return i, nil
	}
}

func TestRunStream(t *testing.T) {
	var got []int
	n, err := RunStream(context.Background(), counter(3), func(x int) error {
		got = append(got, x)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestRunStreamStopsOnSendError(t *testing.T) {
	boom := errors.New("boom")
	n, err := RunStream(context.Background(), counter(5), func(x int) error {
		if x == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, n)
}

func TestRunStreamCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := RunStream(ctx, counter(5), func(int) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(&buf, "warn", false)
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, l.GetLevel())

	l, err = NewLogger(&buf, "debug", true)
	require.NoError(t, err)
	assert.Equal(t, log.ErrorLevel, l.GetLevel())

	l, err = NewLogger(&buf, "", false)
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, l.GetLevel())

	_, err = NewLogger(&buf, "chatty", false)
	assert.Error(t, err)
}
