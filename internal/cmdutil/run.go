package cmdutil

import (
	"context"
	"io"
)

// RunStream pulls items from next until io.EOF and hands each to send.
// Cancellation is checked between items. It returns the number of items
// sent and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	next func() (T, error),
	send func(T) error,
) (int, error) {
	total := 0
	for {
		select {
		case <-ctx.Done():
			return total, ctx.Err()
		default:
		}
		item, err := next()
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
		if err := send(item); err != nil {
			return total, err
		}
		total++
	}
}
