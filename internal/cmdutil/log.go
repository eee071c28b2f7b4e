// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the per-run logger. quiet raises the level to error
// regardless of level.
func NewLogger(dst io.Writer, level string, quiet bool) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		var err error
		if lvl, err = log.ParseLevel(level); err != nil {
			return nil, err
		}
	}
	if quiet && lvl < log.ErrorLevel {
		lvl = log.ErrorLevel
	}
	return log.NewWithOptions(dst, log.Options{
		Level:           lvl,
		Prefix:          "contigpad",
		ReportTimestamp: true,
	}), nil
}
