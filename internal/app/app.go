// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"contigpad-core/fasta"
	"contigpad-core/pad"
	"contigpad/internal/cli"
	"contigpad/internal/cmdutil"
	"contigpad/internal/config"
	"contigpad/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad arguments or malformed input
	ExitIO       = 3
	ExitCanceled = 130
)

// RunContext parses argv, runs one padding pass and returns the process
// exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := cli.NewCommand(func(cmd *cobra.Command, cfg config.Config) error {
		logger, err := cmdutil.NewLogger(stderr, cfg.LogLevel, cfg.Quiet)
		if err != nil {
			return &cli.UsageError{Err: err}
		}
		return Execute(cmd.Context(), cfg, stdout, logger)
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	code := exitCode(err)
	if code != ExitOK {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		var ue *cli.UsageError
		if errors.As(err, &ue) {
			_, _ = fmt.Fprint(stderr, cmd.UsageString())
		}
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// Execute reads cfg.Input, pads the records listed in cfg.Sequences and
// writes everything to cfg.Output. File outputs are only committed once
// every record has been written.
func Execute(ctx context.Context, cfg config.Config, stdout io.Writer, logger *log.Logger) error {
	targets, err := loadTargets(cfg.Sequences)
	if err != nil {
		return err
	}
	logger.Info("starting",
		"input", cfg.Input, "output", cfg.Output, "strategy", cfg.Strategy,
		"wrap", cfg.Wrap, "targets", len(targets))

	src, closeSrc, err := openSource(cfg, logger)
	if err != nil {
		return err
	}
	defer closeSrc()

	out, err := writers.Create(cfg.Output, stdout)
	if err != nil {
		return err
	}
	defer out.Abort()

	ps := pad.NewSource(src, targets)
	fw := fasta.NewWriter(out, cfg.Wrap)
	// stdout cannot be rolled back; keep it on record boundaries.
	fw.SetFlushEach(!out.Staged())
	n, err := cmdutil.RunStream(ctx, ps.Read, fw.Write)
	if err != nil {
		return err
	}
	if err := fw.Flush(); err != nil {
		return err
	}
	if err := out.Commit(); err != nil {
		return err
	}

	unmatched := ps.Unmatched()
	for _, id := range unmatched {
		logger.Warn("target not found in input", "id", id)
	}
	logger.Info("done", "records", n, "padded", ps.Padded(), "unmatched", len(unmatched))
	return nil
}

func loadTargets(path string) (pad.Targets, error) {
	if path == "-" {
		t, err := pad.LoadTargets(os.Stdin)
		if err != nil {
			return nil, &fasta.IOError{Op: "read", Path: "stdin", Err: err}
		}
		return t, nil
	}
	t, err := pad.LoadTargetsFile(path)
	if err != nil {
		return nil, &fasta.IOError{Op: "read", Path: path, Err: err}
	}
	return t, nil
}

// openSource builds the record source for cfg.Strategy. The eager and
// indexed strategies validate the whole input before returning.
func openSource(cfg config.Config, logger *log.Logger) (fasta.Source, func(), error) {
	strategy := cfg.Strategy
	if strategy == config.StrategyIndexed {
		f, err := fasta.OpenIndexed(cfg.Input)
		switch {
		case err == nil:
			logger.Debug("indexed input", "records", f.Index().Len())
			return f, func() { _ = f.Close() }, nil
		case errors.Is(err, fasta.ErrNotIndexable):
			logger.Warn("input does not support random access; reading it eagerly", "input", cfg.Input)
			strategy = config.StrategyEager
		default:
			return nil, nil, err
		}
	}

	rc, err := fasta.Open(cfg.Input)
	if err != nil {
		return nil, nil, err
	}
	if strategy == config.StrategyEager {
		defer func() { _ = rc.Close() }()
		recs, err := fasta.ReadAll(rc)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("loaded input", "records", len(recs))
		return fasta.NewSliceReader(recs), func() {}, nil
	}
	return fasta.NewReader(rc), func() { _ = rc.Close() }, nil
}

func exitCode(err error) int {
	var (
		ue *cli.UsageError
		fe *fasta.FormatError
	)
	switch {
	case err == nil:
		return ExitOK
	case writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.As(err, &ue), errors.As(err, &fe):
		return ExitUsage
	default:
		return ExitIO
	}
}
