// internal/cli/options.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"contigpad-core/fasta"
	"contigpad/internal/config"
	"contigpad/internal/version"
)

// UsageError marks errors caused by bad arguments or settings.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// RunFunc receives the validated settings for one run.
type RunFunc func(cmd *cobra.Command, cfg config.Config) error

// NewCommand returns the root command. Each call builds its own Viper
// instance so runs share no state.
func NewCommand(run RunFunc) *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	cmd := &cobra.Command{
		Use:   "contigpad -i INPUT -o OUTPUT -s IDS",
		Short: "Add 'NN' to the start and end of selected FASTA records",
		Long: `Reads a FASTA file, pads every record whose id is listed in the
sequences file with NN on both ends, and writes all records back in their
original order. Records not listed pass through unchanged.

Settings may also come from CONTIGPAD_* environment variables or a
config file (--config).`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &UsageError{Err: fmt.Errorf("unexpected argument %q", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return &UsageError{Err: err}
			}
			return run(cmd, cfg)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	registerFlags(cmd.Flags())
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}
	return cmd
}

func registerFlags(f *pflag.FlagSet) {
	// File input / output
	f.StringP("input", "i", "", "input FASTA file ('-' = stdin, gzip accepted) [*]")
	f.StringP("output", "o", "", "output FASTA file ('-' = stdout, .gz compresses) [*]")
	f.StringP("sequences", "s", "", "file with record ids to modify, one per line [*]")

	// Format / strategy
	f.IntP("wrap", "w", fasta.DefaultWidth, "sequence line width (0 = no wrapping)")
	f.String("strategy", config.StrategyStream, "record source: stream | eager | indexed")

	// Ambient
	f.String("config", "", "config file (yaml, toml or json)")
	f.String("log-level", "info", "log level: debug | info | warn | error")
	f.BoolP("quiet", "q", false, "only log errors")
}
