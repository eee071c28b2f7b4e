// Package config holds the per-run settings decoded from Viper
// (flags, CONTIGPAD_* environment variables and an optional config file).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"contigpad-core/fasta"
)

// Record source strategies.
const (
	StrategyStream  = "stream"
	StrategyEager   = "eager"
	StrategyIndexed = "indexed"
)

// EnvPrefix prefixes every environment variable Viper consults.
const EnvPrefix = "CONTIGPAD"

// Config is the root-level settings struct.
type Config struct {
	// FASTA input path, "-" for stdin
	Input string `mapstructure:"input"`
	// FASTA output path, "-" for stdout
	Output string `mapstructure:"output"`
	// file of record ids to pad, one per line
	Sequences string `mapstructure:"sequences"`

	// sequence line width; 0 disables wrapping
	Wrap int `mapstructure:"wrap"`
	// one of stream | eager | indexed
	Strategy string `mapstructure:"strategy"`

	LogLevel string `mapstructure:"log-level"`
	Quiet    bool   `mapstructure:"quiet"`
}

// SetDefaults registers defaults and environment lookup on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", "")
	v.SetDefault("output", "")
	v.SetDefault("sequences", "")
	v.SetDefault("wrap", fasta.DefaultWidth)
	v.SetDefault("strategy", StrategyStream)
	v.SetDefault("log-level", "info")
	v.SetDefault("quiet", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads the optional config file named by the "config" key, decodes
// v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	return c, c.Validate()
}

// Validate checks required paths and value ranges.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return errors.New("--input is required")
	case c.Output == "":
		return errors.New("--output is required")
	case c.Sequences == "":
		return errors.New("--sequences is required")
	case c.Sequences == "-" && c.Input == "-":
		return errors.New("--input and --sequences cannot both read stdin")
	}
	if c.Wrap < 0 {
		return errors.New("--wrap must be ≥ 0")
	}
	switch c.Strategy {
	case StrategyStream, StrategyEager, StrategyIndexed:
	default:
		return fmt.Errorf("invalid --strategy %q (stream | eager | indexed)", c.Strategy)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid --log-level %q", c.LogLevel)
	}
	return nil
}
