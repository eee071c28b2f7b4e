package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(kv map[string]any) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	for k, val := range kv {
		v.Set(k, val)
	}
	return v
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(newViper(map[string]any{"input": "in.fa", "output": "out.fa", "sequences": "ids.txt"}))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Input:     "in.fa",
		Output:    "out.fa",
		Sequences: "ids.txt",
		Wrap:      60,
		Strategy:  StrategyStream,
		LogLevel:  "info",
	}, c)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONTIGPAD_INPUT", "env.fa")
	t.Setenv("CONTIGPAD_OUTPUT", "-")
	t.Setenv("CONTIGPAD_SEQUENCES", "ids.txt")
	t.Setenv("CONTIGPAD_LOG_LEVEL", "debug")

	c, err := Load(newViper(nil))
	require.NoError(t, err)
	assert.Equal(t, "env.fa", c.Input)
	assert.Equal(t, "-", c.Output)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "contigpad.yaml")
	body := "input: asm.fa\noutput: padded.fa\nsequences: gaps.txt\nwrap: 80\nstrategy: Indexed\n"
	require.NoError(t, os.WriteFile(fn, []byte(body), 0o644))

	c, err := Load(newViper(map[string]any{"config": fn}))
	require.NoError(t, err)
	assert.Equal(t, 80, c.Wrap)
	assert.Equal(t, StrategyIndexed, c.Strategy)
	assert.Equal(t, "gaps.txt", c.Sequences)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(newViper(map[string]any{"config": filepath.Join(t.TempDir(), "nope.yaml")}))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	ok := Config{Input: "a", Output: "b", Sequences: "c", Wrap: 60, Strategy: StrategyEager, LogLevel: "warn"}
	require.NoError(t, ok.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"missing input", func(c *Config) { c.Input = "" }, "--input is required"},
		{"missing output", func(c *Config) { c.Output = "" }, "--output is required"},
		{"missing sequences", func(c *Config) { c.Sequences = "" }, "--sequences is required"},
		{"two stdin readers", func(c *Config) { c.Input, c.Sequences = "-", "-" }, "--input and --sequences cannot both read stdin"},
		{"negative wrap", func(c *Config) { c.Wrap = -1 }, "--wrap must be ≥ 0"},
		{"bad strategy", func(c *Config) { c.Strategy = "lazy" }, `invalid --strategy "lazy" (stream | eager | indexed)`},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, `invalid --log-level "loud"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ok
			tt.mutate(&c)
			assert.EqualError(t, c.Validate(), tt.msg)
		})
	}
}
