package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monkey/internal/parser"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, []string{";"}, cfg.SyncTokens)
	assert.Equal(t, parser.DefaultMaxDepth, cfg.MaxDepth)
	assert.Zero(t, cfg.Log.Verbosity)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "monkey.toml", `
color = "never"
format = "dump"
sync_tokens = [";", "}"]
max_depth = 64

[log]
verbosity = 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, FormatDump, cfg.Format)
	assert.Equal(t, []string{";", "}"}, cfg.SyncTokens)
	assert.Equal(t, 64, cfg.MaxDepth)
	assert.Equal(t, 2, cfg.Log.Verbosity)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "monkey.yml", `
color: always
sync_tokens:
  - ";"
  - ")"
log:
  verbosity: 1
  path: /tmp/monkey.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ColorAlways, cfg.Color)
	assert.Equal(t, FormatText, cfg.Format, "unset values get defaults")
	assert.Equal(t, []string{";", ")"}, cfg.SyncTokens)
	assert.Equal(t, parser.DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, 1, cfg.Log.Verbosity)
	assert.Equal(t, "/tmp/monkey.log", cfg.Log.Path)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")

	_, err = Load(writeFile(t, "bad.toml", "color = [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	_, err = Load(writeFile(t, "bad.yaml", "color: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	_, err = Load(writeFile(t, "monkey.json", "{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config format")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad color", func(c *Config) { c.Color = "sometimes" }, "color must be"},
		{"bad format", func(c *Config) { c.Format = "json" }, "format must be"},
		{"bad sync token", func(c *Config) { c.SyncTokens = []string{";", "@"} }, "unknown sync token"},
		{"negative verbosity", func(c *Config) { c.Log.Verbosity = -1 }, "log.verbosity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := Load(writeFile(t, "invalid.toml", `sync_tokens = ["??"]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestParserOptions(t *testing.T) {
	cfg := Default()
	cfg.SyncTokens = []string{";", "}"}

	opts, err := cfg.ParserOptions()
	require.NoError(t, err)

	program, errs := parser.ParseSource("} let a = 1;", opts...)
	assert.Len(t, errs, 1)
	assert.Len(t, program.Statements, 1, "'}' ends recovery")

	cfg = Default()
	cfg.MaxDepth = 2
	opts, err = cfg.ParserOptions()
	require.NoError(t, err)

	_, errs = parser.ParseSource("((((1))))", opts...)
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Limit)

	cfg.MaxDepth = -1
	opts, err = cfg.ParserOptions()
	require.NoError(t, err)

	_, errs = parser.ParseSource("((((1))))", opts...)
	assert.Empty(t, errs)
}

func TestColorEnabled(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.ColorEnabled(true))
	assert.False(t, cfg.ColorEnabled(false))

	cfg.Color = ColorAlways
	assert.True(t, cfg.ColorEnabled(false))

	cfg.Color = ColorNever
	assert.False(t, cfg.ColorEnabled(true))
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "env.toml", `format = "dump"`)
	t.Setenv(EnvVar, path)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, FormatDump, cfg.Format)

	t.Setenv(EnvVar, "")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err = LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
