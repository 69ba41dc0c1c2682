package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"monkey/internal/parser"
	"monkey/internal/token"
)

// Config holds the front end settings shared by the CLI and the LSP server.
type Config struct {
	Color      string    `toml:"color" yaml:"color"`
	Format     string    `toml:"format" yaml:"format"`
	SyncTokens []string  `toml:"sync_tokens" yaml:"sync_tokens"`
	MaxDepth   int       `toml:"max_depth" yaml:"max_depth"` // negative disables the limit
	Log        LogConfig `toml:"log" yaml:"log"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	Path      string `toml:"path" yaml:"path"`
}

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	FormatText = "text"
	FormatDump = "dump"
)

// EnvVar names the environment variable consulted by LoadFromEnv.
const EnvVar = "MONKEY_CONFIG"

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a TOML or YAML file, chosen by extension, applies defaults
// and validates the result.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".toml", "":
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	cfg.applyDefaults()
	cfg.Log.Path = os.ExpandEnv(cfg.Log.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadFromEnv loads the file named by MONKEY_CONFIG, then the first of the
// default locations that exists. Without any file the defaults are used.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	defaultPaths := []string{
		"./monkey.toml",
		"./monkey.yaml",
		filepath.Join(os.Getenv("HOME"), ".config/monkey/config.toml"),
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

func (c *Config) applyDefaults() {
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if len(c.SyncTokens) == 0 {
		c.SyncTokens = []string{token.SEMICOLON.Symbol()}
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = parser.DefaultMaxDepth
	}
}

// Validate checks enumerated values and that every sync token names a
// monkey token.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be %q, %q or %q, got %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}

	switch c.Format {
	case FormatText, FormatDump:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatDump, c.Format)
	}

	if _, err := c.syncKinds(); err != nil {
		return err
	}

	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity must not be negative, got %d", c.Log.Verbosity)
	}

	return nil
}

func (c *Config) syncKinds() ([]token.Kind, error) {
	kinds := make([]token.Kind, 0, len(c.SyncTokens))
	for _, sym := range c.SyncTokens {
		kind, ok := token.KindFromSymbol(sym)
		if !ok {
			return nil, fmt.Errorf("unknown sync token %q", sym)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// ParserOptions translates the configuration into parser options.
func (c *Config) ParserOptions() ([]parser.Option, error) {
	kinds, err := c.syncKinds()
	if err != nil {
		return nil, err
	}

	depth := c.MaxDepth
	if depth < 0 {
		depth = 0
	}

	return []parser.Option{
		parser.WithSyncTokens(kinds...),
		parser.WithMaxDepth(depth),
	}, nil
}

// ColorEnabled resolves the color setting; auto defers to whether the
// output is a terminal.
func (c *Config) ColorEnabled(terminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
}
