// Package config loads snlc.toml. Every field has a default, so a
// missing file is not an error for LoadDefault.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const EnvVar = "SNLC_CONFIG"

type Config struct {
	Compiler CompilerConfig `toml:"compiler"`
	Output   OutputConfig   `toml:"output"`
	Log      LogConfig      `toml:"log"`
	Watch    WatchConfig    `toml:"watch"`
}

type CompilerConfig struct {
	Parser string `toml:"parser"` // ll1 | descent
}

type OutputConfig struct {
	Color  *bool  `toml:"color"`
	Format string `toml:"format"` // text | yaml
}

type LogConfig struct {
	Level  string `toml:"level"`  // debug | info | warn | error
	Format string `toml:"format"` // text | json
}

type WatchConfig struct {
	Debounce Duration `toml:"debounce"`
}

// Duration wraps time.Duration for TOML parsing of strings like "200ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

const (
	ParserLL1     = "ll1"
	ParserDescent = "descent"
	FormatText    = "text"
	FormatYAML    = "yaml"
	FormatJSON    = "json"
)

// Default is the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load decodes the file at path and fills in every unset field.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault loads the first file found among: explicit (usually the
// --config flag), $SNLC_CONFIG, ./snlc.toml and
// $HOME/.config/snlc/config.toml. With none present it returns Default.
func LoadDefault(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

func SearchPaths() []string {
	paths := []string{"./snlc.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "snlc", "config.toml"))
	}
	return paths
}

func (c *Config) applyDefaults() {
	if c.Compiler.Parser == "" {
		c.Compiler.Parser = ParserLL1
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = FormatText
	}
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 200 * time.Millisecond
	}
}

// Validate rejects values no stage understands.
func (c *Config) Validate() error {
	switch c.Compiler.Parser {
	case ParserLL1, ParserDescent:
	default:
		return fmt.Errorf("compiler.parser must be %q or %q, got %q", ParserLL1, ParserDescent, c.Compiler.Parser)
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatYAML, c.Output.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("log.format must be %q or %q, got %q", FormatText, FormatJSON, c.Log.Format)
	}
	if c.Watch.Debounce.Duration < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// UseColor reports the output.color setting.
func (c *Config) UseColor() bool {
	return c.Output.Color == nil || *c.Output.Color
}
