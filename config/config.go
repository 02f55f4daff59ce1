// Package config loads the interpreter settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name, looked up in the home directory.
const FileName = ".estel.yaml"

// Config holds the interpreter settings.
type Config struct {
	Prompt       string   `yaml:"prompt"`
	Color        string   `yaml:"color"`
	ContextLines int      `yaml:"context_lines"`
	Echo         bool     `yaml:"echo"`
	LogLevel     string   `yaml:"log_level"`
	ExitCommands []string `yaml:"exit_commands"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Prompt:       ">>>> ",
		Color:        "auto",
		ContextLines: 1,
		Echo:         true,
		LogLevel:     "warn",
		ExitCommands: []string{"!q", "!quit"},
	}
}

var colorModes = []string{"auto", "always", "never"}

// Path returns the config file to load: explicit when set, then
// ESTEL_CONFIG, then the home directory.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv("ESTEL_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, FileName)
}

// Load reads the file at path over the defaults, then applies the
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		buf, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(buf, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %q: %w", path, err)
			}
		}
	}

	cfg.Color = envOrDefault("ESTEL_COLOR", cfg.Color)
	cfg.Prompt = envOrDefault("ESTEL_PROMPT", cfg.Prompt)
	cfg.LogLevel = envOrDefault("ESTEL_LOG_LEVEL", cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the enumerated and bounded fields.
func (c Config) Validate() error {
	if !slices.Contains(colorModes, c.Color) {
		return fmt.Errorf("unknown color mode %q, want one of %s", c.Color, strings.Join(colorModes, ", "))
	}
	if c.ContextLines < 0 {
		return fmt.Errorf("negative context_lines %d", c.ContextLines)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("unknown log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// IsExit reports whether a prompt line is one of the exit commands.
func (c Config) IsExit(line string) bool {
	return slices.Contains(c.ExitCommands, strings.TrimSpace(line))
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
