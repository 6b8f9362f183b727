// Package config holds the graphseq CLI settings.
//
// Priority, lowest to highest: defaults, config file, GRAPHSEQ_* environment
// variables, command-line flags (applied by the caller after Load).
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphseq/graphio"
	"github.com/katalvlaran/graphseq/sequence"
)

// ErrInvalidConfig is returned by Validate and wraps the offending field.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variable names read by Load.
const (
	EnvMode     = "GRAPHSEQ_MODE"
	EnvFormat   = "GRAPHSEQ_FORMAT"
	EnvLogLevel = "GRAPHSEQ_LOG_LEVEL"
)

// Config is the resolved CLI configuration.
type Config struct {
	// Mode is the sequence extraction mode: "global" or "component".
	Mode string `yaml:"mode" toml:"mode"`

	// Format is the report encoding: "yaml" or "json".
	Format string `yaml:"format" toml:"format"`

	// LogLevel is a slog level name: debug, info, warn or error.
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Mode:     string(sequence.ModeGlobal),
		Format:   string(graphio.FormatYAML),
		LogLevel: "info",
	}
}

// Load resolves defaults, the optional file at path and the environment,
// then validates the result. An empty path skips the file; a path that does
// not exist is an error. Files ending in .toml are read as TOML, anything
// else as YAML (which covers JSON).
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	loadEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return err
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return fmt.Errorf("%w: unknown keys %v", ErrInvalidConfig, undec)
		}
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

func loadEnv(cfg *Config) {
	if v := os.Getenv(EnvMode); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks every field and reports the first violation.
func (c Config) Validate() error {
	if _, err := sequence.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: mode: %v", ErrInvalidConfig, err)
	}
	if _, err := graphio.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel into a slog.Level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q: %v", ErrInvalidConfig, c.LogLevel, err)
	}

	return lvl, nil
}
