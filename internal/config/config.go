// Package config loads interpreter settings from an optional YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Prompt is printed before each line Leer reads.
	Prompt string `yaml:"prompt"`
	// StrictLexing makes unknown characters and unterminated strings syntax
	// errors.
	StrictLexing bool `yaml:"strict_lexing"`
	// KeepAccents matches keywords and types with their accents, so
	// "Lógico" stops being a type name.
	KeepAccents bool `yaml:"keep_accents"`
	// MaxNesting bounds how deeply Si blocks may nest.
	MaxNesting int `yaml:"max_nesting"`
	// BodyCacheSize bounds how many built Si bodies are kept.
	BodyCacheSize int `yaml:"body_cache_size"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Prompt:        "> ",
		MaxNesting:    64,
		BodyCacheSize: 128,
		LogLevel:      "warn",
	}
}

// Load reads path and fills every unset field from Default. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	var cfg Config

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}

	if err := mergo.Merge(&cfg, Default()); err != nil {
		return Config{}, fmt.Errorf("merge defaults: %w", err)
	}

	if cfg.MaxNesting < 0 {
		return Config{}, fmt.Errorf("max_nesting must not be negative, got %d", cfg.MaxNesting)
	}
	if cfg.BodyCacheSize < 0 {
		return Config{}, fmt.Errorf("body_cache_size must not be negative, got %d", cfg.BodyCacheSize)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelWarn, fmt.Errorf("log_level: %w", err)
	}

	return level, nil
}
