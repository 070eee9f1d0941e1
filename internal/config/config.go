// Package config resolves Swatch settings from defaults, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Environment variables read by WithEnvConfig and WithDotEnv.
const (
	EnvWhite    = "SWATCH_WHITE"
	EnvBlack    = "SWATCH_BLACK"
	EnvFormat   = "SWATCH_FORMAT"
	EnvLogLevel = "SWATCH_LOG_LEVEL"
	EnvStrict   = "SWATCH_STRICT"
)

// Config holds resolved settings. Command-line flags are applied on top by the CLI.
type Config struct {
	// Constants are the white/black overrides passed to colour.DeriveBadge.
	Constants colour.Constants
	// Format is the default output format (text, json, css).
	Format string
	// LogLevel is an hclog level name (trace, debug, info, warn, error, off).
	LogLevel string
	// Strict rejects malformed colours instead of rendering them as black.
	Strict bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Constants: colour.DefaultConstants(),
		Format:    "text",
		LogLevel:  "warn",
	}
}

// Builder assembles a Config from layered sources.
// Later layers win: defaults, then the .env file, then the process environment.
type Builder struct {
	config     Config
	dotEnvPath string
	useEnv     bool
	lookupEnv  func(string) (string, bool)
}

// NewBuilder creates a new Builder starting from Default().
func NewBuilder() *Builder {
	return &Builder{
		config:    Default(),
		lookupEnv: os.LookupEnv,
	}
}

// WithConfig replaces the base configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithDotEnv reads SWATCH_* keys from a dotenv file. A missing file is not an error.
func (b *Builder) WithDotEnv(path string) *Builder {
	b.dotEnvPath = path
	return b
}

// WithEnvConfig loads configuration from environment variables.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookupEnv swaps the environment lookup (useful for testing).
func (b *Builder) WithLookupEnv(fn func(string) (string, bool)) *Builder {
	b.lookupEnv = fn
	return b
}

// Build resolves the configuration.
func (b *Builder) Build() (Config, error) {
	config := b.config

	if b.dotEnvPath != "" {
		values, err := godotenv.Read(b.dotEnvPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read %s: %w", b.dotEnvPath, err)
		default:
			if err := apply(&config, func(key string) (string, bool) {
				v, ok := values[key]
				return v, ok
			}); err != nil {
				return Config{}, fmt.Errorf("%s: %w", b.dotEnvPath, err)
			}
		}
	}

	if b.useEnv {
		if err := apply(&config, b.lookupEnv); err != nil {
			return Config{}, fmt.Errorf("environment: %w", err)
		}
	}

	return config, nil
}

func apply(config *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvWhite); ok && v != "" {
		config.Constants.White = v
	}
	if v, ok := lookup(EnvBlack); ok && v != "" {
		config.Constants.Black = v
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		config.Format = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		config.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvStrict); ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvStrict, v, err)
		}
		config.Strict = strict
	}
	return nil
}
