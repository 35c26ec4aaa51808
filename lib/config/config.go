// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Prefix is prepended to every variable name in [Config].
const Prefix = "SELFEXTRACT_"

// Config is the launcher configuration.
type Config struct {
	// Debug enables debug-level logging to stderr. Off by default so
	// the launcher adds nothing to the child's output.
	Debug bool `env:"DEBUG" envDefault:"false"`

	// TempDir is the directory the payload is extracted into. Empty
	// means the platform temporary directory (os.TempDir).
	TempDir string `env:"TMPDIR"`

	// Cleanup removes the extracted file after the child exits. The
	// file is left in place by default.
	Cleanup bool `env:"CLEANUP" envDefault:"false"`
}

// Load parses the process environment into a Config.
func Load() (Config, error) {
	return parse(env.Options{Prefix: Prefix})
}

// LoadFrom parses the given variables instead of the process
// environment. Keys carry the full prefixed name.
func LoadFrom(environment map[string]string) (Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: environment})
}

func parse(options env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, options); err != nil {
		return Config{}, fmt.Errorf("parsing %s environment: %w", Prefix+"*", err)
	}
	return cfg, nil
}

// LogLevel returns the slog level selected by the configuration.
func (c Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
