// SPDX-License-Identifier: MIT

// Package config loads CLI settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/katalvlaran/minmath/core"
)

// ErrInvalidEpsilon is returned when MINMATH_EPSILON is negative or not finite.
var ErrInvalidEpsilon = errors.New("config: epsilon must be finite and >= 0")

// Config controls the minmath command.
type Config struct {
	// Epsilon is the absolute tolerance used when comparing float results.
	Epsilon float64 `env:"MINMATH_EPSILON" envDefault:"1e-9"`
	// Verbose logs every evaluated step.
	Verbose bool `env:"MINMATH_VERBOSE" envDefault:"false"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Epsilon < 0 || !core.IsFinite(c.Epsilon) {
		return fmt.Errorf("%w: got %g", ErrInvalidEpsilon, c.Epsilon)
	}

	return nil
}
