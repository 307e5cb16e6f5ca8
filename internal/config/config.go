// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-mpc.
//
// go-mpc is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package config loads the CLI configuration.
//
// Values are resolved in increasing priority: built-in defaults, the YAML
// file, then MPC_* environment variables (MPC_FIELD_PRIME,
// MPC_SHARING_THRESHOLD, MPC_RANDOM_SEED, MPC_LOGGING_LEVEL, ...).
// Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/jeremyhahn/go-mpc/pkg/adapters/logger"
	"github.com/jeremyhahn/go-mpc/pkg/crypto/rand"
	"github.com/jeremyhahn/go-mpc/pkg/field"
)

// EnvPrefix is the prefix of environment overrides
const EnvPrefix = "MPC"

// Config represents the complete configuration
type Config struct {
	Field   FieldConfig   `yaml:"field" json:"field" mapstructure:"field"`
	Sharing SharingConfig `yaml:"sharing" json:"sharing" mapstructure:"sharing"`
	Random  RandomConfig  `yaml:"random" json:"random" mapstructure:"random"`
	Logging LoggingConfig `yaml:"logging" json:"logging" mapstructure:"logging"`
	Metrics MetricsConfig `yaml:"metrics" json:"metrics" mapstructure:"metrics"`
}

// FieldConfig selects the prime field
type FieldConfig struct {
	Prime uint64 `yaml:"prime" json:"prime" mapstructure:"prime"`
}

// SharingConfig holds the default k-of-n parameters for split
type SharingConfig struct {
	Threshold int `yaml:"threshold" json:"threshold" mapstructure:"threshold"`
	Shares    int `yaml:"shares" json:"shares" mapstructure:"shares"`
}

// RandomConfig selects the randomness source
type RandomConfig struct {
	Mode string `yaml:"mode" json:"mode" mapstructure:"mode"` // auto, software, seeded
	Seed string `yaml:"seed,omitempty" json:"seed,omitempty" mapstructure:"seed"`
}

// LoggingConfig controls logging behavior
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level" mapstructure:"level"`    // debug, info, warn, error
	Format string `yaml:"format" json:"format" mapstructure:"format"` // text, json
}

// MetricsConfig controls the metrics dump printed after each command
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Field:   FieldConfig{Prime: 7919},
		Sharing: SharingConfig{Threshold: 3, Shares: 5},
		Random:  RandomConfig{Mode: string(rand.ModeSoftware)},
		Logging: LoggingConfig{Level: "warn", Format: "text"},
		Metrics: MetricsConfig{Enabled: false},
	}
}

// Load reads the configuration file at path, if any, and applies
// environment variable overrides. An empty path loads defaults and
// environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys that
// are missing from the file.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("field.prime", d.Field.Prime)
	v.SetDefault("sharing.threshold", d.Sharing.Threshold)
	v.SetDefault("sharing.shares", d.Sharing.Shares)
	v.SetDefault("random.mode", d.Random.Mode)
	v.SetDefault("random.seed", d.Random.Seed)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	var result *multierror.Error

	if !field.IsPrime(c.Field.Prime) {
		result = multierror.Append(result, fmt.Errorf("field.prime %d is not prime", c.Field.Prime))
	}
	if c.Sharing.Shares < 1 {
		result = multierror.Append(result, fmt.Errorf("sharing.shares must be at least 1, got %d", c.Sharing.Shares))
	}
	if c.Sharing.Threshold < 1 || c.Sharing.Threshold > c.Sharing.Shares {
		result = multierror.Append(result, fmt.Errorf("sharing.threshold must be in [1, %d], got %d",
			c.Sharing.Shares, c.Sharing.Threshold))
	}
	if !slices.Contains(rand.Modes, rand.Mode(c.Random.Mode)) {
		result = multierror.Append(result, fmt.Errorf("random.mode %q is not one of %v", c.Random.Mode, rand.Modes))
	}
	if rand.Mode(c.Random.Mode) == rand.ModeSeeded && c.Random.Seed == "" {
		result = multierror.Append(result, errors.New("random.seed is required when random.mode is seeded"))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		result = multierror.Append(result, fmt.Errorf("logging.level: %w", err))
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		result = multierror.Append(result, fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format))
	}

	return result.ErrorOrNil()
}

// RandomConfig returns the rand package configuration
func (c *Config) RandomConfig() *rand.Config {
	return &rand.Config{Mode: rand.Mode(c.Random.Mode), Seed: c.Random.Seed}
}

// Write encodes the configuration as YAML
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
