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

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-mpc/pkg/crypto/rand"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mpc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
field:
  prime: 2147483647
sharing:
  threshold: 2
  shares: 4
random:
  mode: seeded
  seed: fixture
logging:
  level: debug
  format: json
metrics:
  enabled: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(2147483647), cfg.Field.Prime)
	assert.Equal(t, 2, cfg.Sharing.Threshold)
	assert.Equal(t, 4, cfg.Sharing.Shares)
	assert.Equal(t, "seeded", cfg.Random.Mode)
	assert.Equal(t, "fixture", cfg.Random.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Metrics.Enabled)

	rc := cfg.RandomConfig()
	assert.Equal(t, rand.ModeSeeded, rc.Mode)
	assert.Equal(t, "fixture", rc.Seed)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "field:\n  prime: 7907\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(7907), cfg.Field.Prime)
	assert.Equal(t, 3, cfg.Sharing.Threshold)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MPC_FIELD_PRIME", "18446744073709551557")
	t.Setenv("MPC_SHARING_THRESHOLD", "4")
	t.Setenv("MPC_SHARING_SHARES", "6")
	t.Setenv("MPC_LOGGING_LEVEL", "error")

	cfg, err := Load(writeConfig(t, "field:\n  prime: 7907\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551557), cfg.Field.Prime)
	assert.Equal(t, 4, cfg.Sharing.Threshold)
	assert.Equal(t, 6, cfg.Sharing.Shares)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "field: [not, a, map"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "field:\n  prime: 100\n"))
	assert.ErrorContains(t, err, "not prime")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "composite prime", mutate: func(c *Config) { c.Field.Prime = 7917 }, wantErr: "not prime"},
		{name: "zero shares", mutate: func(c *Config) { c.Sharing.Shares = 0 }, wantErr: "sharing.shares"},
		{name: "threshold above shares", mutate: func(c *Config) { c.Sharing.Threshold = 6 }, wantErr: "sharing.threshold"},
		{name: "unknown random mode", mutate: func(c *Config) { c.Random.Mode = "tpm2" }, wantErr: "random.mode"},
		{name: "seeded without seed", mutate: func(c *Config) { c.Random.Mode = "seeded" }, wantErr: "random.seed"},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Field.Prime = 4
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	assert.ErrorContains(t, err, "not prime")
	assert.ErrorContains(t, err, "logging.format")
}

func TestWrite_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Field.Prime = 2147483647
	cfg.Random = RandomConfig{Mode: "seeded", Seed: "round-trip"}

	var buf bytes.Buffer
	require.NoError(t, cfg.Write(&buf))
	assert.Contains(t, buf.String(), "prime: 2147483647")

	loaded, err := Load(writeConfig(t, buf.String()))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
