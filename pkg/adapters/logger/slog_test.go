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

package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "", want: LevelInfo},
		{in: "warning", want: LevelWarn},
		{in: " error ", want: LevelError},
		{in: "verbose", want: LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSlogAdapter_NilConfig(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	require.NotNil(t, adapter)
	assert.NotNil(t, adapter.logger)
	assert.NotNil(t, adapter.fields)
}

func TestNewSlogAdapter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(&SlogConfig{Format: "json", Output: &buf})

	adapter.Info("shares split", String("sharing_id", "abc"), Int("threshold", 3), Uint64("prime", 7919))

	output := buf.String()
	assert.Contains(t, output, `"msg":"shares split"`)
	assert.Contains(t, output, `"sharing_id":"abc"`)
	assert.Contains(t, output, `"threshold":3`)
	assert.Contains(t, output, `"prime":7919`)
}

func TestSlogAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(&SlogConfig{Level: LevelWarn, Output: &buf})

	adapter.Debug("debug message")
	adapter.Info("info message")
	adapter.Warn("warn message")
	adapter.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestSlogAdapter_With(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(&SlogConfig{Handler: handler})

	child := adapter.With(String("component", "shamir"))
	child.Debug("constructed")

	output := buf.String()
	assert.Contains(t, output, "component=shamir")
	// fields are emitted once, not once per layer
	assert.Equal(t, 1, strings.Count(output, "component=shamir"))

	buf.Reset()
	adapter.Debug("parent")
	assert.NotContains(t, buf.String(), "component=shamir")
}

func TestSlogAdapter_WithError(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(&SlogConfig{Output: &buf})

	adapter.WithError(errors.New("boom")).Error("operation failed")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNoOp(t *testing.T) {
	var l Logger = NoOp{}
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	assert.Equal(t, NoOp{}, l.With(String("k", "v")))
	assert.Equal(t, NoOp{}, l.WithError(errors.New("e")))
}
