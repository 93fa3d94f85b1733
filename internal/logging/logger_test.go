package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podcraft-ai/podcraft/internal/config"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		input     string
		expect    slog.Level
		expectErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			lvl, err := levelFromString(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, lvl)
		})
	}
}

func TestNewLogger_TextAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := newLogger(config.Logging{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", "run_id", "abc")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "run_id=abc")
}

func TestNewLogger_JSONWithFile(t *testing.T) {
	var buf bytes.Buffer
	file := filepath.Join(t.TempDir(), "logs", "podcraft.log")
	logger, closer, err := newLogger(config.Logging{Level: "info", Format: "json", File: file, MaxSizeMB: 1}, &buf)
	require.NoError(t, err)

	logger.Info("episode ready", "topic", "nba")
	require.NoError(t, closer.Close())

	assert.Contains(t, buf.String(), `"msg":"episode ready"`)
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"topic":"nba"`)
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, _, err := New(config.Logging{Level: "loud"})
	assert.Error(t, err)
}
