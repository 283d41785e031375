package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vipcxj/num/internal/config"
)

// restoreDefault puts back the slog default replaced by Setup.
func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"INFO":   slog.LevelInfo,
		" warn ": slog.LevelWarn,
		"Error":  slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("fatal")
	assert.EqualError(t, err, `unknown log level "fatal"`)
}

func TestSetupJSON(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	l, err := Setup(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	slog.Debug("hidden")
	slog.Info("instance created", "name", "num1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "instance created", entry["msg"])
	assert.Equal(t, "num1", entry["name"])
}

func TestSetupText(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	_, err := Setup(config.LogConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)

	slog.Info("hidden")
	slog.Warn("unknown shell", "name", "fish")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `level=WARN msg="unknown shell" name=fish`)
}

func TestSetupErrors(t *testing.T) {
	restoreDefault(t)
	_, err := Setup(config.LogConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
	_, err = Setup(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.EqualError(t, err, `unknown log format "xml"`)
}
