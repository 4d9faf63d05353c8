package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, "stdout", cfg.Output)
}

func TestNew(t *testing.T) {
	log, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestNew_JSONFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(&Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	log.Info("hello", zap.String("key", "value"))
	require.NoError(t, Sync(log))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.NotEmpty(t, entry["time"])
}

func TestNew_LevelFiltersLowerEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(&Config{Level: "error", Format: "json", Output: path})
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("also dropped")
	require.NoError(t, Sync(log))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}
