package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefaultLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestNewLoggerTo_JSON(t *testing.T) {
	restoreDefaultLogger(t)
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "info", "json")

	logger.Info("search resolved", "request_id", "req-1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "search resolved", line["msg"])
	assert.Equal(t, "req-1", line["request_id"])
}

func TestNewLoggerTo_TextRespectsLevel(t *testing.T) {
	restoreDefaultLogger(t)
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "WARN", "text")

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewLoggerTo_UnknownLevelFallsBackToInfo(t *testing.T) {
	restoreDefaultLogger(t)
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "nonsense", "text")

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewLoggerTo_SetsDefault(t *testing.T) {
	restoreDefaultLogger(t)
	var buf bytes.Buffer
	NewLoggerTo(&buf, "info", "text")

	slog.Info("package level")

	assert.Contains(t, buf.String(), "msg=\"package level\"")
}
