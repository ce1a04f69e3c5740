package telemetry

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_FileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "perfcmp.log")
	InitLogger(false, logFile)

	slog.Info("comparison started", "label", "original")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "comparison started")
	assert.Contains(t, string(data), `"label":"original"`)
}

func TestInitLogger_DebugLevel(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "perfcmp.log")
	InitLogger(true, logFile)

	slog.Debug("marker scan", "lines", 42)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "marker scan")
}

func TestInitLogger_DebugSuppressedByDefault(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "perfcmp.log")
	InitLogger(false, logFile)

	slog.Debug("should not appear")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "should not appear")
}
