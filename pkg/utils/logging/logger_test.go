package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogFilePath(t *testing.T) {
	at := time.Date(2026, time.March, 1, 14, 5, 9, 0, time.UTC)

	assert.Equal(t, filepath.Join("logs", "prod_2026-03-01_14-05-09.log"), LogFilePath("logs", "prod", at))
	assert.Equal(t, filepath.Join("logs", "default_2026-03-01_14-05-09.log"), LogFilePath("logs", "", at))
}

func TestNewLogger_ConsoleAndFile(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	logger, err := NewLogger(dir, "test", false, zapcore.AddSync(&console))
	require.NoError(t, err)

	logger.Debug("debug only in file")
	logger.Info("info everywhere")
	require.NoError(t, logger.Sync())

	assert.Contains(t, console.String(), "info everywhere")
	assert.NotContains(t, console.String(), "debug only in file")

	files, err := filepath.Glob(filepath.Join(dir, "test_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "debug only in file", first["msg"])
	assert.Equal(t, "debug", first["level"])
	assert.Equal(t, "test", first["env"])
	assert.Contains(t, first, "timestamp")
}

func TestNewLogger_Verbose(t *testing.T) {
	var console bytes.Buffer

	logger, err := NewLogger(t.TempDir(), "test", true, zapcore.AddSync(&console))
	require.NoError(t, err)

	logger.Debug("visible with verbose")
	require.NoError(t, logger.Sync())

	assert.Contains(t, console.String(), "visible with verbose")
}
