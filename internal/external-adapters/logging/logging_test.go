package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ochairo/saclient/internal/domain/interfaces"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		level   string
		wantErr bool
	}{
		{name: "default text", format: "", level: ""},
		{name: "text debug", format: FormatText, level: "debug"},
		{name: "json warn", format: FormatJSON, level: "warn"},
		{name: "upper case level", format: FormatJSON, level: "ERROR"},
		{name: "unknown format", format: "xml", level: "info", wantErr: true},
		{name: "unknown level", format: FormatText, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, closer, err := New(Options{Level: tt.level, Format: tt.format, Out: &bytes.Buffer{}})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
			assert.NoError(t, closer.Close())
		})
	}
}

func TestJSONLogger_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewJSONLogger(&buf, "info")
	require.NoError(t, err)

	logger.With(interfaces.F("run_id", "abc")).Error("download failed",
		interfaces.F("attempt", 2),
		interfaces.Err(errors.New("boom")),
	)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "download failed", entry["message"])
	assert.Equal(t, "abc", entry["run_id"])
	assert.Equal(t, float64(2), entry["attempt"])
	assert.Equal(t, "boom", entry["error"])
	assert.Contains(t, entry, "time")
}

func TestJSONLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewJSONLogger(&buf, "warn")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("hidden", interfaces.F("k", "v"))
	logger.Warn("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"message":"shown"`)
}

func TestConsoleLogger_WritesText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewConsoleLogger(&buf, "debug")
	require.NoError(t, err)

	logger.With(interfaces.F("run_id", "abc")).Info("extracting client", interfaces.F("dir", "/tmp/x"))
	logger.Debug("details")

	out := buf.String()
	assert.Contains(t, out, "extracting client")
	assert.Contains(t, out, "run_id=abc")
	assert.Contains(t, out, "dir=/tmp/x")
	assert.Contains(t, out, "details")
}

func TestConsoleLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewConsoleLogger(&buf, "error")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("hidden")
	assert.Empty(t, buf.String())

	logger.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_TeesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "saclient.log")
	var console bytes.Buffer

	logger, closer, err := New(Options{Level: "info", Format: FormatJSON, File: path, Out: &console})
	require.NoError(t, err)

	logger.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Equal(t, console.String(), string(data))
}
