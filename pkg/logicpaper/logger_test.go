package logicpaper

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "[WARN] warn message")
	assert.Contains(t, out, "[ERROR] error message")
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogError)

	logger.Warn("dropped")
	logger.SetLevel(LogDebug)
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogInfo)

	logger.WithField("template", "contract.docx").Info("extracted")
	assert.Contains(t, buf.String(), "template=contract.docx")

	buf.Reset()
	logger.WithFields(Fields{"a": 1, "b": 2}).Info("multi")
	assert.Contains(t, buf.String(), "a=1")
	assert.Contains(t, buf.String(), "b=2")
}

func TestLoggerFormatting(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogInfo)

	logger.Info("formatted %d fields in %s", 4, "row 12")

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, "[INFO] formatted 4 fields in row 12")
}

func TestLoggerNilWriter(t *testing.T) {
	logger := NewLogger(nil, LogInfo)
	assert.NotPanics(t, func() { logger.Info("discarded") })
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogDebug},
		{"info", LogInfo},
		{"warn", LogWarn},
		{"error", LogError},
		{"off", LogOff},
		{"garbage", LogInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), "level %q", tt.in)
	}
}
