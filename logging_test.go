package desim

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoOpLoggerDiscardsEverything(t *testing.T) {
	l := NewNoOpLogger()
	assert.False(t, l.IsEnabled(LevelError))
	assert.NotPanics(t, func() {
		l.Log(LogEntry{Level: LevelError, Message: "ignored"})
	})
}

func TestDefaultLoggerGatesByLevel(t *testing.T) {
	l := NewDefaultLogger(LevelWarn)
	assert.False(t, l.IsEnabled(LevelInfo))
	assert.True(t, l.IsEnabled(LevelWarn))
	assert.True(t, l.IsEnabled(LevelError))
}

func TestDefaultLoggerWritesFormattedLine(t *testing.T) {
	r, w, err := os.Pipe()
	assert.NoError(t, err)

	l := NewDefaultLogger(LevelInfo)
	l.out = w

	l.Log(LogEntry{Level: LevelInfo, Op: "step", Time: 3, Process: 1, Message: "advanced"})
	assert.NoError(t, w.Close())

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "advanced")
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Contains(t, LogLevel(99).String(), "UNKNOWN")
}
