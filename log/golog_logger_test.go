package log

import (
	"bytes"
	"testing"

	"github.com/kataras/golog"
	"github.com/stretchr/testify/assert"
)

func TestNewGologLogger(t *testing.T) {
	logger := NewGologLogger(golog.New())

	assert.NotNil(t, logger)
	assert.Equal(t, LogLevelInfo, logger.GetLevel())
}

func TestGologLogger_LevelControl(t *testing.T) {
	logger := NewGologLogger(golog.New())

	logger.SetLevel(LogLevelDebug)
	assert.Equal(t, LogLevelDebug, logger.GetLevel())

	logger.SetLevel(LogLevelError)
	assert.Equal(t, LogLevelError, logger.GetLevel())

	logger.SetLevel(LogLevelNone)
	assert.Equal(t, LogLevelNone, logger.GetLevel())
}

func TestGologLogger_Formats(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LogLevelDebug)

	logger.Debug("expanded %d nodes", 42)
	assert.Contains(t, buf.String(), "expanded 42 nodes")
	assert.Contains(t, buf.String(), "[vgraph] ")
}

func TestGologLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LogLevelWarn)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	assert.Empty(t, buf.String())

	logger.Warn("visible %s", "warning")
	assert.Contains(t, buf.String(), "visible warning")
}

func TestNoOpLogger(t *testing.T) {
	var l Logger = NoOpLogger{}
	assert.NotPanics(t, func() {
		l.Debug("x %d", 1)
		l.Info("x")
		l.Warn("x")
		l.Error("x")
	})
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want LogLevel
		ok   bool
	}{
		{"debug", LogLevelDebug, true},
		{"INFO", LogLevelInfo, true},
		{"warning", LogLevelWarn, true},
		{"error", LogLevelError, true},
		{"disable", LogLevelNone, true},
		{"loud", LogLevelInfo, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseLevel(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.ok, ok)
		})
	}
	assert.Equal(t, "UNKNOWN(9)", LogLevel(9).String())
}
