package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/blackcheck/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer, with colours disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewWithOutput(buf), buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name string
		log  func(l *logger.Logger)
		want string
	}{
		{
			name: "info",
			log:  func(l *logger.Logger) { l.Info("rootdir: /src") },
			want: "rootdir: /src\n",
		},
		{
			name: "warn",
			log:  func(l *logger.Logger) { l.Warn("cache unavailable") },
			want: "! cache unavailable\n",
		},
		{
			name: "error",
			log:  func(l *logger.Logger) { l.Error(zerr.New("boom")) },
			want: "✗ Error: boom\n",
		},
		{
			name: "nil error is ignored",
			log:  func(l *logger.Logger) { l.Error(nil) },
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.Wrap(zerr.Wrap(errors.New("permission denied"), "failed to write cache value"), "failed to save recheck cache")
	lg.Error(err)

	want := "✗ Error: failed to save recheck cache\n" +
		"\n" +
		"  Caused by:\n" +
		"    → failed to write cache value\n" +
		"    → permission denied\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("collected 2 items")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "collected 2 items", record["msg"])
}

func TestLogger_SetOutputKeepsJSONMode(t *testing.T) {
	lg, first := newTestLogger(t)
	lg.SetJSON(true)

	second := &bytes.Buffer{}
	lg.SetOutput(second)
	lg.Warn("moved")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), `"msg":"moved"`)
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "two entries",
			entries: []logger.ErrorEntry{{Message: "outer"}, {Message: "inner"}},
			want:    "Error: outer\n\n  Caused by:\n    → inner",
		},
		{
			name:    "multiline messages",
			entries: []logger.ErrorEntry{{Message: "outer\nmore"}, {Message: "inner\ndetail"}},
			want:    "Error: outer\n       more\n\n  Caused by:\n    → inner\n      detail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}

func TestCollectErrorEntries_StandardError(t *testing.T) {
	entries := logger.CollectErrorEntries(errors.New("plain"))
	require.Len(t, entries, 1)
	assert.Equal(t, "plain", entries[0].Message)
}

func TestPrettyHandler_Attributes(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	log := slog.New(logger.NewPrettyHandler(buf, nil)).
		With("path", "src/a.py").
		WithGroup("black")

	log.Warn("check failed", "exit", 123, slog.Group("probe", "version", "black 24.1.0"))

	assert.Equal(t, `! check failed path=src/a.py black.exit=123 black.probe.version="black 24.1.0"`+"\n", buf.String())
}

func TestPrettyHandler_Level(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	log := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	log.Info("hidden")
	log.Warn("shown")

	assert.Equal(t, "! shown\n", buf.String())
}
