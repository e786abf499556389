package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufLogger() (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestSlogLoggerLevels(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		level string
		log   func(l *SlogLogger)
	}{
		{"DEBUG", func(l *SlogLogger) { l.Debug(ctx, "m") }},
		{"INFO", func(l *SlogLogger) { l.Info(ctx, "m") }},
		{"WARN", func(l *SlogLogger) { l.Warn(ctx, "m") }},
		{"ERROR", func(l *SlogLogger) { l.Error(ctx, "m") }},
	} {
		l, buf := newBufLogger()
		tt.log(l)
		rec := lastRecord(t, buf)
		assert.Equal(t, tt.level, rec["level"])
		assert.Equal(t, "m", rec["msg"])
	}
}

func TestSlogLoggerWith(t *testing.T) {
	l, buf := newBufLogger()
	child := l.With("module", "auth")
	child.Info(context.Background(), "hello", "userId", "42")

	rec := lastRecord(t, buf)
	assert.Equal(t, "auth", rec["module"])
	assert.Equal(t, "42", rec["userId"])
}
