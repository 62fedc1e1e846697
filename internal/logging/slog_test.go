package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(handler)), &buf
}

func TestLevels(t *testing.T) {
	logger, buf := newBufferedLogger()
	ctx := context.Background()

	logger.Info(ctx, "info msg", "k", "v")
	logger.Warn(ctx, "warn msg")
	logger.Error(ctx, "error msg")

	out := buf.String()
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "info msg")
	require.Contains(t, out, "k=v")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "level=ERROR")
}

func TestWith(t *testing.T) {
	logger, buf := newBufferedLogger()

	child := logger.With("component", "session")
	child.Info(context.Background(), "restored")

	require.Contains(t, buf.String(), "component=session")
	require.Contains(t, buf.String(), "restored")
}
