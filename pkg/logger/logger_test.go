package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/khorlingling/site/pkg/logger"
)

type ctxKey struct{}

func requestIDFromContext(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return slog.String("request_id", v), true
	}
	return slog.Attr{}, false
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	t.Run("adds extracted attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, requestIDFromContext)

		ctx := context.WithValue(context.Background(), ctxKey{}, "01HX")
		log.InfoContext(ctx, "relayed", slog.Int("status", 200))

		entry := decode(t, &buf)
		require.Equal(t, "relayed", entry["msg"])
		require.Equal(t, "01HX", entry["request_id"])
		require.EqualValues(t, 200, entry["status"])
	})

	t.Run("skips missing values", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, requestIDFromContext, nil)
		log.Info("no request")

		require.NotContains(t, decode(t, &buf), "request_id")
	})

	t.Run("respects level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelWarn)
		log.Info("hidden")
		require.Zero(t, buf.Len())

		log.Warn("shown")
		require.Equal(t, "WARN", decode(t, &buf)["level"])
	})

	t.Run("keeps extractors through With", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, requestIDFromContext).With("component", "site")

		ctx := context.WithValue(context.Background(), ctxKey{}, "abc")
		log.InfoContext(ctx, "hello")

		entry := decode(t, &buf)
		require.Equal(t, "site", entry["component"])
		require.Equal(t, "abc", entry["request_id"])
	})
}

func TestNewWithSentry_NoDSN(t *testing.T) {
	t.Parallel()

	log := logger.NewWithSentry(logger.SentryConfig{Level: slog.LevelInfo})
	require.NotNil(t, log)
	require.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestFlush_WithoutClient(t *testing.T) {
	t.Parallel()

	require.NoError(t, logger.Flush(time.Second)(context.Background()))
}
