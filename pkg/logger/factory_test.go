package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plblum/jTAC-sub002/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("text by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "msg=hello")
	})

	t.Run("json format", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatJSON))
		log.Info("hello")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("hidden")
		assert.Empty(t, buf.String())
		log.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("handler options override the level", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithLevel(slog.LevelError),
			logger.WithHandlerOptions(&slog.HandlerOptions{Level: slog.LevelDebug}),
		)
		log.Debug("debug")
		assert.Contains(t, buf.String(), "debug")
	})

	t.Run("includes static attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatJSON),
			logger.WithAttr(logger.Component("jtac")),
		)
		log.Info("msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "jtac", entry["component"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("culture")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatJSON),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(ctxKey).(string); ok {
					return logger.Culture(v), true
				}
				return slog.Attr{}, false
			}),
			logger.WithContextValue("request", key("request")),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "de-DE")
		ctx = context.WithValue(ctx, key("request"), "r1")
		log.With(logger.TypeName("Date")).InfoContext(ctx, "parsed")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "de-DE", entry["culture"])
		assert.Equal(t, "r1", entry["request"])
		assert.Equal(t, "Date", entry["type"])
	})

	t.Run("discard", func(t *testing.T) {
		t.Parallel()
		log := logger.Discard()
		require.NotNil(t, log)
		assert.NotPanics(t, func() { log.Error("dropped") })
	})
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatJSON)))
	slog.Info("default")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "default", entry["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, expected := range map[string]logger.Format{"": logger.FormatText, "TEXT": logger.FormatText, " json ": logger.FormatJSON} {
		f, err := logger.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, f)
	}
	_, err := logger.ParseFormat("xml")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for in, expected := range map[string]slog.Level{"": slog.LevelInfo, "debug": slog.LevelDebug, "WARN": slog.LevelWarn, "error": slog.LevelError, "info+2": slog.LevelInfo + 2} {
		l, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, l, in)
	}
	_, err := logger.ParseLevel("loud")
	assert.Error(t, err)
}
