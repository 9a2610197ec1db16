package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/minikit/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output with attrs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "minikit")),
		)
		log.Info("request settled", logger.Component("request"), logger.StatusCode(200))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "request settled", rec["msg"])
		assert.Equal(t, "minikit", rec["service"])
		assert.Equal(t, "request", rec["component"])
		assert.EqualValues(t, 200, rec["status_code"])
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("hidden")
		assert.Empty(t, buf.String())

		log.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("development enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("minikit"), logger.WithOutput(&buf))
		log.Debug("debug line")
		assert.Contains(t, buf.String(), "debug line")
		assert.Contains(t, buf.String(), "service=minikit")
	})

	t.Run("production writes json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("minikit"), logger.WithOutput(&buf))
		log.Debug("dropped")
		log.Info("kept")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "kept", rec["msg"])
		assert.Equal(t, "production", rec["env"])
	})
}

func TestNewNop(t *testing.T) {
	t.Parallel()
	assert.False(t, logger.NewNop().Enabled(t.Context(), slog.LevelError))
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	assert.Equal(t, "error", logger.Error(err).Key)
	assert.Equal(t, err, logger.Error(err).Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.Equal(t, "req-1", logger.RequestID("req-1").Value.String())

	assert.True(t, logger.URL("").Equal(slog.Attr{}))
	assert.Equal(t, "url", logger.URL("https://x").Key)

	assert.True(t, logger.Key("k", nil).Equal(slog.Attr{}))
	assert.Equal(t, int64(3), logger.Count("n", 3).Value.Int64())

	d := 150 * time.Millisecond
	assert.Equal(t, d, logger.Duration(d).Value.Duration())

	g := logger.Group("req", logger.Method("GET"), logger.Action("get"))
	require.Equal(t, slog.KindGroup, g.Value.Kind())
	assert.Len(t, g.Value.Group(), 2)
}
