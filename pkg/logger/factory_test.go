package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/optguard/pkg/environment"
	"github.com/dmitrymomot/optguard/pkg/logger"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew_Defaults(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Info("shown", logger.OptionName("site_email"))
	entry := decodeLine(t, buf)
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "site_email", entry["option"])
}

func TestWithEnvironment(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment(environment.Development, "optguard"), logger.WithOutput(buf))
		log.Debug("msg")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "service=optguard")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment(environment.Production, "optguard"), logger.WithOutput(buf))
		log.Debug("hidden")
		assert.Empty(t, buf.String())

		log.Info("msg")
		entry := decodeLine(t, buf)
		assert.Equal(t, "optguard", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})
}

func TestWithLevelName(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevelName("warn"))
	log.Info("hidden")
	assert.Empty(t, buf.String())
	log.Warn("shown")
	assert.NotEmpty(t, buf.String())

	buf.Reset()
	log = logger.New(logger.WithOutput(buf), logger.WithLevelName("loud"))
	log.Info("default level kept")
	assert.NotEmpty(t, buf.String())
}

func TestWithFormat_Invalid(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat("xml"))
	})
}

func TestWithContextExtractors(t *testing.T) {
	type traceKey struct{}
	extractor := func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(traceKey{}).(string); ok {
			return slog.String("trace", v), true
		}
		return slog.Attr{}, false
	}

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(nil, extractor),
		logger.WithAttr(slog.String("static", "yes")),
	)

	ctx := context.WithValue(context.Background(), traceKey{}, "abc")
	log.With(logger.Component("registry")).WithGroup("g").InfoContext(ctx, "msg")

	entry := decodeLine(t, buf)
	assert.Equal(t, "yes", entry["static"])
	assert.Equal(t, "registry", entry["component"])
	group, ok := entry["g"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "abc", group["trace"])

	buf.Reset()
	log.Info("plain")
	entry = decodeLine(t, buf)
	assert.NotContains(t, entry, "trace")
	assert.Equal(t, "yes", entry["static"])
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
