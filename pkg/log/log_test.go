package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextLogger(t *testing.T) {
	ctx := context.Background()

	l1 := Ctx(ctx)
	require.NotNil(t, l1)
	assert.Equal(t, defaultLogger, l1, "Ctx should return defaultLogger")

	customLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	require.NotEqual(t, defaultLogger, customLogger)

	l2 := Ctx(With(ctx, customLogger))
	assert.Equal(t, customLogger, l2, "Ctx should return customLogger")
}

func TestWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := With(context.Background(), base)

	t.Run("No Attrs", func(t *testing.T) {
		assert.Equal(t, ctx, WithAttrs(ctx))
	})

	t.Run("Attrs Appended", func(t *testing.T) {
		buf.Reset()
		ctx := WithAttrs(ctx, slog.String("reqPath", "/api/products"), slog.Int("page", 2))
		Ctx(ctx).InfoContext(ctx, "listing")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "listing", line["msg"])
		assert.Equal(t, "/api/products", line["reqPath"])
		assert.Equal(t, 2.0, line["page"])
	})
}

func TestSetDefaultLogLevel(t *testing.T) {
	defer SetDefaultLogLevel(slog.LevelInfo)

	assert.False(t, defaultLogger.Enabled(context.Background(), slog.LevelDebug))
	SetDefaultLogLevel(slog.LevelDebug)
	assert.True(t, defaultLogger.Enabled(context.Background(), slog.LevelDebug))
}
