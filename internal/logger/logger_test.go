package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("returns the logger stored in ctx", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		lg := zap.New(core).Sugar()

		ctx := WithLogger(context.Background(), lg)
		FromContext(ctx).Infof("hello %s", "world")

		require.Equal(t, 1, logs.Len())
		require.Equal(t, "hello world", logs.All()[0].Message)
	})

	t.Run("falls back to the global logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}
