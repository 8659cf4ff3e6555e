package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit(t *testing.T) {
	t.Run("Development", func(t *testing.T) {
		require.NoError(t, Init("development", "debug"))
		require.NotNil(t, globalLogger)
		assert.True(t, globalLogger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("Production", func(t *testing.T) {
		require.NoError(t, Init("production", "info"))
		assert.False(t, globalLogger.Core().Enabled(zap.DebugLevel))
		assert.True(t, globalLogger.Core().Enabled(zap.InfoLevel))
	})

	t.Run("InvalidLevelFallsBack", func(t *testing.T) {
		require.NoError(t, Init("production", "loud"))
		assert.True(t, globalLogger.Core().Enabled(zap.InfoLevel))
	})
}

func TestGet_BeforeInit(t *testing.T) {
	globalLogger = nil
	assert.NotNil(t, Get())
	assert.NotPanics(t, func() { Get().Info("noop") })
}

func TestNamed(t *testing.T) {
	require.NoError(t, Init("development", "info"))
	assert.NotNil(t, Named("display"))

	globalLogger = nil
	assert.NotNil(t, Named("display"))
}

func TestSync(t *testing.T) {
	globalLogger = nil
	assert.NotPanics(t, Sync)

	require.NoError(t, Init("development", "info"))
	assert.NotPanics(t, Sync)
}
