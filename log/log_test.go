package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger_RoutesPackageFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	Debug("generated", zap.String("formula", "random"))
	Warn("unrecognized formula", zap.String("formula", "xyz"))

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "generated", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "xyz", entries[1].ContextMap()["formula"])
}

func TestSetLogger_NilFallsBackToNop(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, Logger())
	assert.NotPanics(t, func() {
		Info("quiet")
		Error("quiet")
		Close()
	})
}

func TestInitialize(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	Initialize(true)
	assert.True(t, Logger().Core().Enabled(zapcore.DebugLevel))
	Initialize(false)
	assert.False(t, Logger().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Logger().Core().Enabled(zapcore.InfoLevel))
}
