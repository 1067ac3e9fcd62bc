package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)

	lvl, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	logger, err := New("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = New("debug", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = New("nope", false)
	require.Error(t, err)
}

func TestAdapters(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	b := NewBadgerLogger(logger)
	b.Warningf("level %d", 1)
	b.Errorf("boom")

	p := NewPebbleLogger(logger)
	p.Infof("flushed %s", "memtable")
	assert.Panics(t, func() { p.Fatalf("corrupt") })

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "level 1", entries[0].Message)
	assert.Equal(t, "badger", entries[0].ContextMap()["engine"])
	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
	assert.Equal(t, "pebble", entries[2].ContextMap()["engine"])
	assert.Equal(t, zapcore.PanicLevel, entries[3].Level)

	assert.NotNil(t, OrNop(nil))
}
