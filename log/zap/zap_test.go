package zap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unkn0wn-root/rlp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))

	l.Debug("rejected", rlp.Fields{"offset": 3, "err": errors.New("bad")})
	l.Info("info", nil)
	l.Warn("warn", rlp.Fields{"key": "rlp:ns:00"})
	l.Error("error", nil)

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "rlp", entries[0].LoggerName)
	ctx := entries[0].ContextMap()
	assert.EqualValues(t, 3, ctx["offset"])
	assert.Equal(t, "bad", ctx["err"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "rlp:ns:00", entries[2].ContextMap()["key"])
}

func TestNewNil(t *testing.T) {
	assert.NotPanics(t, func() { New(nil).Info("x", rlp.Fields{"a": 1}) })
}

func TestDecoderLogsThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := rlp.NewDecoder(rlp.Options{Logger: New(zap.New(core))})
	_, err := d.DecodeValue([]byte{0x81, 0x00})
	require.ErrorIs(t, err, rlp.ErrNonCanonicalSingleByte)
	require.Equal(t, 1, logs.Len())
	assert.EqualValues(t, 0, logs.All()[0].ContextMap()["offset"])
}
