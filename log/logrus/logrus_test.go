package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unkn0wn-root/rlp"
)

func TestLogrusLogger(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.InfoLevel)
	l := New(logrus.NewEntry(base))

	l.Debug("hidden", rlp.Fields{"a": 1})
	assert.Empty(t, hook.AllEntries())

	l.Warn("self-heal", rlp.Fields{"key": "rlp:ns:00", "reason": "decode_error"})
	require.Len(t, hook.AllEntries(), 1)
	e := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, e.Level)
	assert.Equal(t, "self-heal", e.Message)
	assert.Equal(t, "decode_error", e.Data["reason"])

	l.Error("boom", nil)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	l.Info("info", nil)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
}

func TestNewNilUsesStandardLogger(t *testing.T) {
	l := New(nil)
	assert.Same(t, logrus.StandardLogger(), l.E.Logger)
}
