// Package zap adapts a *zap.Logger to rlp.Logger.
package zap

import (
	"sort"

	"github.com/unkn0wn-root/rlp"
	"go.uber.org/zap"
)

var _ rlp.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

// New wraps l under the "rlp" name. A nil l yields a no-op logger.
func New(l *zap.Logger) ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return ZapLogger{L: l.Named("rlp")}
}

func (z ZapLogger) Debug(msg string, f rlp.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f rlp.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f rlp.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f rlp.Fields) { z.L.Error(msg, zf(f)...) }

// zf converts fields in key order; error values keep zap's error encoding.
func zf(f rlp.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		if err, ok := f[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
