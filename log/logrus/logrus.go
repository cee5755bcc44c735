// Package logrus adapts a *logrus.Entry to rlp.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/rlp"
)

var _ rlp.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New wraps e. A nil e logs through the logrus standard logger.
func New(e *logrus.Entry) LogrusLogger {
	if e == nil {
		e = logrus.NewEntry(logrus.StandardLogger())
	}
	return LogrusLogger{E: e}
}

func (l LogrusLogger) Debug(msg string, f rlp.Fields) { l.log(logrus.DebugLevel, msg, f) }
func (l LogrusLogger) Info(msg string, f rlp.Fields)  { l.log(logrus.InfoLevel, msg, f) }
func (l LogrusLogger) Warn(msg string, f rlp.Fields)  { l.log(logrus.WarnLevel, msg, f) }
func (l LogrusLogger) Error(msg string, f rlp.Fields) { l.log(logrus.ErrorLevel, msg, f) }

// log skips field conversion when the level is off; decode rejections are
// logged on hot paths.
func (l LogrusLogger) log(lvl logrus.Level, msg string, f rlp.Fields) {
	if !l.E.Logger.IsLevelEnabled(lvl) {
		return
	}
	l.E.WithFields(logrus.Fields(f)).Log(lvl, msg)
}
