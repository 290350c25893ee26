// Package chatalertlogrus provides a Logrus hook that forwards logged
// errors to a chatalert Notifier.
package chatalertlogrus

import (
	"errors"

	chatalert "github.com/chatalert/chatalert-go"
	"github.com/sirupsen/logrus"
)

// Hook implements logrus.Hook. Entries at the configured levels are
// reported; when an entry carries an error under logrus.ErrorKey that
// error is reported, otherwise one is synthesized from the entry message.
type Hook struct {
	levels   []logrus.Level
	notifier *chatalert.Notifier
}

var defaultLevels = []logrus.Level{
	logrus.PanicLevel,
	logrus.FatalLevel,
	logrus.ErrorLevel,
}

// New returns a hook firing on the given levels, or on panic, fatal and
// error entries when levels is empty. A nil notifier falls back to the
// package-level notifier configured with chatalert.Init.
func New(levels []logrus.Level, notifier *chatalert.Notifier) *Hook {
	if len(levels) == 0 {
		levels = defaultLevels
	}
	return &Hook{
		levels:   levels,
		notifier: notifier,
	}
}

func (hook *Hook) Levels() []logrus.Level {
	return hook.levels
}

// Fire reports the entry's error. The notifier's failure policy applies:
// a returned delivery error is printed by logrus itself.
func (hook *Hook) Fire(entry *logrus.Entry) error {
	err, ok := entry.Data[logrus.ErrorKey].(error)
	if !ok {
		err = errors.New(entry.Message)
	}

	if hook.notifier != nil {
		return hook.notifier.OnException(err, false)
	}
	return chatalert.Notify(err, false)
}
