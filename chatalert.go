// Package chatalert intercepts unhandled application errors and forwards a
// formatted report to a chat-style webhook endpoint.
//
// The package can be used through a single process-wide Notifier configured
// with Init, or through explicitly constructed Notifier values when an
// application needs more than one webhook target.
package chatalert

import (
	"fmt"
	"sync"

	"github.com/chatalert/chatalert-go/internal/debuglog"
)

const SdkName string = "chatalert.go"
const SdkVersion string = "0.3.0"
const SdkUserAgent string = SdkName + "/" + SdkVersion

var (
	globalMu       sync.RWMutex
	globalNotifier *Notifier
)

// Init configures the package-level Notifier used by Notify, Recover and
// the framework middlewares when no explicit Notifier is given.
func Init(options Options) error {
	notifier, err := NewNotifier(options)
	if err != nil {
		return err
	}
	globalMu.Lock()
	globalNotifier = notifier
	globalMu.Unlock()
	return nil
}

// CurrentNotifier returns the package-level Notifier, or nil before Init.
func CurrentNotifier() *Notifier {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalNotifier
}

// Notify reports err through the package-level Notifier. Reports made
// before Init are dropped.
func Notify(err error, handled bool) error {
	notifier := CurrentNotifier()
	if notifier == nil {
		debuglog.Println("Notify called before Init, report dropped")
		return nil
	}
	return notifier.OnException(err, handled)
}

// Recover reports a recovered panic through the package-level Notifier.
// Meant to be used directly in a defer statement.
func Recover() {
	if recovered := recover(); recovered != nil {
		_ = Notify(RecoveredError(recovered), false)
	}
}

// RecoveredError converts a recover() value into an error, passing error
// values through unchanged.
func RecoveredError(recovered interface{}) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", recovered)
}
