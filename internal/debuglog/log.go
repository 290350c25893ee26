// Package debuglog holds the SDK's own diagnostic logger. Output is
// discarded unless the notifier was configured with Debug enabled.
package debuglog

import (
	"io"
	"log"
	"sync"
)

var (
	logger = log.New(io.Discard, "[ChatAlert] ", log.LstdFlags)
	mu     sync.RWMutex
)

// SetLogger replaces the current debug logger with a new one.
// Safe for concurrent use.
func SetLogger(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects the current debug logger to w.
func SetOutput(w io.Writer) {
	mu.RLock()
	defer mu.RUnlock()
	logger.SetOutput(w)
}

// GetLogger returns the current logger instance.
// Safe for concurrent use.
func GetLogger() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Printf calls Printf on the underlying logger.
func Printf(format string, args ...interface{}) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		l.Printf(format, args...)
	}
}

// Println calls Println on the underlying logger.
func Println(args ...interface{}) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		l.Println(args...)
	}
}
