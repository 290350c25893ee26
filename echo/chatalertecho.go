// Package chatalertecho reports panics and handler errors from Echo apps.
package chatalertecho

import (
	chatalert "github.com/chatalert/chatalert-go"
	"github.com/labstack/echo/v4"
)

type handler struct {
	repanic             bool
	reportHandlerErrors bool
	notifier            *chatalert.Notifier
}

type Options struct {
	// Repanic configures whether the recovered panic is raised again after
	// reporting. Set it to true when Echo's own Recover middleware is also
	// installed, so it can still produce the HTTP response.
	Repanic bool
	// ReportHandlerErrors additionally reports errors returned by handlers
	// with the handled flag set, since Echo's HTTPErrorHandler will deal
	// with them.
	ReportHandlerErrors bool
	// Notifier overrides the package-level notifier configured with
	// chatalert.Init.
	Notifier *chatalert.Notifier
}

// New returns a middleware usable with Echo's Use().
func New(options Options) echo.MiddlewareFunc {
	h := handler{
		repanic:             options.Repanic,
		reportHandlerErrors: options.ReportHandlerErrors,
		notifier:            options.Notifier,
	}
	return h.handle
}

func (h *handler) handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		defer h.recoverWithChatAlert()

		err := next(ctx)
		if err != nil && h.reportHandlerErrors {
			h.report(err, true)
		}
		return err
	}
}

func (h *handler) recoverWithChatAlert() {
	if recovered := recover(); recovered != nil {
		h.report(chatalert.RecoveredError(recovered), false)
		if h.repanic {
			panic(recovered)
		}
	}
}

func (h *handler) report(err error, handled bool) {
	if h.notifier != nil {
		_ = h.notifier.OnException(err, handled)
		return
	}
	_ = chatalert.Notify(err, handled)
}
