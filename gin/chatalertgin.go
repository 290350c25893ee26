// Package chatalertgin reports panics and handler errors from Gin apps.
package chatalertgin

import (
	chatalert "github.com/chatalert/chatalert-go"
	"github.com/gin-gonic/gin"
)

type handler struct {
	repanic             bool
	reportHandlerErrors bool
	notifier            *chatalert.Notifier
}

type Options struct {
	// Repanic configures whether the recovered panic is raised again after
	// reporting. Set it to true when gin's own Recovery middleware is also
	// installed, so it can still produce the HTTP response.
	Repanic bool
	// ReportHandlerErrors additionally reports errors collected on the gin
	// context with the handled flag set, since gin's error handling chain
	// already dealt with them.
	ReportHandlerErrors bool
	// Notifier overrides the package-level notifier configured with
	// chatalert.Init.
	Notifier *chatalert.Notifier
}

// New returns a middleware usable with gin's Use().
func New(options Options) gin.HandlerFunc {
	h := handler{
		repanic:             options.Repanic,
		reportHandlerErrors: options.ReportHandlerErrors,
		notifier:            options.Notifier,
	}
	return h.handle
}

func (h *handler) handle(c *gin.Context) {
	defer h.recoverWithChatAlert()
	c.Next()

	if h.reportHandlerErrors {
		for _, ginErr := range c.Errors {
			h.report(ginErr.Err, true)
		}
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
