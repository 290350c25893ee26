// Package chatalertfasthttp reports panics escaping fasthttp request
// handlers.
package chatalertfasthttp

import (
	chatalert "github.com/chatalert/chatalert-go"
	"github.com/valyala/fasthttp"
)

type Handler struct {
	repanic  bool
	notifier *chatalert.Notifier
}

type Options struct {
	// Repanic configures whether the recovered panic is raised again after
	// reporting. fasthttp has no recovery handler of its own, so leaving
	// this false keeps the worker alive.
	Repanic bool
	// Notifier overrides the package-level notifier configured with
	// chatalert.Init.
	Notifier *chatalert.Notifier
}

func New(options Options) *Handler {
	return &Handler{
		repanic:  options.Repanic,
		notifier: options.Notifier,
	}
}

// Handle wraps a fasthttp.RequestHandler and reports any panic it raises.
func (h *Handler) Handle(handler fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		defer h.recoverWithChatAlert()
		handler(ctx)
	}
}

func (h *Handler) recoverWithChatAlert() {
	if recovered := recover(); recovered != nil {
		h.report(chatalert.RecoveredError(recovered), false)
		if h.repanic {
			panic(recovered)
		}
	}
}

func (h *Handler) report(err error, handled bool) {
	if h.notifier != nil {
		_ = h.notifier.OnException(err, handled)
		return
	}
	_ = chatalert.Notify(err, handled)
}
