// Package chatalertiris reports panics escaping Iris handlers.
package chatalertiris

import (
	chatalert "github.com/chatalert/chatalert-go"
	"github.com/kataras/iris/v12"
)

type handler struct {
	repanic  bool
	notifier *chatalert.Notifier
}

type Options struct {
	// Repanic configures whether the recovered panic is raised again after
	// reporting. Set it to true when Iris' own Recovery middleware is also
	// installed, so it can still produce the HTTP response.
	Repanic bool
	// Notifier overrides the package-level notifier configured with
	// chatalert.Init.
	Notifier *chatalert.Notifier
}

// New returns a handler usable with Iris' Use().
func New(options Options) iris.Handler {
	h := handler{
		repanic:  options.Repanic,
		notifier: options.Notifier,
	}
	return h.handle
}

func (h *handler) handle(ctx iris.Context) {
	defer h.recoverWithChatAlert()
	ctx.Next()
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
