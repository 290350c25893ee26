// Package chatalertnegroni reports panics escaping Negroni middleware
// chains.
package chatalertnegroni

import (
	"net/http"

	chatalert "github.com/chatalert/chatalert-go"
	"github.com/urfave/negroni/v3"
)

type Handler struct {
	repanic  bool
	notifier *chatalert.Notifier
}

type Options struct {
	// Repanic configures whether the recovered panic is raised again after
	// reporting. Set it to true when negroni.Recovery is also installed,
	// so it can still produce the HTTP response.
	Repanic bool
	// Notifier overrides the package-level notifier configured with
	// chatalert.Init.
	Notifier *chatalert.Notifier
}

// New returns a handler usable with negroni's Use().
func New(options Options) negroni.Handler {
	return &Handler{
		repanic:  options.Repanic,
		notifier: options.Notifier,
	}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	defer h.recoverWithChatAlert()
	next(rw, r)
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
