// Package chatalerthttp reports panics escaping net/http handlers.
package chatalerthttp

import (
	"net/http"

	chatalert "github.com/chatalert/chatalert-go"
)

type Handler struct {
	repanic  bool
	notifier *chatalert.Notifier
}

type Options struct {
	// Repanic configures whether the recovered panic is raised again after
	// reporting. Set it to true when another recovery middleware further
	// out produces the HTTP response.
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

// Handle wraps handler and reports any panic it raises.
func (h *Handler) Handle(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		defer h.recoverWithChatAlert()
		handler.ServeHTTP(rw, r)
	})
}

// HandleFunc is the http.HandlerFunc flavor of Handle.
func (h *Handler) HandleFunc(handler http.HandlerFunc) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		defer h.recoverWithChatAlert()
		handler(rw, r)
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

// The notifier's failure policy is not propagated here: a middleware has
// no caller to raise to, so delivery failures stay observable through the
// AfterReport hook only.
func (h *Handler) report(err error, handled bool) {
	if h.notifier != nil {
		_ = h.notifier.OnException(err, handled)
		return
	}
	_ = chatalert.Notify(err, handled)
}
