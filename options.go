package chatalert

import (
	"io"
	"net/http"
)

// DeliveryOptions describe one webhook target and how reports posted to it
// are shaped. The value configured on Options.Delivery is the process-wide
// default; a BeforeReport hook may swap in a different value per report.
type DeliveryOptions struct {
	// Endpoint is the webhook URL reports are posted to.
	Endpoint string
	// Channel overrides the channel the webhook was registered with.
	Channel string
	// Username is the display name the report is posted under.
	Username string
	// IconEmoji is the avatar shorthand for the posted message.
	IconEmoji string
	// ServerName annotates every report with the reporting host.
	ServerName string
	// Environment annotates every report, e.g. "production".
	Environment string
}

// Options configure a Notifier. All fields are read once by NewNotifier
// and treated as immutable afterwards.
type Options struct {
	// Delivery holds the default delivery options. May be left nil when a
	// BeforeReport hook supplies options per report; reaching a send with
	// no options at all is a configuration error.
	Delivery *DeliveryOptions
	// IgnoreHandled suppresses reports for errors whose handled flag was
	// set by the caller.
	IgnoreHandled bool
	// IgnoreKinds lists sample error values whose concrete types must
	// never generate a report. Matching is by exact concrete type, no
	// unwrapping and no interface or hierarchy matching.
	IgnoreKinds []error
	// RaiseDeliveryErrors makes OnException return delivery failures to
	// the caller. When false a failed send is only observable through the
	// AfterReport hook.
	RaiseDeliveryErrors bool
	// BeforeReport runs before every send. It may change the event's
	// Options or set Cancel to drop the report.
	BeforeReport func(event *ReportingEvent)
	// AfterReport observes the outcome of every attempted send.
	AfterReport func(event *ReportedEvent)
	// Reporter replaces the default webhook reporter, mainly for tests.
	Reporter Reporter
	// HTTPClient is used by the default webhook reporter.
	HTTPClient *http.Client
	// Debug enables the SDK's diagnostic log.
	Debug bool
	// DebugWriter receives the diagnostic log, os.Stderr when nil.
	DebugWriter io.Writer
}
