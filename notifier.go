package chatalert

import (
	"os"
	"reflect"

	"github.com/chatalert/chatalert-go/internal/debuglog"
)

// Notifier is the report decision pipeline. It decides per error whether a
// report should go out, resolves the effective delivery options, delegates
// the single send attempt to its Reporter and applies the failure policy.
//
// Configuration is fixed at construction; concurrent OnException calls are
// safe as long as nothing mutates the shared Options afterwards.
type Notifier struct {
	delivery            *DeliveryOptions
	ignoreHandled       bool
	ignoreKinds         map[reflect.Type]struct{}
	raiseDeliveryErrors bool
	beforeReport        func(event *ReportingEvent)
	afterReport         func(event *ReportedEvent)
	reporter            Reporter
}

// NewNotifier validates options and returns a ready Notifier. An invalid
// default endpoint fails here rather than on the first report.
func NewNotifier(options Options) (*Notifier, error) {
	if options.Debug {
		writer := options.DebugWriter
		if writer == nil {
			writer = os.Stderr
		}
		debuglog.SetOutput(writer)
	}

	if options.Delivery != nil {
		if _, err := ParseEndpoint(options.Delivery.Endpoint); err != nil {
			return nil, err
		}
	}

	reporter := options.Reporter
	if reporter == nil {
		reporter = NewWebhookReporter(options.HTTPClient)
	}

	ignoreKinds := make(map[reflect.Type]struct{}, len(options.IgnoreKinds))
	for _, kind := range options.IgnoreKinds {
		if kind == nil {
			continue
		}
		ignoreKinds[reflect.TypeOf(kind)] = struct{}{}
	}

	return &Notifier{
		delivery:            options.Delivery,
		ignoreHandled:       options.IgnoreHandled,
		ignoreKinds:         ignoreKinds,
		raiseDeliveryErrors: options.RaiseDeliveryErrors,
		beforeReport:        options.BeforeReport,
		afterReport:         options.AfterReport,
		reporter:            reporter,
	}, nil
}

// SetBeforeReport registers the pre-report hook, replacing any previous
// registration. At most one hook is held at a time.
func (notifier *Notifier) SetBeforeReport(hook func(event *ReportingEvent)) {
	notifier.beforeReport = hook
}

// SetAfterReport registers the post-report hook, replacing any previous
// registration.
func (notifier *Notifier) SetAfterReport(hook func(event *ReportedEvent)) {
	notifier.afterReport = hook
}

// OnException runs the full report pipeline for a single error, entirely
// on the calling goroutine: exclusion rules, the BeforeReport hook, one
// send attempt, the AfterReport hook, then the failure policy.
//
// A ConfigurationError is returned whenever a report must go out and no
// delivery options are resolvable. Delivery failures are returned only
// when the notifier was configured with RaiseDeliveryErrors; the captured
// transport error is returned as-is, a declined send as a DeliveryError.
// Panics raised inside hooks are not recovered; hooks are trusted
// extension code.
func (notifier *Notifier) OnException(err error, handled bool) error {
	if err == nil {
		return nil
	}

	record := &ExceptionRecord{Err: err, Handled: handled}

	if notifier.ignoreHandled && record.Handled {
		debuglog.Printf("Report dropped: %v was already handled upstream\n", err)
		return nil
	}

	if _, ok := notifier.ignoreKinds[reflect.TypeOf(record.Err)]; ok {
		debuglog.Printf("Report dropped: kind %T is ignored\n", err)
		return nil
	}

	options := notifier.delivery
	if notifier.beforeReport != nil {
		event := &ReportingEvent{Exception: record, Options: options}
		notifier.beforeReport(event)
		options = event.Options
		if event.Cancel {
			debuglog.Println("Report cancelled by the BeforeReport hook")
			return nil
		}
	}

	if options == nil {
		return &ConfigurationError{"no delivery options configured and none supplied by the BeforeReport hook"}
	}

	delivered, sendErr := notifier.reporter.Send(record, options)

	// The AfterReport hook observes the outcome before any error is
	// finally returned.
	if notifier.afterReport != nil {
		notifier.afterReport(&ReportedEvent{
			Exception: record,
			Options:   options,
			Delivered: delivered,
			Err:       sendErr,
		})
	}

	if delivered && sendErr == nil {
		return nil
	}

	if sendErr != nil {
		debuglog.Printf("Report delivery errored: %v\n", sendErr)
	} else {
		debuglog.Println("Report declined by the webhook target")
	}

	if !notifier.raiseDeliveryErrors {
		return nil
	}
	if sendErr != nil {
		return sendErr
	}
	return &DeliveryError{"webhook target declined the report"}
}
