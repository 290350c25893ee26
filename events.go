package chatalert

// ExceptionRecord is the captured error together with the handled flag
// supplied by the caller. Records are owned by the caller and referenced,
// not copied, for the duration of one OnException invocation.
type ExceptionRecord struct {
	Err     error
	Handled bool
}

// ReportingEvent is passed to the BeforeReport hook. The hook may replace
// Options or set Cancel to drop the report before anything is sent.
type ReportingEvent struct {
	Exception *ExceptionRecord
	Options   *DeliveryOptions
	Cancel    bool
}

// ReportedEvent is passed to the AfterReport hook once a send was
// attempted. Err carries any transport error raised during the send.
type ReportedEvent struct {
	Exception *ExceptionRecord
	Options   *DeliveryOptions
	Delivered bool
	Err       error
}
