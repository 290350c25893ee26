package chatalert

import "sync"

// MockReporter implements [Reporter] for use in tests. The zero value
// declines every report; set Delivered or Err to shape the outcome.
type MockReporter struct {
	mu         sync.Mutex
	exceptions []*ExceptionRecord
	options    []*DeliveryOptions

	Delivered bool
	Err       error
}

func (reporter *MockReporter) Send(exception *ExceptionRecord, options *DeliveryOptions) (bool, error) {
	reporter.mu.Lock()
	defer reporter.mu.Unlock()
	reporter.exceptions = append(reporter.exceptions, exception)
	reporter.options = append(reporter.options, options)
	return reporter.Delivered, reporter.Err
}

// SendCount returns how many sends were attempted.
func (reporter *MockReporter) SendCount() int {
	reporter.mu.Lock()
	defer reporter.mu.Unlock()
	return len(reporter.exceptions)
}

// LastException returns the record passed to the most recent send, or nil.
func (reporter *MockReporter) LastException() *ExceptionRecord {
	reporter.mu.Lock()
	defer reporter.mu.Unlock()
	if len(reporter.exceptions) == 0 {
		return nil
	}
	return reporter.exceptions[len(reporter.exceptions)-1]
}

// LastOptions returns the options passed to the most recent send, or nil.
func (reporter *MockReporter) LastOptions() *DeliveryOptions {
	reporter.mu.Lock()
	defer reporter.mu.Unlock()
	if len(reporter.options) == 0 {
		return nil
	}
	return reporter.options[len(reporter.options)-1]
}
