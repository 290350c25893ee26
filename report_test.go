package chatalert

import (
	"errors"
	"strings"
	"testing"
)

func TestNewReport(t *testing.T) {
	record := &ExceptionRecord{Err: timeoutError{}, Handled: true}
	options := &DeliveryOptions{
		Endpoint:    "https://hooks.example.com/x",
		ServerName:  "web-1",
		Environment: "staging",
	}

	report := NewReport(record, options)

	assertEqual(t, report.Kind, "chatalert.timeoutError")
	assertEqual(t, report.Message, "operation timed out")
	assertEqual(t, report.Handled, true)
	assertEqual(t, report.ServerName, "web-1")
	assertEqual(t, report.Environment, "staging")
	assertEqual(t, report.Sdk, SdkInfo{Name: SdkName, Version: SdkVersion})
	assertNotEqual(t, report.ReportID, "")
	if report.Timestamp == 0 {
		t.Error("report timestamp not set")
	}
	if report.Stacktrace != nil {
		t.Error("unexpected stacktrace for an error without one")
	}
}

func TestNewReportExtractsStacktrace(t *testing.T) {
	report := NewReport(&ExceptionRecord{Err: failedFetch()}, nil)

	if report.Stacktrace == nil {
		t.Fatal("report is missing the error's stacktrace")
	}
	assertEqual(t, report.Kind, "*errors.fundamental")
}

func TestReportText(t *testing.T) {
	report := NewReport(&ExceptionRecord{Err: errors.New("boom")}, nil)
	text := report.Text()
	if !strings.Contains(text, "boom") {
		t.Errorf("text %q does not mention the error", text)
	}
	if strings.Contains(text, "[") {
		t.Errorf("text %q has an environment prefix without an environment", text)
	}

	report = NewReport(
		&ExceptionRecord{Err: errors.New("boom")},
		&DeliveryOptions{Environment: "production"},
	)
	if !strings.HasPrefix(report.Text(), "[production] ") {
		t.Errorf("text %q is missing the environment prefix", report.Text())
	}
}
