package chatalert

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Report is the formatted exception report posted to the webhook target.
type Report struct {
	ReportID    string      `json:"report_id"`
	Timestamp   int64       `json:"timestamp"`
	Kind        string      `json:"kind"`
	Message     string      `json:"message"`
	Handled     bool        `json:"handled"`
	ServerName  string      `json:"server_name,omitempty"`
	Environment string      `json:"environment,omitempty"`
	Sdk         SdkInfo     `json:"sdk"`
	Stacktrace  *Stacktrace `json:"stacktrace,omitempty"`
}

type SdkInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// NewReport builds the report for one exception record, pulling a stack
// trace out of the error when it carries one.
func NewReport(exception *ExceptionRecord, options *DeliveryOptions) *Report {
	report := &Report{
		ReportID:   uuid.New().String(),
		Timestamp:  time.Now().Unix(),
		Kind:       fmt.Sprintf("%T", exception.Err),
		Message:    exception.Err.Error(),
		Handled:    exception.Handled,
		Sdk:        SdkInfo{Name: SdkName, Version: SdkVersion},
		Stacktrace: ExtractStacktrace(exception.Err),
	}
	if options != nil {
		report.ServerName = options.ServerName
		report.Environment = options.Environment
	}
	return report
}

// Text renders the single-line chat message for the report.
func (report *Report) Text() string {
	text := fmt.Sprintf("*%s*: %s", report.Kind, report.Message)
	if report.Environment != "" {
		text = fmt.Sprintf("[%s] %s", report.Environment, text)
	}
	return text
}
