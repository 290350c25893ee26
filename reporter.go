package chatalert

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const defaultSendTimeout = time.Second * 30

// Reporter delivers a single exception report to the webhook target.
//
// Send is synchronous and attempts exactly one delivery. It returns true
// on confirmed delivery and false when the target declined the report
// without a transport error. Transport-level problems (network,
// serialization) are returned as an error instead of being folded into
// the boolean.
type Reporter interface {
	Send(exception *ExceptionRecord, options *DeliveryOptions) (bool, error)
}

// WebhookReporter is the default Reporter. It posts a chat-style JSON
// message to the endpoint named by the delivery options.
type WebhookReporter struct {
	client *http.Client
}

// NewWebhookReporter wraps client, which may be nil to get a client with
// the default send timeout.
func NewWebhookReporter(client *http.Client) *WebhookReporter {
	if client == nil {
		client = &http.Client{Timeout: defaultSendTimeout}
	}
	return &WebhookReporter{client: client}
}

// webhookMessage is the wire shape posted to the webhook target.
type webhookMessage struct {
	Channel   string  `json:"channel,omitempty"`
	Username  string  `json:"username,omitempty"`
	IconEmoji string  `json:"icon_emoji,omitempty"`
	Text      string  `json:"text"`
	Report    *Report `json:"report"`
}

func (reporter *WebhookReporter) Send(exception *ExceptionRecord, options *DeliveryOptions) (bool, error) {
	endpoint, err := ParseEndpoint(options.Endpoint)
	if err != nil {
		return false, err
	}

	report := NewReport(exception, options)

	body, err := json.Marshal(webhookMessage{
		Channel:   options.Channel,
		Username:  options.Username,
		IconEmoji: options.IconEmoji,
		Text:      report.Text(),
		Report:    report,
	})
	if err != nil {
		return false, errors.Wrap(err, "encoding webhook payload")
	}

	request, err := http.NewRequest(http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return false, errors.Wrap(err, "building webhook request")
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", SdkUserAgent)

	response, err := reporter.client.Do(request)
	if err != nil {
		return false, errors.Wrap(err, "posting report to webhook target")
	}
	defer response.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, response.Body)

	return response.StatusCode >= 200 && response.StatusCode < 300, nil
}
