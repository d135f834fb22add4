// Package monitor forwards SNS alarm notifications to a Slack incoming webhook.
package monitor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"space-finder-api/internal/config"
)

// MessagePrefix is prepended to every forwarded alarm message
const MessagePrefix = "Huston, we have a problem: "

const defaultTimeout = 10 * time.Second

// SlackMessage is the webhook payload
type SlackMessage struct {
	Text string `json:"text"`
}

// WebhookError is returned when the webhook answers with a non-2xx status
type WebhookError struct {
	StatusCode int
	Body       string
}

func (e *WebhookError) Error() string {
	return fmt.Sprintf("slack webhook returned status %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the status is worth retrying
func (e *WebhookError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// transportError wraps a failure to reach the webhook at all
type transportError struct {
	err error
}

func (e *transportError) Error() string   { return fmt.Sprintf("slack webhook request failed: %v", e.err) }
func (e *transportError) Unwrap() error   { return e.err }
func (e *transportError) Retryable() bool { return true }

// HTTPClient is the subset of *http.Client used by the notifier
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Notifier posts alarm messages to Slack
type Notifier struct {
	webhookURL string
	client     HTTPClient
	retry      *RetryConfig
	logger     *logrus.Logger
}

// NewNotifier creates a notifier for the configured webhook. client may be nil.
func NewNotifier(cfg config.MonitorConfig, client HTTPClient, logger *logrus.Logger) *Notifier {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	if logger == nil {
		logger = logrus.New()
	}
	retry := DefaultRetryConfig()
	if cfg.MaxAttempts > 0 {
		retry.MaxAttempts = cfg.MaxAttempts
	}
	return &Notifier{
		webhookURL: cfg.SlackWebhookURL,
		client:     client,
		retry:      retry,
		logger:     logger,
	}
}

// WithRetryConfig replaces the retry configuration
func (n *Notifier) WithRetryConfig(rc *RetryConfig) *Notifier {
	n.retry = rc
	return n
}

// HandleSNS forwards every record of the event, in order. A failed delivery
// is logged and the remaining records are still posted; the failures are
// returned together once all records were tried.
func (n *Notifier) HandleSNS(ctx context.Context, event events.SNSEvent) error {
	if n.webhookURL == "" {
		n.logger.WithField("records", len(event.Records)).Warn("SLACK_WEBHOOK_URL is not set, dropping notifications")
		return nil
	}

	var errs []error
	for i, record := range event.Records {
		fields := logrus.Fields{
			"record":     i,
			"message_id": record.SNS.MessageID,
			"topic_arn":  record.SNS.TopicArn,
		}

		if err := n.Notify(ctx, record.SNS.Message); err != nil {
			n.logger.WithFields(fields).WithError(err).Error("Failed to forward notification")
			errs = append(errs, fmt.Errorf("forward record %d: %w", i, err))
			continue
		}

		n.logger.WithFields(fields).Info("Notification forwarded")
	}

	return errors.Join(errs...)
}

// Notify posts a single message to the webhook
func (n *Notifier) Notify(ctx context.Context, message string) error {
	payload, err := json.Marshal(SlackMessage{Text: MessagePrefix + message})
	if err != nil {
		return fmt.Errorf("failed to encode slack message: %w", err)
	}

	return withRetry(ctx, n.retry, func(ctx context.Context) error {
		return n.post(ctx, payload)
	})
}

func (n *Notifier) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return &transportError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &WebhookError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
