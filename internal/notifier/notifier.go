// Package notifier posts formatted messages to a Slack channel through an
// incoming webhook. One call sends exactly one notification; idempotency is
// the caller's responsibility.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/slack-go/slack"
)

// Attachment sidebar colors.
const (
	ColorDefault = "#36a64f"
	ColorDanger  = "danger"
)

// ErrInvalidInput marks a usage error raised before any network activity.
var ErrInvalidInput = errors.New("invalid notification input")

type Notifier struct {
	webhookURL string
	channel    string // optional override; omitted from the payload when empty
	username   string
	icon       string
	client     *http.Client
}

// New creates a Notifier for the given webhook URL. client may be nil, in
// which case a default client with a 30 second timeout is used.
func New(webhookURL, channel, username, icon string, client *http.Client) *Notifier {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Notifier{
		webhookURL: webhookURL,
		channel:    channel,
		username:   username,
		icon:       icon,
		client:     client,
	}
}

// Notify sends one message carrying text in a single attachment with the
// given sidebar color. Blank text or color fails with ErrInvalidInput before
// the request is made. A transport failure or non-2xx response is wrapped as
// a delivery error; note the underlying webhook post accepts only HTTP 200,
// which is the status Slack responds with on success. There is no retry.
func (n *Notifier) Notify(ctx context.Context, text, color string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: text must be a non-empty string", ErrInvalidInput)
	}
	if strings.TrimSpace(color) == "" {
		return fmt.Errorf("%w: color must be a non-empty string", ErrInvalidInput)
	}

	msg := &slack.WebhookMessage{
		Channel:   n.channel,
		Username:  n.username,
		IconEmoji: n.icon,
		Attachments: []slack.Attachment{{
			Color: color,
			Text:  text,
		}},
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, n.webhookURL, n.client, msg); err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}

	return nil
}
