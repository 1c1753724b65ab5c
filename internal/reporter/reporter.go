package reporter

import (
	"context"
	"log"
	"time"
)

// Sender is the notification capability the reporter uses.
type Sender interface {
	Notify(ctx context.Context, text, color string) error
}

// Reporter sends short failure messages to the team channel with a danger
// colored sidebar. It is nil-safe: if the receiver or its sender is nil,
// Notify is a no-op. Delivery failures are logged, never propagated.
type Reporter struct {
	sender Sender
	color  string
}

func New(sender Sender, color string) *Reporter {
	return &Reporter{sender: sender, color: color}
}

func (r *Reporter) Notify(msg string) {
	if r == nil || r.sender == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.sender.Notify(ctx, msg, r.color); err != nil {
		log.Printf("[WARN] failed to send failure report: %v", err)
	}
}
