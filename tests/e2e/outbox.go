//go:build e2e

package e2e

import (
	"context"
	"sync"

	"fulfillment-engine/internal/usecase/shared"
)

type SentMessage struct {
	Recipient string
	Subject   string
	Body      string
}

// Outbox records notifications and forwards them to the configured sender.
type Outbox struct {
	mu   sync.Mutex
	sent []SentMessage
	next shared.Notifier
}

func (o *Outbox) Notify(ctx context.Context, recipient, subject, body string) error {
	o.mu.Lock()
	o.sent = append(o.sent, SentMessage{Recipient: recipient, Subject: subject, Body: body})
	o.mu.Unlock()
	if o.next == nil {
		return nil
	}
	return o.next.Notify(ctx, recipient, subject, body)
}

func (o *Outbox) Subjects() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.sent))
	for i, m := range o.sent {
		out[i] = m.Subject
	}
	return out
}

func (o *Outbox) Sent() []SentMessage {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]SentMessage(nil), o.sent...)
}

func (o *Outbox) Reset() {
	o.mu.Lock()
	o.sent = nil
	o.mu.Unlock()
}
