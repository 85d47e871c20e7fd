// Package eventbus publishes report lifecycle events. Publishing is
// best-effort: a failed publish is logged and never fails the request that
// triggered it.
package eventbus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	TopicReportCreated = "report.created"
	TopicReportDeleted = "report.deleted"
)

// Event is the payload published for one report lifecycle change.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// NewEvent builds an event with a fresh id, marshaling payload to JSON.
// A payload that cannot be marshaled yields an event with a null payload.
func NewEvent(eventType string, payload any) Event {
	data, err := json.Marshal(payload)
	if err != nil {
		data = []byte("null")
	}
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    data,
	}
}

// Publisher sends events to a topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// Noop discards all events. Used when no brokers are configured.
type Noop struct{}

var _ Publisher = (*Noop)(nil)

func (Noop) Publish(ctx context.Context, topic string, event Event) error { return nil }

func (Noop) Close() {}
