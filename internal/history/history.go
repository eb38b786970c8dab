package history

import (
	"context"
	"time"

	"github.com/loykin/svcman/internal/registry"
)

// EventType defines the kind of lifecycle event.
type EventType string

const (
	EventStart EventType = "start"
	EventStop  EventType = "stop"
)

// Event represents a service lifecycle event to be exported to external
// systems (audit/statistics). The registry file remains the source of
// truth; sinks are strictly write-behind.
type Event struct {
	Type       EventType       `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Record     registry.Record `json:"record"`
}

// Sink is a destination for lifecycle events.
type Sink interface {
	Send(ctx context.Context, e Event) error
	Close() error
}
