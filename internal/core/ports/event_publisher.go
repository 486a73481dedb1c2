package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// Event is a notification about something that already happened in the engine.
type Event struct {
	ID         kernel.UUID
	Type       string
	OccurredAt time.Time
	// Key groups events of the same entity, e.g. the order id.
	Key     string
	Payload any
}

// EventPublisher delivers events to interested parties outside the process.
type EventPublisher interface {
	Publish(ctx context.Context, events ...Event) error
}
