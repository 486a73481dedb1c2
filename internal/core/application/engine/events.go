package engine

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

const (
	EventDeliveryStarted = "delivery.started"
	EventDeliveryClosed  = "delivery.closed"
	EventClockAdvanced   = "clock.advanced"
)

// DeliveryPayload is the body of delivery events.
type DeliveryPayload struct {
	DeliveryID     string     `json:"delivery_id"`
	OrderID        string     `json:"order_id"`
	CourierID      int64      `json:"courier_id"`
	DeliveryType   string     `json:"delivery_type,omitempty"`
	StartedAt      time.Time  `json:"started_at"`
	ActualDistance *float64   `json:"actual_distance_km,omitempty"`
	EndType        string     `json:"end_type,omitempty"`
	EndedAt        *time.Time `json:"ended_at,omitempty"`
	// Forced marks deliveries closed by the reconciler.
	Forced bool `json:"forced,omitempty"`
}

// ClockPayload is the body of clock.advanced events.
type ClockPayload struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// NewDeliveryEvent builds a delivery.started or delivery.closed event at the given virtual time.
func NewDeliveryEvent(eventType string, d *delivery.Delivery, at time.Time, forced bool) ports.Event {
	payload := DeliveryPayload{
		DeliveryID: d.ID().String(),
		OrderID:    d.OrderID().String(),
		CourierID:  d.CourierID(),
		StartedAt:  d.StartedAt(),
		Forced:     forced,
	}
	if !d.IsAdministrative() {
		payload.DeliveryType = d.DeliveryType().String()
	}
	if km, ok := d.ActualDistance(); ok {
		payload.ActualDistance = &km
	}
	if endType, closed := d.EndType(); closed {
		payload.EndType = endType.String()
		endedAt, _ := d.EndedAt()
		payload.EndedAt = &endedAt
	}

	return ports.Event{
		ID:         kernel.NewUUID(),
		Type:       eventType,
		OccurredAt: at,
		Key:        d.OrderID().String(),
		Payload:    payload,
	}
}

// NewClockAdvancedEvent builds a clock.advanced event.
func NewClockAdvancedEvent(from, to time.Time) ports.Event {
	return ports.Event{
		ID:         kernel.NewUUID(),
		Type:       EventClockAdvanced,
		OccurredAt: to,
		Key:        "clock",
		Payload:    ClockPayload{From: from, To: to},
	}
}

// Notifier publishes events on a best-effort basis: a failed publish is
// logged and never fails the operation that produced the event.
type Notifier struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func NewNotifier(publisher ports.EventPublisher, logger *slog.Logger) Notifier {
	return Notifier{
		publisher: publisher,
		logger:    logger.With("component", "notifier"),
	}
}

func (n Notifier) Notify(ctx context.Context, events ...ports.Event) {
	if len(events) == 0 {
		return
	}
	if err := n.publisher.Publish(ctx, events...); err != nil {
		n.logger.ErrorContext(ctx, "failed to publish events",
			"count", len(events),
			"type", events[0].Type,
			"error", err)
	}
}
