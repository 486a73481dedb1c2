package testutil

import (
	"context"
	"sync"

	"dispatch/internal/core/ports"
)

// Publisher records published events and can be told to fail.
type Publisher struct {
	mu     sync.Mutex
	events []ports.Event
	Err    error
}

func (p *Publisher) Publish(_ context.Context, events ...ports.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Err != nil {
		return p.Err
	}
	p.events = append(p.events, events...)
	return nil
}

func (p *Publisher) Events() []ports.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]ports.Event, len(p.events))
	copy(out, p.events)
	return out
}

// Types lists the types of the recorded events in publish order.
func (p *Publisher) Types() []string {
	events := p.Events()
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Type)
	}
	return out
}
