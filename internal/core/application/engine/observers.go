package engine

import "sync"

// Subscription identifies a registered callback. The zero value is never issued.
type Subscription struct {
	id uint64
}

type observer struct {
	id uint64
	fn func()
}

// observers is an ordered callback registry. Callbacks run outside the lock,
// in registration order.
type observers struct {
	mu   sync.Mutex
	next uint64
	list []observer
}

func (o *observers) subscribe(fn func()) Subscription {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.next++
	o.list = append(o.list, observer{id: o.next, fn: fn})
	return Subscription{id: o.next}
}

// unsubscribe removes s. Unknown or already removed subscriptions are ignored.
func (o *observers) unsubscribe(s Subscription) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, obs := range o.list {
		if obs.id == s.id {
			o.list = append(o.list[:i:i], o.list[i+1:]...)
			return
		}
	}
}

func (o *observers) notify() {
	o.mu.Lock()
	snapshot := make([]observer, len(o.list))
	copy(snapshot, o.list)
	o.mu.Unlock()

	for _, obs := range snapshot {
		obs.fn()
	}
}
