// Package memory is an in-process EntityStore. It backs the service when no
// database is configured and serves as the store in core tests.
//
// Transactions stage their writes in an overlay that reads see immediately;
// Commit replays the staged operations on the shared state under one lock and
// re-checks existence rules, so a commit applies completely or not at all.
package memory

import (
	"sort"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// Store holds every entity of the engine.
type Store struct {
	mu         sync.RWMutex
	couriers   map[int64]*courier.Courier
	orders     map[kernel.UUID]*order.Order
	deliveries map[kernel.UUID]*delivery.Delivery
}

func NewStore() *Store {
	return &Store{
		couriers:   make(map[int64]*courier.Courier),
		orders:     make(map[kernel.UUID]*order.Order),
		deliveries: make(map[kernel.UUID]*delivery.Delivery),
	}
}

type opKind int

const (
	opAdd opKind = iota + 1
	opUpdate
	opDelete
	opClear
)

// staged is the pending state of one table inside a transaction.
type staged[K comparable, V any] struct {
	cleared bool
	rows    map[K]V
	deleted map[K]struct{}
	ops     []op[K, V]
}

type op[K comparable, V any] struct {
	kind  opKind
	key   K
	value V
}

func newStaged[K comparable, V any]() *staged[K, V] {
	return &staged[K, V]{
		rows:    make(map[K]V),
		deleted: make(map[K]struct{}),
	}
}

// lookup resolves key against the overlay first, then base.
func (s *staged[K, V]) lookup(base map[K]V, key K) (V, bool) {
	if s != nil {
		if _, gone := s.deleted[key]; gone {
			var zero V
			return zero, false
		}
		if v, ok := s.rows[key]; ok {
			return v, true
		}
		if s.cleared {
			var zero V
			return zero, false
		}
	}
	v, ok := base[key]
	return v, ok
}

// list merges base and overlay.
func (s *staged[K, V]) list(base map[K]V) []V {
	merged := make(map[K]V, len(base))
	if s == nil || !s.cleared {
		for k, v := range base {
			merged[k] = v
		}
	}
	if s != nil {
		for k := range s.deleted {
			delete(merged, k)
		}
		for k, v := range s.rows {
			merged[k] = v
		}
	}

	out := make([]V, 0, len(merged))
	for _, v := range merged {
		out = append(out, v)
	}
	return out
}

func (s *staged[K, V]) put(kind opKind, key K, value V) {
	delete(s.deleted, key)
	s.rows[key] = value
	s.ops = append(s.ops, op[K, V]{kind: kind, key: key, value: value})
}

func (s *staged[K, V]) remove(key K) {
	delete(s.rows, key)
	s.deleted[key] = struct{}{}
	s.ops = append(s.ops, op[K, V]{kind: opDelete, key: key})
}

func (s *staged[K, V]) clear() {
	s.cleared = true
	s.rows = make(map[K]V)
	s.deleted = make(map[K]struct{})
	s.ops = append(s.ops, op[K, V]{kind: opClear})
}

// replay applies the staged operations to target, which must be a scratch copy.
func (s *staged[K, V]) replay(target map[K]V, conflict func(kind opKind, key K) error) error {
	for _, o := range s.ops {
		_, exists := target[o.key]
		switch o.kind {
		case opAdd:
			if exists {
				return conflict(o.kind, o.key)
			}
			target[o.key] = o.value
		case opUpdate:
			if !exists {
				return conflict(o.kind, o.key)
			}
			target[o.key] = o.value
		case opDelete:
			if !exists {
				return conflict(o.kind, o.key)
			}
			delete(target, o.key)
		case opClear:
			for k := range target {
				delete(target, k)
			}
		}
	}
	return nil
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func sortDeliveries(list []*delivery.Delivery) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].StartedAt().Equal(list[j].StartedAt()) {
			return list[i].StartedAt().Before(list[j].StartedAt())
		}
		return list[i].ID().String() < list[j].ID().String()
	})
}

// cloneDelivery detaches a delivery from the caller. Deliveries are the only
// mutable entity, couriers and orders are replaced wholesale.
func cloneDelivery(d *delivery.Delivery) (*delivery.Delivery, error) {
	var distance *float64
	if km, ok := d.ActualDistance(); ok {
		distance = &km
	}
	var endedAt *time.Time
	if at, closed := d.EndedAt(); closed {
		endedAt = &at
	}
	endType, _ := d.EndType()

	return delivery.RestoreDelivery(
		d.ID(), d.OrderID(), d.CourierID(), d.DeliveryType(), d.StartedAt(), distance, endType, endedAt)
}
