package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/settings"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ConfigStore owns the single process-wide settings.Config.
//
// Get hands out independent copies. Set validates the whole value before
// touching anything and resolves a changed company address through the
// geocoder. The clock field is owned by VirtualClock and ignored by Set.
type ConfigStore struct {
	mu  sync.RWMutex
	cfg settings.Config

	// writeMu serializes Set and Reset so a slow geocode cannot interleave with another write.
	writeMu sync.Mutex

	geocoder  ports.DistanceProvider
	observers observers
	logger    *slog.Logger
}

// NewConfigStore validates initial and returns a store holding it.
func NewConfigStore(initial settings.Config, geocoder ports.DistanceProvider, logger *slog.Logger) (*ConfigStore, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	if err := initial.CompanyLocation.Validate(); err != nil {
		return nil, err
	}

	return &ConfigStore{
		cfg:      initial.Clone(),
		geocoder: geocoder,
		logger:   logger.With("component", "config_store"),
	}, nil
}

// Get returns a snapshot of the configuration.
func (s *ConfigStore) Get() settings.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cfg.Clone()
}

// Now returns the virtual clock value.
func (s *ConfigStore) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cfg.Clock
}

// Set replaces the configuration with next.
//
// The operation is all-or-nothing: a validation failure yields an invalid
// input error, a failed geocode of a changed address an invalid address
// error, and in both cases the stored value is untouched. Observers are
// notified only when at least one field actually changed.
func (s *ConfigStore) Set(ctx context.Context, next settings.Config) error {
	if err := next.Validate(); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.Get()
	next = next.Clone()
	next.CompanyAddress = strings.TrimSpace(next.CompanyAddress)

	if next.CompanyAddress == current.CompanyAddress {
		next.CompanyLocation = current.CompanyLocation
	} else {
		location, err := s.geocoder.Geocode(ctx, next.CompanyAddress)
		if err != nil {
			if errs.KindOf(err) != errs.KindInvalidAddress {
				err = errs.NewAddressIsInvalidError(next.CompanyAddress, err)
			}
			return err
		}
		next.CompanyLocation = location
	}

	changed := s.apply(func(cfg *settings.Config) {
		next.Clock = cfg.Clock
		*cfg = next
	})
	if changed {
		s.logger.InfoContext(ctx, "configuration updated",
			"company_address", next.CompanyAddress,
			"max_delivery_time_span", next.MaxDeliveryTimeSpan.String(),
			"risk_range", next.RiskRange.String())
		s.observers.notify()
	}
	return nil
}

// Reset replaces the whole configuration, clock included. It is used when
// the database is reset and expects an already geocoded company location.
func (s *ConfigStore) Reset(cfg settings.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.CompanyLocation.Validate(); err != nil {
		return fmt.Errorf("reset configuration: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := cfg.Clone()
	if s.apply(func(c *settings.Config) { *c = next }) {
		s.observers.notify()
	}
	return nil
}

// Subscribe registers fn to run after every effective configuration change.
func (s *ConfigStore) Subscribe(fn func()) Subscription {
	return s.observers.subscribe(fn)
}

// Unsubscribe removes a callback. Repeated calls are no-ops.
func (s *ConfigStore) Unsubscribe(sub Subscription) {
	s.observers.unsubscribe(sub)
}

// setClock moves the virtual clock without notifying config observers.
func (s *ConfigStore) setClock(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.Clock = t
}

// apply mutates the stored value under the write lock and reports whether it changed.
func (s *ConfigStore) apply(mutate func(*settings.Config)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.cfg.Clone()
	mutate(&s.cfg)
	return !before.Equal(s.cfg)
}
