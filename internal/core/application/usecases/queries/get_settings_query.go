package queries

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/settings"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetSettingsQueryIsNotConstructed = errors.New(
		"GetSettingsQuery must be created via NewGetSettingsQuery constructor",
	)
	ErrGetClockQueryIsNotConstructed = errors.New(
		"GetClockQuery must be created via NewGetClockQuery constructor",
	)
)

type GetSettingsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSettingsQuery() GetSettingsQuery {
	return GetSettingsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}

type GetSettingsQueryHandler struct {
	settings SettingsReader
}

func NewGetSettingsQueryHandler(settings SettingsReader) *GetSettingsQueryHandler {
	return &GetSettingsQueryHandler{settings: settings}
}

// Handle returns a snapshot; changing it does not affect the engine.
func (h *GetSettingsQueryHandler) Handle(_ context.Context, query GetSettingsQuery) (settings.Config, error) {
	if err := query.Validate(); err != nil {
		return settings.Config{}, err
	}
	return h.settings.Get(), nil
}

type GetClockQuery struct {
	guard guard.ConstructorGuard
}

func NewGetClockQuery() GetClockQuery {
	return GetClockQuery{guard: guard.NewConstructorGuard()}
}

func (q GetClockQuery) Validate() error {
	return q.guard.Validate(ErrGetClockQueryIsNotConstructed)
}

type GetClockQueryHandler struct {
	settings SettingsReader
}

func NewGetClockQueryHandler(settings SettingsReader) *GetClockQueryHandler {
	return &GetClockQueryHandler{settings: settings}
}

func (h *GetClockQueryHandler) Handle(_ context.Context, query GetClockQuery) (time.Time, error) {
	if err := query.Validate(); err != nil {
		return time.Time{}, err
	}
	return h.settings.Get().Clock, nil
}
