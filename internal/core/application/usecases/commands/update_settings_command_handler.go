package commands

import (
	"context"
)

type UpdateSettingsCommandHandler struct {
	settings SettingsStore
}

func NewUpdateSettingsCommandHandler(settings SettingsStore) *UpdateSettingsCommandHandler {
	return &UpdateSettingsCommandHandler{settings: settings}
}

func (h *UpdateSettingsCommandHandler) Handle(ctx context.Context, cmd UpdateSettingsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.settings.Set(ctx, cmd.Config())
}
