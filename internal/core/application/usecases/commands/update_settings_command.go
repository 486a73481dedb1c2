package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/settings"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateSettingsCommandIsNotConstructed = errors.New(
	"UpdateSettingsCommand must be created via NewUpdateSettingsCommand constructor",
)

// UpdateSettingsCommand carries a complete replacement configuration.
// The clock field is ignored.
type UpdateSettingsCommand struct {
	config settings.Config

	guard guard.ConstructorGuard
}

func NewUpdateSettingsCommand(cfg settings.Config) (UpdateSettingsCommand, error) {
	if err := cfg.Validate(); err != nil {
		return UpdateSettingsCommand{}, err
	}

	return UpdateSettingsCommand{
		config: cfg.Clone(),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSettingsCommandIsNotConstructed)
}

func (c UpdateSettingsCommand) Config() settings.Config {
	return c.config.Clone()
}
