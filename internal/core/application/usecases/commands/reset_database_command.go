package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrResetDatabaseCommandIsNotConstructed = errors.New(
	"ResetDatabaseCommand must be created via NewResetDatabaseCommand constructor",
)

// ResetDatabaseCommand wipes every courier, order and delivery and restores
// the startup configuration, clock included.
type ResetDatabaseCommand struct {
	guard guard.ConstructorGuard
}

func NewResetDatabaseCommand() ResetDatabaseCommand {
	return ResetDatabaseCommand{guard: guard.NewConstructorGuard()}
}

func (c ResetDatabaseCommand) Validate() error {
	return c.guard.Validate(ErrResetDatabaseCommandIsNotConstructed)
}
