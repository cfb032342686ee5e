package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrReconcileCouriersCommandIsNotConstructed = errors.New(
	"ReconcileCouriersCommand must be created via NewReconcileCouriersCommand constructor",
)

// ReconcileCouriersCommand triggers a sweep over busy couriers to release
// any whose availability flag no longer matches an active order. The flag
// can go stale if a process dies between the order update and the courier
// update; the periodic sweep repairs it.
type ReconcileCouriersCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileCouriersCommand creates a parameterless reconciliation command.
func NewReconcileCouriersCommand() ReconcileCouriersCommand {
	return ReconcileCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReconcileCouriersCommand) Validate() error {
	return c.guard.Validate(ErrReconcileCouriersCommandIsNotConstructed)
}
