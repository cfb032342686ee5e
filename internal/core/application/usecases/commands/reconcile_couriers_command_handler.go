package commands

import (
	"context"
	"errors"

	"marketplace/internal/pkg/errs"
)

// ReconcileCouriersCommandHandler frees couriers flagged Busy that have no
// InProgress order backing the flag.
type ReconcileCouriersCommandHandler struct {
	uowFactory UoWFactory
}

// NewReconcileCouriersCommandHandler creates a handler for the sweep.
func NewReconcileCouriersCommandHandler(uowFactory UoWFactory) ReconcileCouriersCommandHandler {
	return ReconcileCouriersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle releases every busy courier without an active order. All releases
// happen in one transaction; the sweep is cheap because busy couriers are
// few at any moment.
func (h ReconcileCouriersCommandHandler) Handle(ctx context.Context, command ReconcileCouriersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	busy, err := courierRepo.GetAllBusy(ctx)
	if err != nil {
		return err
	}

	for _, c := range busy {
		_, err := orderRepo.GetActiveByCourier(ctx, c.ID())
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		c.MarkAvailable()
		if err := courierRepo.Update(ctx, c); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
