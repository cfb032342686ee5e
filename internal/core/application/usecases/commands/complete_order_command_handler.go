package commands

import (
	"context"
)

// CompleteOrderCommandHandler finishes a delivery: the order moves to
// Completed and the courier becomes available again, in one transaction.
//
// Only the courier who claimed the order may complete it; the ownership
// check lives in the order aggregate and surfaces as a conflict.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for delivery completion.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle completes the order and frees the courier.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, command CompleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err := o.Complete(command.CourierID()); err != nil {
		return err
	}

	if err := orderRepo.Update(ctx, o); err != nil {
		return err
	}

	c, err := courierRepo.Get(ctx, command.CourierID())
	if err != nil {
		return err
	}

	c.MarkAvailable()
	if err := courierRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
