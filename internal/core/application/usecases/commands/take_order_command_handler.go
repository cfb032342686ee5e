package commands

import (
	"context"
	"errors"

	"marketplace/internal/pkg/errs"
)

// ErrCourierHasActiveOrder is returned when a courier tries to claim an
// order while still carrying another one.
var ErrCourierHasActiveOrder = errs.NewConflictError("courier already has an active order")

// TakeOrderCommandHandler processes a courier's claim on a pending order.
//
// The claim itself is a conditional update on the order row: it succeeds
// only while the order is still pending with no courier, so two couriers
// racing for the same order resolve to exactly one winner. The loser gets
// a conflict, not a failure. Order and courier are updated in the same
// transaction so the availability flag never drifts from reality on the
// happy path; the reconciliation job repairs the rest.
type TakeOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewTakeOrderCommandHandler creates a handler for order claims.
func NewTakeOrderCommandHandler(uowFactory UoWFactory) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle claims the order for the courier.
//
// Business rules enforced here:
//   - The courier must exist and be flagged Available
//   - A courier carries at most one active order at a time
//   - The order must still be pending and unclaimed at the moment of the
//     conditional update
func (h TakeOrderCommandHandler) Handle(ctx context.Context, command TakeOrderCommand) error {
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

	c, err := courierRepo.Get(ctx, command.CourierID())
	if err != nil {
		return err
	}

	// The availability flag is a hint; the active-order check is the rule.
	// The check is read-then-write, so the storage layer backs it with a
	// uniqueness constraint on active courier assignments.
	_, err = orderRepo.GetActiveByCourier(ctx, command.CourierID())
	if err == nil {
		return ErrCourierHasActiveOrder
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err := orderRepo.Claim(ctx, command.OrderID(), command.CourierID()); err != nil {
		return err
	}

	if err := c.MarkBusy(); err != nil {
		return err
	}
	if err := courierRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
