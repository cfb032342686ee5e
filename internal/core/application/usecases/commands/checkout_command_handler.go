package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/settings"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ErrAddressNotOwned is returned when checking out to an address that
// belongs to a different client.
var ErrAddressNotOwned = errs.NewConflictError("address belongs to another client")

// CheckoutCommandHandler converts a session cart into persisted orders.
//
// The cart is partitioned by commerce and one order is created per
// commerce. All orders of a checkout are persisted in a single transaction:
// either the whole cart becomes orders or none of it does. The cart is
// cleared only after the transaction commits, so a failed checkout leaves
// the cart intact for a retry.
type CheckoutCommandHandler struct {
	cartStore    ports.CartStore
	addressRepo  ports.AddressRepository
	settingsRepo ports.SettingsRepository
	uowFactory   OrderUoWFactory
	assembler    services.OrderAssembler
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	cartStore ports.CartStore,
	addressRepo ports.AddressRepository,
	settingsRepo ports.SettingsRepository,
	uowFactory OrderUoWFactory,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		cartStore:    cartStore,
		addressRepo:  addressRepo,
		settingsRepo: settingsRepo,
		uowFactory:   uowFactory,
		assembler:    services.NewOrderAssembler(),
	}
}

// Handle loads the cart, assembles per-commerce orders with the current
// marketplace settings, persists them atomically and clears the cart.
// Returns the IDs of the created orders.
//
// When no admin has saved settings yet the defaults apply, so checkout
// never fails on missing configuration.
func (h CheckoutCommandHandler) Handle(ctx context.Context, command CheckoutCommand) ([]kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	c, err := h.cartStore.Get(ctx, command.SessionID())
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, services.ErrCartIsEmpty
	}

	addr, err := h.addressRepo.Get(ctx, command.AddressID())
	if err != nil {
		return nil, err
	}
	if !addr.ClientID().IsEqual(command.ClientID()) {
		return nil, ErrAddressNotOwned
	}

	cfg, err := h.settingsRepo.Get(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		cfg = settings.DefaultSettings()
	} else if err != nil {
		return nil, err
	}

	orders, err := h.assembler.Assemble(c, command.ClientID(), command.AddressID(), cfg)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	for _, o := range orders {
		if err := orderRepo.Add(ctx, o); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err := h.cartStore.Delete(ctx, command.SessionID()); err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids, nil
}
