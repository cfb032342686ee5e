package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CreateProductCommandHandler adds an item to a commerce's catalog.
type CreateProductCommandHandler struct {
	productRepo  ports.ProductRepository
	commerceRepo ports.CommerceRepository
}

// NewCreateProductCommandHandler creates a handler for catalog additions.
func NewCreateProductCommandHandler(
	productRepo ports.ProductRepository,
	commerceRepo ports.CommerceRepository,
) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		productRepo:  productRepo,
		commerceRepo: commerceRepo,
	}
}

// Handle verifies the commerce exists and belongs to the caller, then builds
// the product and persists it.
func (h CreateProductCommandHandler) Handle(ctx context.Context, command CreateProductCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	c, err := h.commerceRepo.Get(ctx, command.CommerceID())
	if err != nil {
		return kernel.UUID{}, err
	}
	// A commerce owned by someone else is invisible to the caller.
	if !c.OwnerID().IsEqual(command.OwnerID()) {
		return kernel.UUID{}, errs.NewObjectNotFoundError("commerce", command.CommerceID().String())
	}

	price, err := kernel.NewMoneyFromFloat(command.Price())
	if err != nil {
		return kernel.UUID{}, err
	}

	p, err := product.NewProduct(
		kernel.NewUUID(),
		command.CommerceID(),
		command.Name(),
		command.Description(),
		price,
		command.Photo(),
		command.CategoryName(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err := h.productRepo.Add(ctx, p); err != nil {
		return kernel.UUID{}, err
	}

	return p.ID(), nil
}
