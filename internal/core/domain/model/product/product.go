// Package product implements the Product entity of the commerce catalog.
// In the cart and checkout flow products act as snapshots: the cart copies
// name, price, photo and category at add-time and never re-reads them.
package product

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"marketplace/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created
	// through the NewProduct constructor.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrNameIsRequired is returned when creating a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// UncategorizedName is the category label used for products that do not
// belong to any category of their commerce.
const UncategorizedName = "Uncategorized"

// Product is a catalog entry belonging to a commerce. The category is
// carried as a display name rather than a reference because everything the
// cart needs from a product is its snapshot.
type Product struct {
	id           kernel.UUID
	commerceID   kernel.UUID
	name         string
	description  string
	price        kernel.Money
	photo        string
	categoryName string

	guard guard.ConstructorGuard
}

// NewProduct creates a Product with a valid identity, owning commerce and
// non-empty name. An empty categoryName is normalized to UncategorizedName.
func NewProduct(
	id kernel.UUID,
	commerceID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	photo string,
	categoryName string,
) (*Product, error) {
	p := &Product{
		description: description,
		photo:       photo,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setCommerceID(commerceID),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	p.price = price
	if categoryName == "" {
		categoryName = UncategorizedName
	}
	p.categoryName = categoryName

	return p, nil
}

// Validate ensures the Product was created via NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// CommerceID returns the owning commerce identifier.
func (p *Product) CommerceID() kernel.UUID {
	return p.commerceID
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current catalog price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Photo returns the product image path.
func (p *Product) Photo() string {
	return p.photo
}

// CategoryName returns the display name of the product's category.
func (p *Product) CategoryName() string {
	return p.categoryName
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setCommerceID(commerceID kernel.UUID) error {
	if err := commerceID.Validate(); err != nil {
		return err
	}
	p.commerceID = commerceID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}
