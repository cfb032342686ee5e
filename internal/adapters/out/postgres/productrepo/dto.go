// Package productrepo provides data transfer objects and mapping functions
// for catalog product persistence.
package productrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting catalog
// entries. Prices are stored as integer cents.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CommerceID   uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Description  string
	Price        int64
	Photo        string
	CategoryName string
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID().Bytes(),
		CommerceID:   p.CommerceID().Bytes(),
		Name:         p.Name(),
		Description:  p.Description(),
		Price:        p.Price().Cents(),
		Photo:        p.Photo(),
		CategoryName: p.CategoryName(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	commerceID, err := kernel.UUIDFromBytes(dto.CommerceID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, commerceID, dto.Name, dto.Description, price, dto.Photo, dto.CategoryName)
}
