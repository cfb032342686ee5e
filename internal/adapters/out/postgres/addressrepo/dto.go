// Package addressrepo provides data transfer objects and mapping functions
// for delivery address persistence.
package addressrepo

import (
	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO represents the database structure for persisting delivery
// addresses.
type AddressDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description string
}

// TableName specifies the database table name for addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

func fromDomain(a *address.Address) AddressDTO {
	return AddressDTO{
		ID:          a.ID().Bytes(),
		ClientID:    a.ClientID().Bytes(),
		Name:        a.Name(),
		Description: a.Description(),
	}
}

func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	return address.RestoreAddress(id, clientID, dto.Name, dto.Description)
}
