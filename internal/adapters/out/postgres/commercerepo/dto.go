// Package commercerepo provides data transfer objects and mapping functions
// for commerce persistence, including the client favorite relation.
package commercerepo

import (
	"marketplace/internal/core/domain/model/commerce"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CommerceDTO represents the database structure for persisting commerces.
// The type column is indexed because catalog browsing filters by it.
type CommerceDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Logo      string
	TypeName  string `gorm:"column:type_name;index"`
	OpenTime  string
	CloseTime string
	Active    bool
}

// TableName specifies the database table name for commerces.
func (CommerceDTO) TableName() string {
	return "commerces"
}

// FavoriteDTO represents one client favorite. The composite primary key
// makes the relation naturally idempotent under upsert.
type FavoriteDTO struct {
	ClientID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CommerceID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for favorites.
func (FavoriteDTO) TableName() string {
	return "favorites"
}

func fromDomain(c *commerce.Commerce) CommerceDTO {
	return CommerceDTO{
		ID:        c.ID().Bytes(),
		OwnerID:   c.OwnerID().Bytes(),
		Name:      c.Name(),
		Logo:      c.Logo(),
		TypeName:  c.TypeName(),
		OpenTime:  c.OpenTime(),
		CloseTime: c.CloseTime(),
		Active:    c.IsActive(),
	}
}

func toDomain(dto CommerceDTO) (*commerce.Commerce, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return commerce.RestoreCommerce(id, ownerID, dto.Name, dto.Logo, dto.TypeName, dto.OpenTime, dto.CloseTime, dto.Active)
}
