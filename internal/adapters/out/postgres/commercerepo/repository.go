package commercerepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/commerce"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCommerceRepository implements CommerceRepository using GORM.
type GormCommerceRepository struct {
	db *gorm.DB
}

// NewGormCommerceRepository creates a new GORM commerce repository.
func NewGormCommerceRepository(db *gorm.DB) *GormCommerceRepository {
	return &GormCommerceRepository{db: db}
}

// Add saves a new commerce to the database.
func (r *GormCommerceRepository) Add(ctx context.Context, aggregate *commerce.Commerce) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a commerce by ID.
func (r *GormCommerceRepository) Get(ctx context.Context, id kernel.UUID) (*commerce.Commerce, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CommerceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("commerce", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByType retrieves all commerces of one catalog type.
func (r *GormCommerceRepository) GetByType(ctx context.Context, typeName string) ([]*commerce.Commerce, error) {
	var dtos []CommerceDTO
	err := r.db.WithContext(ctx).
		Where("type_name = ?", typeName).
		Order("name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetFavorites retrieves the commerces a client has favorited.
func (r *GormCommerceRepository) GetFavorites(ctx context.Context, clientID kernel.UUID) ([]*commerce.Commerce, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CommerceDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN favorites f ON f.commerce_id = commerces.id").
		Where("f.client_id = ?", clientID.Bytes()).
		Order("commerces.name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// AddFavorite records a client's favorite. Re-adding an existing favorite
// is a no-op thanks to the do-nothing upsert on the composite key.
func (r *GormCommerceRepository) AddFavorite(ctx context.Context, clientID kernel.UUID, commerceID kernel.UUID) error {
	if err := errors.Join(clientID.Validate(), commerceID.Validate()); err != nil {
		return err
	}

	dto := FavoriteDTO{
		ClientID:   clientID.Bytes(),
		CommerceID: commerceID.Bytes(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// RemoveFavorite deletes a client's favorite. Removing an absent favorite
// is a no-op.
func (r *GormCommerceRepository) RemoveFavorite(ctx context.Context, clientID kernel.UUID, commerceID kernel.UUID) error {
	if err := errors.Join(clientID.Validate(), commerceID.Validate()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&FavoriteDTO{}, "client_id = ? AND commerce_id = ?", clientID.Bytes(), commerceID.Bytes()).Error
}

func toDomainSlice(dtos []CommerceDTO) ([]*commerce.Commerce, error) {
	commerces := make([]*commerce.Commerce, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		commerces = append(commerces, c)
	}

	return commerces, nil
}
