package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/banking"
	"github.com/onuroner/pk-vkf/internal/domain/shared"
	"github.com/onuroner/pk-vkf/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAddressRepository implements AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Create creates a new address
func (r *GormAddressRepository) Create(ctx context.Context, address *banking.Address) error {
	model := models.AddressModelFromDomain(address)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists the mutable fields of an existing address
func (r *GormAddressRepository) Update(ctx context.Context, address *banking.Address) error {
	model := models.AddressModelFromDomain(address)
	result := r.db.WithContext(ctx).
		Model(&models.AddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]interface{}{
			"line1":        model.Line1,
			"line2":        model.Line2,
			"city":         model.City,
			"district":     model.District,
			"postal_code":  model.PostalCode,
			"country_code": model.CountryCode,
			"is_default":   model.IsDefault,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an address by ID
func (r *GormAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*banking.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomerID lists all addresses registered for a customer
func (r *GormAddressRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*banking.Address, error) {
	var addressModels []models.AddressModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Find(&addressModels).Error; err != nil {
		return nil, err
	}
	addresses := make([]*banking.Address, len(addressModels))
	for i, model := range addressModels {
		addresses[i] = model.ToDomain()
	}
	return addresses, nil
}

// FindAll lists all addresses
func (r *GormAddressRepository) FindAll(ctx context.Context) ([]*banking.Address, error) {
	var addressModels []models.AddressModel
	if err := r.db.WithContext(ctx).
		Find(&addressModels).Error; err != nil {
		return nil, err
	}
	addresses := make([]*banking.Address, len(addressModels))
	for i, model := range addressModels {
		addresses[i] = model.ToDomain()
	}
	return addresses, nil
}

// Delete removes an address by ID
func (r *GormAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AddressModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormAddressRepository implements AddressRepository
var _ banking.AddressRepository = (*GormAddressRepository)(nil)
