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

// GormCardRepository implements CardRepository using GORM
type GormCardRepository struct {
	db *gorm.DB
}

// NewGormCardRepository creates a new GormCardRepository
func NewGormCardRepository(db *gorm.DB) *GormCardRepository {
	return &GormCardRepository{db: db}
}

// Create creates a new card
func (r *GormCardRepository) Create(ctx context.Context, card *banking.Card) error {
	model := models.CardModelFromDomain(card)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists the mutable fields of an existing card.
// The card number never changes after issue.
func (r *GormCardRepository) Update(ctx context.Context, card *banking.Card) error {
	model := models.CardModelFromDomain(card)
	result := r.db.WithContext(ctx).
		Model(&models.CardModel{}).
		Where("id = ?", card.ID).
		Updates(map[string]interface{}{
			"card_holder_name": model.CardHolderName,
			"expiry_month":     model.ExpiryMonth,
			"expiry_year":      model.ExpiryYear,
			"is_active":        model.IsActive,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a card by ID
func (r *GormCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*banking.Card, error) {
	var model models.CardModel
	if err := r.db.WithContext(ctx).
		Preload("Account").
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByAccountID finds the card bound to an account
func (r *GormCardRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*banking.Card, error) {
	var model models.CardModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomerID lists the cards of all accounts owned by a customer
func (r *GormCardRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*banking.Card, error) {
	var cardModels []models.CardModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN accounts ON accounts.id = cards.account_id").
		Where("accounts.customer_id = ?", customerID).
		Find(&cardModels).Error; err != nil {
		return nil, err
	}
	cards := make([]*banking.Card, len(cardModels))
	for i, model := range cardModels {
		cards[i] = model.ToDomain()
	}
	return cards, nil
}

// FindAll lists all cards
func (r *GormCardRepository) FindAll(ctx context.Context) ([]*banking.Card, error) {
	var cardModels []models.CardModel
	if err := r.db.WithContext(ctx).
		Find(&cardModels).Error; err != nil {
		return nil, err
	}
	cards := make([]*banking.Card, len(cardModels))
	for i, model := range cardModels {
		cards[i] = model.ToDomain()
	}
	return cards, nil
}

// Delete removes a card by ID
func (r *GormCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CardModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCardRepository implements CardRepository
var _ banking.CardRepository = (*GormCardRepository)(nil)
