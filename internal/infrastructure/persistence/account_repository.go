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

// GormAccountRepository implements AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Create creates a new account
func (r *GormAccountRepository) Create(ctx context.Context, account *banking.Account) error {
	model := models.AccountModelFromDomain(account)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds an account by ID with its owning customer loaded
func (r *GormAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*banking.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomerID lists all accounts owned by a customer
func (r *GormAccountRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*banking.Account, error) {
	var accountModels []models.AccountModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("account_number ASC").
		Find(&accountModels).Error; err != nil {
		return nil, err
	}
	accounts := make([]*banking.Account, len(accountModels))
	for i, model := range accountModels {
		accounts[i] = model.ToDomain()
	}
	return accounts, nil
}

// Ensure GormAccountRepository implements AccountRepository
var _ banking.AccountRepository = (*GormAccountRepository)(nil)
