package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/banking"
	"github.com/onuroner/pk-vkf/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAccountTransactionRepository implements AccountTransactionRepository using GORM.
// All queries preload Account and its Customer so result rows carry the full
// ownership chain. Queries never return gorm.ErrRecordNotFound: an empty slice
// is the empty result.
type GormAccountTransactionRepository struct {
	db *gorm.DB
}

// NewGormAccountTransactionRepository creates a new GormAccountTransactionRepository
func NewGormAccountTransactionRepository(db *gorm.DB) *GormAccountTransactionRepository {
	return &GormAccountTransactionRepository{db: db}
}

// FindByReference finds both legs of a transfer by their shared reference number
func (r *GormAccountTransactionRepository) FindByReference(ctx context.Context, referenceNumber string) ([]*banking.AccountTransaction, error) {
	var transactionModels []models.AccountTransactionModel
	if err := r.db.WithContext(ctx).
		Preload("Account.Customer").
		Where("reference_number = ?", referenceNumber).
		Order("transaction_date DESC").
		Find(&transactionModels).Error; err != nil {
		return nil, err
	}
	return toDomainTransactions(transactionModels), nil
}

// FindByAccountID lists the full ledger of one account, most recent first
func (r *GormAccountTransactionRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*banking.AccountTransaction, error) {
	var transactionModels []models.AccountTransactionModel
	if err := r.db.WithContext(ctx).
		Preload("Account.Customer").
		Where("account_id = ?", accountID).
		Order("transaction_date DESC").
		Find(&transactionModels).Error; err != nil {
		return nil, err
	}
	return toDomainTransactions(transactionModels), nil
}

// FindByCriteria finds transactions matching the conjunction of the present
// criteria. The WHERE clauses mirror banking.QueryCriteria.Predicate clause
// for clause, including the per-leg amount comparisons.
func (r *GormAccountTransactionRepository) FindByCriteria(ctx context.Context, criteria banking.QueryCriteria) ([]*banking.AccountTransaction, error) {
	query := r.db.WithContext(ctx).
		Model(&models.AccountTransactionModel{}).
		Preload("Account.Customer")

	query = r.applyCriteria(query, criteria)

	var transactionModels []models.AccountTransactionModel
	if err := query.
		Order("account_transactions.transaction_date DESC").
		Find(&transactionModels).Error; err != nil {
		return nil, err
	}
	return toDomainTransactions(transactionModels), nil
}

// applyCriteria translates each present criterion into a WHERE clause
func (r *GormAccountTransactionRepository) applyCriteria(query *gorm.DB, criteria banking.QueryCriteria) *gorm.DB {
	if criteria.AccountID != nil && *criteria.AccountID != uuid.Nil {
		query = query.Where("account_transactions.account_id = ?", *criteria.AccountID)
	}

	if criteria.CustomerID != nil && *criteria.CustomerID != uuid.Nil {
		query = query.
			Joins("JOIN accounts ON accounts.id = account_transactions.account_id").
			Where("accounts.customer_id = ?", *criteria.CustomerID)
	}

	if desc := strings.TrimSpace(criteria.Description); desc != "" {
		query = query.Where("account_transactions.description LIKE ?", "%"+desc+"%")
	}

	// Amount bounds test each leg independently; a row whose credit exceeds
	// MaxAmount still matches through its zero debit leg.
	if criteria.MinAmount != nil && criteria.MinAmount.IsPositive() {
		query = query.Where("account_transactions.credit_amount >= ? OR account_transactions.debit_amount >= ?",
			*criteria.MinAmount, *criteria.MinAmount)
	}

	if criteria.MaxAmount != nil && criteria.MaxAmount.IsPositive() {
		query = query.Where("account_transactions.credit_amount <= ? OR account_transactions.debit_amount <= ?",
			*criteria.MaxAmount, *criteria.MaxAmount)
	}

	if criteria.BeginDate != nil {
		query = query.Where("account_transactions.transaction_date >= ?", *criteria.BeginDate)
	}

	if criteria.EndDate != nil {
		query = query.Where("account_transactions.transaction_date <= ?", *criteria.EndDate)
	}

	return query
}

func toDomainTransactions(transactionModels []models.AccountTransactionModel) []*banking.AccountTransaction {
	transactions := make([]*banking.AccountTransaction, len(transactionModels))
	for i, model := range transactionModels {
		transactions[i] = model.ToDomain()
	}
	return transactions
}

// Ensure GormAccountTransactionRepository implements AccountTransactionRepository
var _ banking.AccountTransactionRepository = (*GormAccountTransactionRepository)(nil)
