package persistence

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/banking"
	"github.com/onuroner/pk-vkf/internal/domain/shared"
	"github.com/onuroner/pk-vkf/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTransferRepository implements TransferExecutor using GORM.
// Execute runs inside one database transaction: it locks both account rows,
// re-checks the source balance under the lock, writes both ledger legs and
// both balance updates, then commits. Any failure rolls everything back.
type GormTransferRepository struct {
	db *gorm.DB
}

// NewGormTransferRepository creates a new GormTransferRepository
func NewGormTransferRepository(db *gorm.DB) *GormTransferRepository {
	return &GormTransferRepository{db: db}
}

// Execute applies the transfer and returns the two ledger legs it created,
// debit leg first. The request must already pass Validate.
func (r *GormTransferRepository) Execute(ctx context.Context, request banking.TransferRequest) ([]*banking.AccountTransaction, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	referenceNumber := banking.NewReferenceNumber()
	transactionDate := time.Now().UTC()

	var legs []*banking.AccountTransaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock both rows in deterministic ID order so two opposite transfers
		// cannot deadlock each other.
		first, second := orderAccountIDs(request.FromAccountID, request.ToAccountID)

		accounts := make(map[uuid.UUID]*models.AccountModel, 2)
		for _, id := range []uuid.UUID{first, second} {
			var model models.AccountModel
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", id).
				First(&model).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return banking.ErrAccountNotFound
				}
				return err
			}
			accounts[id] = &model
		}

		from := accounts[request.FromAccountID].ToDomain()
		to := accounts[request.ToAccountID].ToDomain()

		// Balance check happens under the lock, never before it
		if err := from.Debit(request.Amount); err != nil {
			return err
		}
		if err := to.Credit(request.Amount); err != nil {
			return err
		}

		debitLeg, err := banking.NewDebitTransaction(from.ID, referenceNumber, transactionDate, request.Amount, request.Description)
		if err != nil {
			return err
		}
		creditLeg, err := banking.NewCreditTransaction(to.ID, referenceNumber, transactionDate, request.Amount, request.Description)
		if err != nil {
			return err
		}

		if err := tx.Create(models.AccountTransactionModelFromDomain(debitLeg)).Error; err != nil {
			return err
		}
		if err := tx.Create(models.AccountTransactionModelFromDomain(creditLeg)).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.AccountModel{}).
			Where("id = ?", from.ID).
			Update("balance", from.Balance).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.AccountModel{}).
			Where("id = ?", to.ID).
			Update("balance", to.Balance).Error; err != nil {
			return err
		}

		legs = []*banking.AccountTransaction{debitLeg, creditLeg}
		return nil
	})
	if err != nil {
		// Domain outcomes keep their codes; anything else is an infrastructure
		// failure surfaced under the generic transfer error.
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", banking.ErrTransferFailed, err)
	}

	return legs, nil
}

// orderAccountIDs returns the two IDs in ascending byte order
func orderAccountIDs(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}
	return b, a
}

// Ensure GormTransferRepository implements TransferExecutor
var _ banking.TransferExecutor = (*GormTransferRepository)(nil)
