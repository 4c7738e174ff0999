package banking

import (
	"time"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AccountTransaction represents one ledger leg of a money transfer.
// A row carries either a debit amount or a credit amount, never both;
// the two legs of one transfer share a reference number.
// Rows are append-only: once created they are never updated or deleted.
type AccountTransaction struct {
	shared.BaseEntity
	AccountID       uuid.UUID
	Account         *Account
	TransactionDate time.Time
	Description     string
	CreditAmount    decimal.Decimal
	DebitAmount     decimal.Decimal
	ReferenceNumber string
}

// newAccountTransaction validates the fields shared by both legs
func newAccountTransaction(accountID uuid.UUID, referenceNumber string, date time.Time, amount decimal.Decimal) error {
	if accountID == uuid.Nil {
		return shared.NewDomainError("INVALID_ACCOUNT", "Account ID cannot be empty")
	}
	if referenceNumber == "" {
		return shared.NewDomainError("INVALID_REFERENCE", "Reference number cannot be empty")
	}
	if date.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Transaction date cannot be zero")
	}
	if amount.IsNegative() || amount.IsZero() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	return nil
}

// NewDebitTransaction creates the debit leg of a transfer on the source account
func NewDebitTransaction(accountID uuid.UUID, referenceNumber string, date time.Time, amount decimal.Decimal, description string) (*AccountTransaction, error) {
	if err := newAccountTransaction(accountID, referenceNumber, date, amount); err != nil {
		return nil, err
	}
	return &AccountTransaction{
		BaseEntity:      shared.NewBaseEntity(),
		AccountID:       accountID,
		TransactionDate: date,
		Description:     description,
		DebitAmount:     amount,
		CreditAmount:    decimal.Zero,
		ReferenceNumber: referenceNumber,
	}, nil
}

// NewCreditTransaction creates the credit leg of a transfer on the destination account
func NewCreditTransaction(accountID uuid.UUID, referenceNumber string, date time.Time, amount decimal.Decimal, description string) (*AccountTransaction, error) {
	if err := newAccountTransaction(accountID, referenceNumber, date, amount); err != nil {
		return nil, err
	}
	return &AccountTransaction{
		BaseEntity:      shared.NewBaseEntity(),
		AccountID:       accountID,
		TransactionDate: date,
		Description:     description,
		CreditAmount:    amount,
		DebitAmount:     decimal.Zero,
		ReferenceNumber: referenceNumber,
	}, nil
}

// IsDebit returns true if this row is the debit leg
func (t *AccountTransaction) IsDebit() bool {
	return t.DebitAmount.IsPositive()
}

// IsCredit returns true if this row is the credit leg
func (t *AccountTransaction) IsCredit() bool {
	return t.CreditAmount.IsPositive()
}

// Amount returns the amount of whichever leg this row carries
func (t *AccountTransaction) Amount() decimal.Decimal {
	if t.IsDebit() {
		return t.DebitAmount
	}
	return t.CreditAmount
}

// CustomerID returns the owning customer when the account relation is loaded
func (t *AccountTransaction) CustomerID() uuid.UUID {
	if t.Account == nil {
		return uuid.Nil
	}
	return t.Account.CustomerID
}
