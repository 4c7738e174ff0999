package banking

import (
	"strings"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AccountStatus represents the lifecycle status of an account
type AccountStatus string

const (
	// AccountStatusActive represents an account that can send and receive transfers
	AccountStatusActive AccountStatus = "ACTIVE"
	// AccountStatusClosed represents an account that no longer accepts operations
	AccountStatusClosed AccountStatus = "CLOSED"
)

// Account represents a ledger account owned by a customer.
// Its balance is mutated only inside a transfer transaction scope.
type Account struct {
	shared.BaseEntity
	CustomerID    uuid.UUID
	Customer      *Customer
	AccountNumber string
	IBAN          string
	Name          string
	CurrencyCode  string
	Balance       decimal.Decimal
	Status        AccountStatus
}

// NewAccount creates a new active account for a customer
func NewAccount(customerID uuid.UUID, accountNumber, iban, name, currencyCode string, openingBalance decimal.Decimal) (*Account, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if strings.TrimSpace(accountNumber) == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_NUMBER", "Account number cannot be empty")
	}
	if openingBalance.IsNegative() {
		return nil, shared.NewDomainError("INVALID_BALANCE", "Opening balance cannot be negative")
	}
	if currencyCode == "" {
		currencyCode = "TRY"
	}

	return &Account{
		BaseEntity:    shared.NewBaseEntity(),
		CustomerID:    customerID,
		AccountNumber: accountNumber,
		IBAN:          iban,
		Name:          name,
		CurrencyCode:  currencyCode,
		Balance:       openingBalance,
		Status:        AccountStatusActive,
	}, nil
}

// IsActive returns true if the account accepts transfers
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// CanDebit returns true if the account balance covers the given amount
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// Debit removes the given amount from the balance.
// Returns ErrInsufficientBalance without mutating when the balance does not cover it.
func (a *Account) Debit(amount decimal.Decimal) error {
	if amount.IsNegative() || amount.IsZero() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if !a.CanDebit(amount) {
		return shared.ErrInsufficientBalance
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Credit adds the given amount to the balance
func (a *Account) Credit(amount decimal.Decimal) error {
	if amount.IsNegative() || amount.IsZero() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}
