package banking

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindAll(ctx context.Context) ([]*Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountRepository defines persistence operations for accounts
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*Account, error)
}

// CardRepository defines persistence operations for cards
type CardRepository interface {
	Create(ctx context.Context, card *Card) error
	Update(ctx context.Context, card *Card) error
	FindByID(ctx context.Context, id uuid.UUID) (*Card, error)
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*Card, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*Card, error)
	FindAll(ctx context.Context) ([]*Card, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AddressRepository defines persistence operations for customer addresses
type AddressRepository interface {
	Create(ctx context.Context, address *Address) error
	Update(ctx context.Context, address *Address) error
	FindByID(ctx context.Context, id uuid.UUID) (*Address, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*Address, error)
	FindAll(ctx context.Context) ([]*Address, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountTransactionRepository defines read access to the append-only ledger.
// Every result row carries its owning Account with that account's Customer
// attached, so callers never need a second round trip for customer fields.
// An empty result set is a valid result, not an error.
type AccountTransactionRepository interface {
	FindByReference(ctx context.Context, referenceNumber string) ([]*AccountTransaction, error)
	FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*AccountTransaction, error)
	FindByCriteria(ctx context.Context, criteria QueryCriteria) ([]*AccountTransaction, error)
}

// TransferExecutor applies a transfer request as one consistent unit: both
// ledger legs and both balance updates commit together or not at all.
type TransferExecutor interface {
	Execute(ctx context.Context, request TransferRequest) ([]*AccountTransaction, error)
}
