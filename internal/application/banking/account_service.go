package banking

import (
	"context"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/banking"
)

// AccountService handles account management operations
type AccountService struct {
	accountRepo  banking.AccountRepository
	customerRepo banking.CustomerRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo banking.AccountRepository, customerRepo banking.CustomerRepository) *AccountService {
	return &AccountService{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
	}
}

// Create opens a new account for an existing customer
func (s *AccountService) Create(ctx context.Context, req CreateAccountRequest) (*AccountResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	account, err := banking.NewAccount(customer.ID, req.AccountNumber, req.IBAN, req.Name, req.CurrencyCode, req.OpeningBalance)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return NewAccountResponse(account), nil
}

// GetByID finds an account by ID
func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*AccountResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewAccountResponse(account), nil
}

// ListByCustomer lists all accounts owned by a customer
func (s *AccountService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*AccountResponse, error) {
	accounts, err := s.accountRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]*AccountResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = NewAccountResponse(account)
	}
	return responses, nil
}
