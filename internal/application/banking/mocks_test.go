package banking

import (
	"context"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/banking"
	"github.com/stretchr/testify/mock"
)

// MockTransferExecutor is a mock implementation of TransferExecutor
type MockTransferExecutor struct {
	mock.Mock
}

func (m *MockTransferExecutor) Execute(ctx context.Context, request banking.TransferRequest) ([]*banking.AccountTransaction, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*banking.AccountTransaction), args.Error(1)
}

// MockAccountTransactionRepository is a mock implementation of AccountTransactionRepository
type MockAccountTransactionRepository struct {
	mock.Mock
}

func (m *MockAccountTransactionRepository) FindByReference(ctx context.Context, referenceNumber string) ([]*banking.AccountTransaction, error) {
	args := m.Called(ctx, referenceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*banking.AccountTransaction), args.Error(1)
}

func (m *MockAccountTransactionRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*banking.AccountTransaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*banking.AccountTransaction), args.Error(1)
}

func (m *MockAccountTransactionRepository) FindByCriteria(ctx context.Context, criteria banking.QueryCriteria) ([]*banking.AccountTransaction, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*banking.AccountTransaction), args.Error(1)
}

// MockTransactionCache is a mock implementation of TransactionCache
type MockTransactionCache struct {
	mock.Mock
}

func (m *MockTransactionCache) Get(ctx context.Context, key string) ([]*banking.AccountTransaction, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]*banking.AccountTransaction), args.Bool(1), args.Error(2)
}

func (m *MockTransactionCache) Set(ctx context.Context, key string, transactions []*banking.AccountTransaction) error {
	args := m.Called(ctx, key, transactions)
	return args.Error(0)
}

func (m *MockTransactionCache) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *banking.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*banking.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*banking.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]*banking.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*banking.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *banking.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*banking.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*banking.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*banking.Account, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*banking.Account), args.Error(1)
}

// MockCardRepository is a mock implementation of CardRepository
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, card *banking.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) Update(ctx context.Context, card *banking.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*banking.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*banking.Card), args.Error(1)
}

func (m *MockCardRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*banking.Card, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*banking.Card), args.Error(1)
}

func (m *MockCardRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*banking.Card, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*banking.Card), args.Error(1)
}

func (m *MockCardRepository) FindAll(ctx context.Context) ([]*banking.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*banking.Card), args.Error(1)
}

func (m *MockCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAddressRepository is a mock implementation of AddressRepository
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) Create(ctx context.Context, address *banking.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) Update(ctx context.Context, address *banking.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*banking.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*banking.Address), args.Error(1)
}

func (m *MockAddressRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*banking.Address, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*banking.Address), args.Error(1)
}

func (m *MockAddressRepository) FindAll(ctx context.Context) ([]*banking.Address, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*banking.Address), args.Error(1)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
