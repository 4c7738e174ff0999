package banking

import (
	"context"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/banking"
)

// CustomerService handles customer management operations
type CustomerService struct {
	customerRepo banking.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo banking.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := banking.NewCustomer(req.CustomerNumber, req.FirstName, req.LastName, req.IdentityNumber, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return NewCustomerResponse(customer), nil
}

// GetByID finds a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewCustomerResponse(customer), nil
}

// List lists all customers
func (s *CustomerService) List(ctx context.Context) ([]*CustomerResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = NewCustomerResponse(customer)
	}
	return responses, nil
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.customerRepo.Delete(ctx, id)
}
