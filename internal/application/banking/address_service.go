package banking

import (
	"context"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/banking"
)

// AddressService handles customer address management operations
type AddressService struct {
	addressRepo  banking.AddressRepository
	customerRepo banking.CustomerRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(addressRepo banking.AddressRepository, customerRepo banking.CustomerRepository) *AddressService {
	return &AddressService{
		addressRepo:  addressRepo,
		customerRepo: customerRepo,
	}
}

// Create registers an address for an existing customer
func (s *AddressService) Create(ctx context.Context, req CreateAddressRequest) (*AddressResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	address, err := banking.NewAddress(customer.ID, req.Line1, req.Line2, req.City, req.District, req.PostalCode, req.CountryCode, req.IsDefault)
	if err != nil {
		return nil, err
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}

	return NewAddressResponse(address), nil
}

// Update changes an existing address
func (s *AddressService) Update(ctx context.Context, id uuid.UUID, req UpdateAddressRequest) (*AddressResponse, error) {
	address, err := s.addressRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := address.Update(req.Line1, req.Line2, req.City, req.District, req.PostalCode, req.CountryCode, req.IsDefault); err != nil {
		return nil, err
	}

	if err := s.addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}

	return NewAddressResponse(address), nil
}

// GetByID finds an address by ID
func (s *AddressService) GetByID(ctx context.Context, id uuid.UUID) (*AddressResponse, error) {
	address, err := s.addressRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewAddressResponse(address), nil
}

// ListByCustomer lists all addresses registered for a customer
func (s *AddressService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*AddressResponse, error) {
	addresses, err := s.addressRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return newAddressResponses(addresses), nil
}

// List lists all addresses
func (s *AddressService) List(ctx context.Context) ([]*AddressResponse, error) {
	addresses, err := s.addressRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return newAddressResponses(addresses), nil
}

// Delete removes an address
func (s *AddressService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.addressRepo.Delete(ctx, id)
}

func newAddressResponses(addresses []*banking.Address) []*AddressResponse {
	responses := make([]*AddressResponse, len(addresses))
	for i, address := range addresses {
		responses[i] = NewAddressResponse(address)
	}
	return responses
}
