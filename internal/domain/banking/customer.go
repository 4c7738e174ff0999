package banking

import (
	"strings"

	"github.com/onuroner/pk-vkf/internal/domain/shared"
)

// CustomerStatus represents the lifecycle status of a customer
type CustomerStatus string

const (
	// CustomerStatusActive represents a customer that can open accounts and transfer money
	CustomerStatusActive CustomerStatus = "ACTIVE"
	// CustomerStatusClosed represents a customer whose relationship has ended
	CustomerStatusClosed CustomerStatus = "CLOSED"
)

// Customer represents a bank customer that owns accounts
type Customer struct {
	shared.BaseEntity
	CustomerNumber string
	FirstName      string
	LastName       string
	IdentityNumber string
	Email          string
	Phone          string
	Status         CustomerStatus
}

// NewCustomer creates a new customer after validating required fields
func NewCustomer(customerNumber, firstName, lastName, identityNumber, email, phone string) (*Customer, error) {
	if strings.TrimSpace(customerNumber) == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NUMBER", "Customer number cannot be empty")
	}
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer first and last name are required")
	}
	if strings.TrimSpace(identityNumber) == "" {
		return nil, shared.NewDomainError("INVALID_IDENTITY_NUMBER", "Identity number cannot be empty")
	}

	return &Customer{
		BaseEntity:     shared.NewBaseEntity(),
		CustomerNumber: customerNumber,
		FirstName:      firstName,
		LastName:       lastName,
		IdentityNumber: identityNumber,
		Email:          email,
		Phone:          phone,
		Status:         CustomerStatusActive,
	}, nil
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// IsActive returns true if the customer can operate accounts
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}
