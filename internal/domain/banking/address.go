package banking

import (
	"strings"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/shared"
)

// Address represents a postal address registered for a customer.
// A customer may hold several addresses with at most one marked default.
type Address struct {
	shared.BaseEntity
	CustomerID  uuid.UUID
	Customer    *Customer
	Line1       string
	Line2       string
	City        string
	District    string
	PostalCode  string
	CountryCode string
	IsDefault   bool
}

// NewAddress creates a new address for a customer
func NewAddress(customerID uuid.UUID, line1, line2, city, district, postalCode, countryCode string, isDefault bool) (*Address, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if strings.TrimSpace(line1) == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address line cannot be empty")
	}
	if strings.TrimSpace(city) == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "City cannot be empty")
	}
	if countryCode == "" {
		countryCode = "TR"
	}

	return &Address{
		BaseEntity:  shared.NewBaseEntity(),
		CustomerID:  customerID,
		Line1:       line1,
		Line2:       line2,
		City:        city,
		District:    district,
		PostalCode:  postalCode,
		CountryCode: countryCode,
		IsDefault:   isDefault,
	}, nil
}

// Update replaces the mutable address fields. The owning customer never changes.
func (a *Address) Update(line1, line2, city, district, postalCode, countryCode string, isDefault bool) error {
	if strings.TrimSpace(line1) == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Address line cannot be empty")
	}
	if strings.TrimSpace(city) == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "City cannot be empty")
	}
	if countryCode == "" {
		countryCode = "TR"
	}
	a.Line1 = line1
	a.Line2 = line2
	a.City = city
	a.District = district
	a.PostalCode = postalCode
	a.CountryCode = countryCode
	a.IsDefault = isDefault
	a.Touch()
	return nil
}
