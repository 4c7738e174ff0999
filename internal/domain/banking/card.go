package banking

import (
	"strings"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/shared"
)

// Card represents a payment card bound to an account
type Card struct {
	shared.BaseEntity
	AccountID      uuid.UUID
	Account        *Account
	CardNumber     string
	CardHolderName string
	ExpiryMonth    int
	ExpiryYear     int
	IsActive       bool
}

// NewCard creates a new active card for an account
func NewCard(accountID uuid.UUID, cardNumber, cardHolderName string, expiryMonth, expiryYear int) (*Card, error) {
	if accountID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Account ID cannot be empty")
	}
	if len(strings.TrimSpace(cardNumber)) != 16 {
		return nil, shared.NewDomainError("INVALID_CARD_NUMBER", "Card number must be 16 digits")
	}
	if strings.TrimSpace(cardHolderName) == "" {
		return nil, shared.NewDomainError("INVALID_CARD_HOLDER", "Card holder name cannot be empty")
	}
	if expiryMonth < 1 || expiryMonth > 12 {
		return nil, shared.NewDomainError("INVALID_EXPIRY", "Expiry month must be between 1 and 12")
	}

	return &Card{
		BaseEntity:     shared.NewBaseEntity(),
		AccountID:      accountID,
		CardNumber:     cardNumber,
		CardHolderName: cardHolderName,
		ExpiryMonth:    expiryMonth,
		ExpiryYear:     expiryYear,
		IsActive:       true,
	}, nil
}

// Update replaces the mutable card fields. The card number is immutable.
func (c *Card) Update(cardHolderName string, expiryMonth, expiryYear int, isActive bool) error {
	if strings.TrimSpace(cardHolderName) == "" {
		return shared.NewDomainError("INVALID_CARD_HOLDER", "Card holder name cannot be empty")
	}
	if expiryMonth < 1 || expiryMonth > 12 {
		return shared.NewDomainError("INVALID_EXPIRY", "Expiry month must be between 1 and 12")
	}
	c.CardHolderName = cardHolderName
	c.ExpiryMonth = expiryMonth
	c.ExpiryYear = expiryYear
	c.IsActive = isActive
	c.Touch()
	return nil
}

// MaskedNumber returns the card number with all but the last four digits hidden
func (c *Card) MaskedNumber() string {
	if len(c.CardNumber) != 16 {
		return c.CardNumber
	}
	return "************" + c.CardNumber[12:]
}
