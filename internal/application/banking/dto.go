package banking

import (
	"time"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/banking"
	"github.com/onuroner/pk-vkf/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Transfer DTOs
// =============================================================================

// CreateTransferRequest represents a request to move money between two accounts
type CreateTransferRequest struct {
	FromAccountID uuid.UUID       `json:"from_account_id" binding:"required"`
	ToAccountID   uuid.UUID       `json:"to_account_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description" binding:"max=500"`
}

// TransferResult represents a completed transfer in API responses
type TransferResult struct {
	ReferenceNumber string            `json:"reference_number"`
	Transactions    []TransactionView `json:"transactions"`
}

// TransactionView represents one ledger leg in API responses
type TransactionView struct {
	ID              uuid.UUID       `json:"id"`
	AccountID       uuid.UUID       `json:"account_id"`
	CustomerID      uuid.UUID       `json:"customer_id,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
	Description     string          `json:"description"`
	CreditAmount    decimal.Decimal `json:"credit_amount"`
	DebitAmount     decimal.Decimal `json:"debit_amount"`
	ReferenceNumber string          `json:"reference_number"`
}

// NewTransactionView converts a domain transaction to its API representation
func NewTransactionView(tx *banking.AccountTransaction) TransactionView {
	return TransactionView{
		ID:              tx.ID,
		AccountID:       tx.AccountID,
		CustomerID:      tx.CustomerID(),
		TransactionDate: tx.TransactionDate,
		Description:     tx.Description,
		CreditAmount:    tx.CreditAmount,
		DebitAmount:     tx.DebitAmount,
		ReferenceNumber: tx.ReferenceNumber,
	}
}

// NewTransactionViews converts a slice of domain transactions
func NewTransactionViews(transactions []*banking.AccountTransaction) []TransactionView {
	views := make([]TransactionView, len(transactions))
	for i, tx := range transactions {
		views[i] = NewTransactionView(tx)
	}
	return views
}

// QueryTransactionsRequest carries the optional filters of a criteria query.
// All fields are independent; absent fields impose no constraint.
// IDs arrive as strings because they come from URL query parameters.
type QueryTransactionsRequest struct {
	AccountID   string           `form:"account_id" binding:"omitempty,uuid"`
	CustomerID  string           `form:"customer_id" binding:"omitempty,uuid"`
	MinAmount   *decimal.Decimal `form:"min_amount"`
	MaxAmount   *decimal.Decimal `form:"max_amount"`
	BeginDate   *time.Time       `form:"begin_date" time_format:"2006-01-02"`
	EndDate     *time.Time       `form:"end_date" time_format:"2006-01-02"`
	Description string           `form:"description"`
}

// ToCriteria converts the request to domain query criteria
func (r QueryTransactionsRequest) ToCriteria() (banking.QueryCriteria, error) {
	criteria := banking.QueryCriteria{
		MinAmount:   r.MinAmount,
		MaxAmount:   r.MaxAmount,
		BeginDate:   r.BeginDate,
		EndDate:     r.EndDate,
		Description: r.Description,
	}

	if r.AccountID != "" {
		id, err := uuid.Parse(r.AccountID)
		if err != nil {
			return banking.QueryCriteria{}, shared.NewDomainError("INVALID_INPUT", "Invalid account ID filter")
		}
		criteria.AccountID = &id
	}
	if r.CustomerID != "" {
		id, err := uuid.Parse(r.CustomerID)
		if err != nil {
			return banking.QueryCriteria{}, shared.NewDomainError("INVALID_INPUT", "Invalid customer ID filter")
		}
		criteria.CustomerID = &id
	}
	return criteria, nil
}

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	CustomerNumber string `json:"customer_number" binding:"required,min=1,max=20"`
	FirstName      string `json:"first_name" binding:"required,min=1,max=100"`
	LastName       string `json:"last_name" binding:"required,min=1,max=100"`
	IdentityNumber string `json:"identity_number" binding:"required,min=1,max=20"`
	Email          string `json:"email" binding:"omitempty,email,max=200"`
	Phone          string `json:"phone" binding:"max=50"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID             uuid.UUID `json:"id"`
	CustomerNumber string    `json:"customer_number"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	FullName       string    `json:"full_name"`
	IdentityNumber string    `json:"identity_number"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewCustomerResponse converts a domain customer to its API representation
func NewCustomerResponse(c *banking.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:             c.ID,
		CustomerNumber: c.CustomerNumber,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		FullName:       c.FullName(),
		IdentityNumber: c.IdentityNumber,
		Email:          c.Email,
		Phone:          c.Phone,
		Status:         string(c.Status),
		CreatedAt:      c.CreatedAt,
	}
}

// =============================================================================
// Account DTOs
// =============================================================================

// CreateAccountRequest represents a request to open a new account
type CreateAccountRequest struct {
	CustomerID     uuid.UUID       `json:"customer_id" binding:"required"`
	AccountNumber  string          `json:"account_number" binding:"required,min=1,max=30"`
	IBAN           string          `json:"iban" binding:"max=34"`
	Name           string          `json:"name" binding:"max=100"`
	CurrencyCode   string          `json:"currency_code" binding:"omitempty,len=3"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	AccountNumber string          `json:"account_number"`
	IBAN          string          `json:"iban"`
	Name          string          `json:"name"`
	CurrencyCode  string          `json:"currency_code"`
	Balance       decimal.Decimal `json:"balance"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewAccountResponse converts a domain account to its API representation
func NewAccountResponse(a *banking.Account) *AccountResponse {
	return &AccountResponse{
		ID:            a.ID,
		CustomerID:    a.CustomerID,
		AccountNumber: a.AccountNumber,
		IBAN:          a.IBAN,
		Name:          a.Name,
		CurrencyCode:  a.CurrencyCode,
		Balance:       a.Balance,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
	}
}

// =============================================================================
// Card DTOs
// =============================================================================

// CreateCardRequest represents a request to issue a card for an account
type CreateCardRequest struct {
	AccountID      uuid.UUID `json:"account_id" binding:"required"`
	CardNumber     string    `json:"card_number" binding:"required,len=16"`
	CardHolderName string    `json:"card_holder_name" binding:"required,min=1,max=100"`
	ExpiryMonth    int       `json:"expiry_month" binding:"required,min=1,max=12"`
	ExpiryYear     int       `json:"expiry_year" binding:"required"`
}

// UpdateCardRequest represents a request to change a card's mutable fields
type UpdateCardRequest struct {
	CardHolderName string `json:"card_holder_name" binding:"required,min=1,max=100"`
	ExpiryMonth    int    `json:"expiry_month" binding:"required,min=1,max=12"`
	ExpiryYear     int    `json:"expiry_year" binding:"required"`
	IsActive       bool   `json:"is_active"`
}

// CardResponse represents a card in API responses.
// The card number is always masked.
type CardResponse struct {
	ID             uuid.UUID `json:"id"`
	AccountID      uuid.UUID `json:"account_id"`
	MaskedNumber   string    `json:"masked_number"`
	CardHolderName string    `json:"card_holder_name"`
	ExpiryMonth    int       `json:"expiry_month"`
	ExpiryYear     int       `json:"expiry_year"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewCardResponse converts a domain card to its API representation
func NewCardResponse(c *banking.Card) *CardResponse {
	return &CardResponse{
		ID:             c.ID,
		AccountID:      c.AccountID,
		MaskedNumber:   c.MaskedNumber(),
		CardHolderName: c.CardHolderName,
		ExpiryMonth:    c.ExpiryMonth,
		ExpiryYear:     c.ExpiryYear,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
	}
}

// =============================================================================
// Address DTOs
// =============================================================================

// CreateAddressRequest represents a request to register an address for a customer
type CreateAddressRequest struct {
	CustomerID  uuid.UUID `json:"customer_id" binding:"required"`
	Line1       string    `json:"line1" binding:"required,min=1,max=200"`
	Line2       string    `json:"line2" binding:"max=200"`
	City        string    `json:"city" binding:"required,min=1,max=100"`
	District    string    `json:"district" binding:"max=100"`
	PostalCode  string    `json:"postal_code" binding:"max=10"`
	CountryCode string    `json:"country_code" binding:"omitempty,len=2"`
	IsDefault   bool      `json:"is_default"`
}

// UpdateAddressRequest represents a request to change an existing address.
// The owning customer is fixed at creation.
type UpdateAddressRequest struct {
	Line1       string `json:"line1" binding:"required,min=1,max=200"`
	Line2       string `json:"line2" binding:"max=200"`
	City        string `json:"city" binding:"required,min=1,max=100"`
	District    string `json:"district" binding:"max=100"`
	PostalCode  string `json:"postal_code" binding:"max=10"`
	CountryCode string `json:"country_code" binding:"omitempty,len=2"`
	IsDefault   bool   `json:"is_default"`
}

// AddressResponse represents an address in API responses
type AddressResponse struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Line1       string    `json:"line1"`
	Line2       string    `json:"line2,omitempty"`
	City        string    `json:"city"`
	District    string    `json:"district,omitempty"`
	PostalCode  string    `json:"postal_code,omitempty"`
	CountryCode string    `json:"country_code"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewAddressResponse converts a domain address to its API representation
func NewAddressResponse(a *banking.Address) *AddressResponse {
	return &AddressResponse{
		ID:          a.ID,
		CustomerID:  a.CustomerID,
		Line1:       a.Line1,
		Line2:       a.Line2,
		City:        a.City,
		District:    a.District,
		PostalCode:  a.PostalCode,
		CountryCode: a.CountryCode,
		IsDefault:   a.IsDefault,
		CreatedAt:   a.CreatedAt,
	}
}
