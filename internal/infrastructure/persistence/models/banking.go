package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/banking"
	"github.com/shopspring/decimal"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	CustomerNumber string                 `gorm:"type:varchar(20);not null;uniqueIndex"`
	FirstName      string                 `gorm:"type:varchar(100);not null"`
	LastName       string                 `gorm:"type:varchar(100);not null"`
	IdentityNumber string                 `gorm:"type:varchar(20);not null;uniqueIndex"`
	Email          string                 `gorm:"type:varchar(200);index"`
	Phone          string                 `gorm:"type:varchar(50)"`
	Status         banking.CustomerStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *banking.Customer {
	return &banking.Customer{
		BaseEntity:     m.BaseModel.ToDomain(),
		CustomerNumber: m.CustomerNumber,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		IdentityNumber: m.IdentityNumber,
		Email:          m.Email,
		Phone:          m.Phone,
		Status:         m.Status,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *banking.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.CustomerNumber = c.CustomerNumber
	m.FirstName = c.FirstName
	m.LastName = c.LastName
	m.IdentityNumber = c.IdentityNumber
	m.Email = c.Email
	m.Phone = c.Phone
	m.Status = c.Status
}

// CustomerModelFromDomain creates a persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *banking.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// AccountModel is the persistence model for the Account domain entity.
type AccountModel struct {
	BaseModel
	CustomerID    uuid.UUID             `gorm:"type:uuid;not null;index"`
	Customer      *CustomerModel        `gorm:"foreignKey:CustomerID"`
	AccountNumber string                `gorm:"type:varchar(30);not null;uniqueIndex"`
	IBAN          string                `gorm:"type:varchar(34);uniqueIndex"`
	Name          string                `gorm:"type:varchar(100)"`
	CurrencyCode  string                `gorm:"type:varchar(3);not null;default:'TRY'"`
	Balance       decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	Status        banking.AccountStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts the persistence model to a domain Account entity.
// The Customer relation is carried over when it was loaded.
func (m *AccountModel) ToDomain() *banking.Account {
	account := &banking.Account{
		BaseEntity:    m.BaseModel.ToDomain(),
		CustomerID:    m.CustomerID,
		AccountNumber: m.AccountNumber,
		IBAN:          m.IBAN,
		Name:          m.Name,
		CurrencyCode:  m.CurrencyCode,
		Balance:       m.Balance,
		Status:        m.Status,
	}
	if m.Customer != nil {
		account.Customer = m.Customer.ToDomain()
	}
	return account
}

// FromDomain populates the persistence model from a domain Account entity.
func (m *AccountModel) FromDomain(a *banking.Account) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.CustomerID = a.CustomerID
	m.AccountNumber = a.AccountNumber
	m.IBAN = a.IBAN
	m.Name = a.Name
	m.CurrencyCode = a.CurrencyCode
	m.Balance = a.Balance
	m.Status = a.Status
}

// AccountModelFromDomain creates a persistence model from a domain Account entity.
func AccountModelFromDomain(a *banking.Account) *AccountModel {
	m := &AccountModel{}
	m.FromDomain(a)
	return m
}

// CardModel is the persistence model for the Card domain entity.
type CardModel struct {
	BaseModel
	AccountID      uuid.UUID     `gorm:"type:uuid;not null;index"`
	Account        *AccountModel `gorm:"foreignKey:AccountID"`
	CardNumber     string        `gorm:"type:varchar(16);not null;uniqueIndex"`
	CardHolderName string        `gorm:"type:varchar(100);not null"`
	ExpiryMonth    int           `gorm:"not null"`
	ExpiryYear     int           `gorm:"not null"`
	IsActive       bool          `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CardModel) TableName() string {
	return "cards"
}

// ToDomain converts the persistence model to a domain Card entity.
func (m *CardModel) ToDomain() *banking.Card {
	card := &banking.Card{
		BaseEntity:     m.BaseModel.ToDomain(),
		AccountID:      m.AccountID,
		CardNumber:     m.CardNumber,
		CardHolderName: m.CardHolderName,
		ExpiryMonth:    m.ExpiryMonth,
		ExpiryYear:     m.ExpiryYear,
		IsActive:       m.IsActive,
	}
	if m.Account != nil {
		card.Account = m.Account.ToDomain()
	}
	return card
}

// FromDomain populates the persistence model from a domain Card entity.
func (m *CardModel) FromDomain(c *banking.Card) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.AccountID = c.AccountID
	m.CardNumber = c.CardNumber
	m.CardHolderName = c.CardHolderName
	m.ExpiryMonth = c.ExpiryMonth
	m.ExpiryYear = c.ExpiryYear
	m.IsActive = c.IsActive
}

// CardModelFromDomain creates a persistence model from a domain Card entity.
func CardModelFromDomain(c *banking.Card) *CardModel {
	m := &CardModel{}
	m.FromDomain(c)
	return m
}

// AddressModel is the persistence model for the Address domain entity.
type AddressModel struct {
	BaseModel
	CustomerID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Customer    *CustomerModel `gorm:"foreignKey:CustomerID"`
	Line1       string         `gorm:"type:varchar(200);not null"`
	Line2       string         `gorm:"type:varchar(200)"`
	City        string         `gorm:"type:varchar(100);not null"`
	District    string         `gorm:"type:varchar(100)"`
	PostalCode  string         `gorm:"type:varchar(10)"`
	CountryCode string         `gorm:"type:varchar(2);not null;default:'TR'"`
	IsDefault   bool           `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts the persistence model to a domain Address entity.
func (m *AddressModel) ToDomain() *banking.Address {
	address := &banking.Address{
		BaseEntity:  m.BaseModel.ToDomain(),
		CustomerID:  m.CustomerID,
		Line1:       m.Line1,
		Line2:       m.Line2,
		City:        m.City,
		District:    m.District,
		PostalCode:  m.PostalCode,
		CountryCode: m.CountryCode,
		IsDefault:   m.IsDefault,
	}
	if m.Customer != nil {
		address.Customer = m.Customer.ToDomain()
	}
	return address
}

// FromDomain populates the persistence model from a domain Address entity.
func (m *AddressModel) FromDomain(a *banking.Address) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.CustomerID = a.CustomerID
	m.Line1 = a.Line1
	m.Line2 = a.Line2
	m.City = a.City
	m.District = a.District
	m.PostalCode = a.PostalCode
	m.CountryCode = a.CountryCode
	m.IsDefault = a.IsDefault
}

// AddressModelFromDomain creates a persistence model from a domain Address entity.
func AddressModelFromDomain(a *banking.Address) *AddressModel {
	m := &AddressModel{}
	m.FromDomain(a)
	return m
}

// AccountTransactionModel is the persistence model for one ledger leg.
// Rows are append-only; the model never drives UPDATE or DELETE statements.
type AccountTransactionModel struct {
	BaseModel
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Account         *AccountModel   `gorm:"foreignKey:AccountID"`
	TransactionDate time.Time       `gorm:"not null;index"`
	Description     string          `gorm:"type:varchar(500)"`
	CreditAmount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	DebitAmount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ReferenceNumber string          `gorm:"type:varchar(16);not null;index"`
}

// TableName returns the table name for GORM
func (AccountTransactionModel) TableName() string {
	return "account_transactions"
}

// ToDomain converts the persistence model to a domain AccountTransaction entity.
// The Account relation, with its Customer when preloaded, is carried over.
func (m *AccountTransactionModel) ToDomain() *banking.AccountTransaction {
	tx := &banking.AccountTransaction{
		BaseEntity:      m.BaseModel.ToDomain(),
		AccountID:       m.AccountID,
		TransactionDate: m.TransactionDate,
		Description:     m.Description,
		CreditAmount:    m.CreditAmount,
		DebitAmount:     m.DebitAmount,
		ReferenceNumber: m.ReferenceNumber,
	}
	if m.Account != nil {
		tx.Account = m.Account.ToDomain()
	}
	return tx
}

// FromDomain populates the persistence model from a domain AccountTransaction entity.
func (m *AccountTransactionModel) FromDomain(t *banking.AccountTransaction) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.AccountID = t.AccountID
	m.TransactionDate = t.TransactionDate
	m.Description = t.Description
	m.CreditAmount = t.CreditAmount
	m.DebitAmount = t.DebitAmount
	m.ReferenceNumber = t.ReferenceNumber
}

// AccountTransactionModelFromDomain creates a persistence model from a domain entity.
func AccountTransactionModelFromDomain(t *banking.AccountTransaction) *AccountTransactionModel {
	m := &AccountTransactionModel{}
	m.FromDomain(t)
	return m
}
