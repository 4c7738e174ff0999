package banking

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	customerID := uuid.New()

	t.Run("creates active account with defaults", func(t *testing.T) {
		account, err := NewAccount(customerID, "1002003001", "TR330006100519786457841326", "Checking", "", decimal.NewFromInt(100))

		require.NoError(t, err)
		assert.Equal(t, customerID, account.CustomerID)
		assert.Equal(t, "TRY", account.CurrencyCode)
		assert.Equal(t, AccountStatusActive, account.Status)
		assert.True(t, account.Balance.Equal(decimal.NewFromInt(100)))
		assert.NotEqual(t, uuid.Nil, account.ID)
	})

	t.Run("rejects empty customer", func(t *testing.T) {
		_, err := NewAccount(uuid.Nil, "1002003001", "", "Checking", "TRY", decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects negative opening balance", func(t *testing.T) {
		_, err := NewAccount(customerID, "1002003001", "", "Checking", "TRY", decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}

func TestAccount_Debit(t *testing.T) {
	newAccount := func(balance int64) *Account {
		account, err := NewAccount(uuid.New(), "1002003001", "", "Checking", "TRY", decimal.NewFromInt(balance))
		require.NoError(t, err)
		return account
	}

	t.Run("debits covered amount", func(t *testing.T) {
		account := newAccount(100)

		err := account.Debit(decimal.NewFromInt(100))

		require.NoError(t, err)
		assert.True(t, account.Balance.IsZero())
	})

	t.Run("insufficient balance leaves account untouched", func(t *testing.T) {
		account := newAccount(50)

		err := account.Debit(decimal.NewFromInt(51))

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInsufficientBalance) || err == shared.ErrInsufficientBalance)
		assert.True(t, account.Balance.Equal(decimal.NewFromInt(50)))
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		account := newAccount(50)

		assert.Error(t, account.Debit(decimal.Zero))
		assert.Error(t, account.Debit(decimal.NewFromInt(-5)))
	})
}

func TestAccount_Credit(t *testing.T) {
	account, err := NewAccount(uuid.New(), "1002003001", "", "Checking", "TRY", decimal.Zero)
	require.NoError(t, err)

	require.NoError(t, account.Credit(decimal.NewFromInt(75)))
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(75)))

	assert.Error(t, account.Credit(decimal.Zero))
}
