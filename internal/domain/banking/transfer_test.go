package banking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferRequest_Validate(t *testing.T) {
	from := uuid.New()
	to := uuid.New()

	tests := []struct {
		name    string
		request TransferRequest
		wantErr error
	}{
		{
			name:    "valid request",
			request: TransferRequest{FromAccountID: from, ToAccountID: to, Amount: decimal.NewFromInt(10)},
		},
		{
			name:    "missing source account",
			request: TransferRequest{ToAccountID: to, Amount: decimal.NewFromInt(10)},
			wantErr: assert.AnError,
		},
		{
			name:    "same account transfer",
			request: TransferRequest{FromAccountID: from, ToAccountID: from, Amount: decimal.NewFromInt(10)},
			wantErr: ErrSameAccountTransfer,
		},
		{
			name:    "zero amount",
			request: TransferRequest{FromAccountID: from, ToAccountID: to, Amount: decimal.Zero},
			wantErr: assert.AnError,
		},
		{
			name:    "negative amount",
			request: TransferRequest{FromAccountID: from, ToAccountID: to, Amount: decimal.NewFromInt(-10)},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr == ErrSameAccountTransfer {
				assert.Equal(t, ErrSameAccountTransfer, err)
			}
		})
	}
}

func TestNewReferenceNumber(t *testing.T) {
	t.Run("sixteen digit numeric string", func(t *testing.T) {
		ref := NewReferenceNumber()

		assert.Len(t, ref, 16)
		for _, r := range ref {
			assert.True(t, r >= '0' && r <= '9')
		}
	})

	t.Run("consecutive references differ", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			seen[NewReferenceNumber()] = true
		}
		assert.Greater(t, len(seen), 95)
	})
}

func TestLedgerLegs(t *testing.T) {
	accountID := uuid.New()
	date := time.Now()
	amount := decimal.NewFromInt(100)

	t.Run("debit and credit legs are mutually exclusive", func(t *testing.T) {
		debit, err := NewDebitTransaction(accountID, "REF1", date, amount, "transfer out")
		require.NoError(t, err)
		credit, err := NewCreditTransaction(accountID, "REF1", date, amount, "transfer in")
		require.NoError(t, err)

		assert.True(t, debit.IsDebit())
		assert.False(t, debit.IsCredit())
		assert.True(t, debit.CreditAmount.IsZero())

		assert.True(t, credit.IsCredit())
		assert.False(t, credit.IsDebit())
		assert.True(t, credit.DebitAmount.IsZero())

		assert.True(t, debit.Amount().Equal(amount))
		assert.True(t, credit.Amount().Equal(amount))
	})

	t.Run("legs of one transfer net to zero on the ledger", func(t *testing.T) {
		debit, err := NewDebitTransaction(accountID, "REF2", date, amount, "")
		require.NoError(t, err)
		credit, err := NewCreditTransaction(uuid.New(), "REF2", date, amount, "")
		require.NoError(t, err)

		sum := credit.CreditAmount.Add(debit.CreditAmount).
			Sub(credit.DebitAmount).Sub(debit.DebitAmount)
		assert.True(t, sum.IsZero())
	})

	t.Run("rejects invalid legs", func(t *testing.T) {
		_, err := NewDebitTransaction(uuid.Nil, "REF", date, amount, "")
		assert.Error(t, err)

		_, err = NewDebitTransaction(accountID, "", date, amount, "")
		assert.Error(t, err)

		_, err = NewCreditTransaction(accountID, "REF", date, decimal.Zero, "")
		assert.Error(t, err)
	})
}
