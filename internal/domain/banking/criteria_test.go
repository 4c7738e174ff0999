package banking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedgerFixture(t *testing.T) []*AccountTransaction {
	t.Helper()

	customerA := uuid.New()
	customerB := uuid.New()
	accountA := &Account{CustomerID: customerA}
	accountA.ID = uuid.New()
	accountB := &Account{CustomerID: customerB}
	accountB.ID = uuid.New()

	date := func(day int) time.Time {
		return time.Date(2024, time.March, day, 12, 0, 0, 0, time.UTC)
	}

	mk := func(account *Account, day int, desc string, credit, debit int64) *AccountTransaction {
		tx := &AccountTransaction{
			AccountID:       account.ID,
			Account:         account,
			TransactionDate: date(day),
			Description:     desc,
			CreditAmount:    decimal.NewFromInt(credit),
			DebitAmount:     decimal.NewFromInt(debit),
			ReferenceNumber: "REF",
		}
		tx.ID = uuid.New()
		return tx
	}

	return []*AccountTransaction{
		mk(accountA, 1, "salary payment", 50, 0),
		mk(accountA, 5, "rent transfer", 0, 120),
		mk(accountB, 10, "salary payment", 120, 0),
		mk(accountB, 15, "grocery", 0, 30),
	}
}

func TestQueryCriteria_EmptyMatchesEverything(t *testing.T) {
	fixture := newLedgerFixture(t)

	result := FilterTransactions(fixture, QueryCriteria{}.Predicate())

	assert.Len(t, result, len(fixture))
	assert.True(t, QueryCriteria{}.IsEmpty())
}

func TestQueryCriteria_SingleClauses(t *testing.T) {
	fixture := newLedgerFixture(t)
	accountA := fixture[0].AccountID
	customerB := fixture[2].Account.CustomerID

	t.Run("by account id", func(t *testing.T) {
		criteria := QueryCriteria{AccountID: &accountA}
		result := FilterTransactions(fixture, criteria.Predicate())

		require.Len(t, result, 2)
		for _, tx := range result {
			assert.Equal(t, accountA, tx.AccountID)
		}
	})

	t.Run("by customer id through account relation", func(t *testing.T) {
		criteria := QueryCriteria{CustomerID: &customerB}
		result := FilterTransactions(fixture, criteria.Predicate())

		require.Len(t, result, 2)
		for _, tx := range result {
			assert.Equal(t, customerB, tx.Account.CustomerID)
		}
	})

	t.Run("by description substring", func(t *testing.T) {
		criteria := QueryCriteria{Description: "salary"}
		result := FilterTransactions(fixture, criteria.Predicate())

		assert.Len(t, result, 2)
	})

	t.Run("description match is case sensitive", func(t *testing.T) {
		criteria := QueryCriteria{Description: "SALARY"}
		result := FilterTransactions(fixture, criteria.Predicate())

		assert.Empty(t, result)
	})

	t.Run("by date range", func(t *testing.T) {
		begin := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.March, 10, 23, 59, 59, 0, time.UTC)
		criteria := QueryCriteria{BeginDate: &begin, EndDate: &end}
		result := FilterTransactions(fixture, criteria.Predicate())

		assert.Len(t, result, 2)
	})
}

// The min/max amount clauses each test the credit and debit legs independently
// (credit >= min OR debit >= min, credit <= max OR debit <= max). They are not
// a combined range check on a single derived amount, so a row can satisfy the
// max clause through its zero leg even when its other leg exceeds the max.
func TestQueryCriteria_AmountClausesPerLeg(t *testing.T) {
	account := &Account{CustomerID: uuid.New()}
	account.ID = uuid.New()

	tx := &AccountTransaction{
		AccountID:       account.ID,
		Account:         account,
		TransactionDate: time.Now(),
		CreditAmount:    decimal.NewFromInt(50),
		DebitAmount:     decimal.Zero,
	}
	tx.ID = uuid.New()

	t.Run("min 40 matches through credit leg", func(t *testing.T) {
		min := decimal.NewFromInt(40)
		assert.True(t, QueryCriteria{MinAmount: &min}.Predicate()(tx))
	})

	t.Run("max 45 still matches: zero debit leg satisfies the max clause", func(t *testing.T) {
		max := decimal.NewFromInt(45)
		assert.True(t, QueryCriteria{MaxAmount: &max}.Predicate()(tx))
	})

	t.Run("min 40 and max 45 together still match", func(t *testing.T) {
		min := decimal.NewFromInt(40)
		max := decimal.NewFromInt(45)
		criteria := QueryCriteria{MinAmount: &min, MaxAmount: &max}
		assert.True(t, criteria.Predicate()(tx))
	})

	t.Run("min boundary is inclusive", func(t *testing.T) {
		min := decimal.NewFromInt(50)
		assert.True(t, QueryCriteria{MinAmount: &min}.Predicate()(tx))
	})

	t.Run("min above both legs does not match", func(t *testing.T) {
		min := decimal.NewFromInt(51)
		assert.False(t, QueryCriteria{MinAmount: &min}.Predicate()(tx))
	})
}

// Adding a criterion never grows the result set; removing one never shrinks it.
func TestQueryCriteria_ConjunctionIsMonotonic(t *testing.T) {
	fixture := newLedgerFixture(t)
	accountA := fixture[0].AccountID
	min := decimal.NewFromInt(100)

	base := QueryCriteria{AccountID: &accountA}
	narrowed := QueryCriteria{AccountID: &accountA, MinAmount: &min, Description: "rent"}

	baseResult := FilterTransactions(fixture, base.Predicate())
	narrowedResult := FilterTransactions(fixture, narrowed.Predicate())

	assert.LessOrEqual(t, len(narrowedResult), len(baseResult))
	for _, tx := range narrowedResult {
		assert.Contains(t, baseResult, tx)
	}
}

func TestQueryCriteria_NilAccountRelation(t *testing.T) {
	customerID := uuid.New()
	tx := &AccountTransaction{AccountID: uuid.New(), TransactionDate: time.Now()}

	criteria := QueryCriteria{CustomerID: &customerID}

	assert.False(t, criteria.Predicate()(tx))
}
