package banking

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QueryCriteria holds the optional, independently-specifiable filters for
// transaction queries. An absent field imposes no constraint; the resulting
// filter is the conjunction of only the present clauses, so an all-absent
// criteria set matches every transaction.
type QueryCriteria struct {
	AccountID   *uuid.UUID
	CustomerID  *uuid.UUID
	MinAmount   *decimal.Decimal
	MaxAmount   *decimal.Decimal
	BeginDate   *time.Time
	EndDate     *time.Time
	Description string
}

// IsEmpty returns true when no criterion is present
func (c QueryCriteria) IsEmpty() bool {
	return c.AccountID == nil &&
		c.CustomerID == nil &&
		c.MinAmount == nil &&
		c.MaxAmount == nil &&
		c.BeginDate == nil &&
		c.EndDate == nil &&
		strings.TrimSpace(c.Description) == ""
}

// TransactionPredicate is a composable boolean filter over ledger rows
type TransactionPredicate func(*AccountTransaction) bool

// And conjoins two predicates
func (p TransactionPredicate) And(other TransactionPredicate) TransactionPredicate {
	return func(tx *AccountTransaction) bool {
		return p(tx) && other(tx)
	}
}

// Predicate builds the filter for this criteria set. Construction starts from
// an always-true predicate and conjoins one clause per present criterion.
//
// The amount clauses deliberately test each leg independently: a transaction
// matches MinAmount when either its credit or its debit leg is >= the value,
// and matches MaxAmount when either leg is <= the value. The two clauses are
// NOT collapsed into a single range check on one derived amount; a row whose
// credit exceeds MaxAmount can still match through its zero debit leg. This
// mirrors the ledger's historical query behavior and is pinned by tests.
//
// Description matching is case sensitive.
func (c QueryCriteria) Predicate() TransactionPredicate {
	pred := TransactionPredicate(func(*AccountTransaction) bool { return true })

	if c.AccountID != nil && *c.AccountID != uuid.Nil {
		accountID := *c.AccountID
		pred = pred.And(func(tx *AccountTransaction) bool {
			return tx.AccountID == accountID
		})
	}
	if c.CustomerID != nil && *c.CustomerID != uuid.Nil {
		customerID := *c.CustomerID
		pred = pred.And(func(tx *AccountTransaction) bool {
			return tx.Account != nil && tx.Account.CustomerID == customerID
		})
	}
	if desc := strings.TrimSpace(c.Description); desc != "" {
		pred = pred.And(func(tx *AccountTransaction) bool {
			return strings.Contains(tx.Description, desc)
		})
	}
	if c.MinAmount != nil && c.MinAmount.IsPositive() {
		min := *c.MinAmount
		pred = pred.And(func(tx *AccountTransaction) bool {
			return tx.CreditAmount.GreaterThanOrEqual(min) || tx.DebitAmount.GreaterThanOrEqual(min)
		})
	}
	if c.MaxAmount != nil && c.MaxAmount.IsPositive() {
		max := *c.MaxAmount
		pred = pred.And(func(tx *AccountTransaction) bool {
			return tx.CreditAmount.LessThanOrEqual(max) || tx.DebitAmount.LessThanOrEqual(max)
		})
	}
	if c.BeginDate != nil {
		begin := *c.BeginDate
		pred = pred.And(func(tx *AccountTransaction) bool {
			return !tx.TransactionDate.Before(begin)
		})
	}
	if c.EndDate != nil {
		end := *c.EndDate
		pred = pred.And(func(tx *AccountTransaction) bool {
			return !tx.TransactionDate.After(end)
		})
	}

	return pred
}

// FilterTransactions applies a predicate to an in-memory collection
func FilterTransactions(transactions []*AccountTransaction, pred TransactionPredicate) []*AccountTransaction {
	result := make([]*AccountTransaction, 0, len(transactions))
	for _, tx := range transactions {
		if pred(tx) {
			result = append(result, tx)
		}
	}
	return result
}
