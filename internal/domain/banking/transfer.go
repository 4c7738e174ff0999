package banking

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Transfer-specific domain errors
var (
	ErrSameAccountTransfer = shared.NewDomainError("SAME_ACCOUNT_TRANSFER", "Source and destination accounts must differ")
	ErrAccountNotFound     = shared.NewDomainError("ACCOUNT_NOT_FOUND", "Referenced account does not exist")
	ErrTransferFailed      = shared.NewDomainError("TRANSFER_FAILED", "Transfer could not be completed")
)

// TransferRequest represents an internal money movement between two accounts.
// It is transient input: executing it produces exactly two AccountTransaction
// rows, one debit leg and one credit leg, sharing one reference number.
type TransferRequest struct {
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Description   string
}

// Validate checks the request before any account is touched
func (r TransferRequest) Validate() error {
	if r.FromAccountID == uuid.Nil || r.ToAccountID == uuid.Nil {
		return shared.NewDomainError("INVALID_ACCOUNT", "Source and destination account IDs are required")
	}
	if r.FromAccountID == r.ToAccountID {
		return ErrSameAccountTransfer
	}
	if r.Amount.IsNegative() || r.Amount.IsZero() {
		return shared.NewDomainError("INVALID_AMOUNT", "Transfer amount must be positive")
	}
	return nil
}

var (
	refMu   sync.Mutex
	refRand = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// NewReferenceNumber generates the identifier correlating the two legs of one
// transfer: a 16-digit numeric string built from the current time and a random
// suffix. Uniqueness is further enforced by the transaction table index.
func NewReferenceNumber() string {
	refMu.Lock()
	suffix := refRand.Intn(1000000)
	refMu.Unlock()
	return fmt.Sprintf("%010d%06d", time.Now().Unix(), suffix)
}
