package banking

import (
	"context"

	"github.com/onuroner/pk-vkf/internal/domain/banking"
	"go.uber.org/zap"
)

// TransferService handles money transfer commands.
// The executor applies the transfer atomically; this service validates input,
// shapes the result and logs the outcome.
type TransferService struct {
	executor banking.TransferExecutor
	logger   *zap.Logger
}

// NewTransferService creates a new TransferService
func NewTransferService(executor banking.TransferExecutor, logger *zap.Logger) *TransferService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransferService{
		executor: executor,
		logger:   logger,
	}
}

// Transfer moves the requested amount between two accounts and returns the
// two ledger legs the transfer produced
func (s *TransferService) Transfer(ctx context.Context, req CreateTransferRequest) (*TransferResult, error) {
	request := banking.TransferRequest{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		Description:   req.Description,
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}

	legs, err := s.executor.Execute(ctx, request)
	if err != nil {
		s.logger.Warn("Transfer failed",
			zap.String("from_account_id", req.FromAccountID.String()),
			zap.String("to_account_id", req.ToAccountID.String()),
			zap.String("amount", req.Amount.String()),
			zap.Error(err))
		return nil, err
	}

	result := &TransferResult{
		ReferenceNumber: legs[0].ReferenceNumber,
		Transactions:    NewTransactionViews(legs),
	}

	s.logger.Info("Transfer completed",
		zap.String("reference_number", result.ReferenceNumber),
		zap.String("from_account_id", req.FromAccountID.String()),
		zap.String("to_account_id", req.ToAccountID.String()),
		zap.String("amount", req.Amount.String()))

	return result, nil
}
