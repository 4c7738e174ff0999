package banking

import (
	"context"

	"github.com/google/uuid"
	"github.com/onuroner/pk-vkf/internal/domain/banking"
	"go.uber.org/zap"
)

// TransactionQueryService answers read queries over the transfer ledger.
// Reference lookups run cache-aside against one of two independent tiers:
// the local in-process tier or the shared Redis tier. The two paths never
// populate each other; invalidation clears both. Cache failures degrade to
// a repository read and are logged, never surfaced to the caller.
type TransactionQueryService struct {
	repo        banking.AccountTransactionRepository
	local       banking.TransactionCache
	distributed banking.TransactionCache
	logger      *zap.Logger
}

// NewTransactionQueryService creates a new TransactionQueryService
func NewTransactionQueryService(
	repo banking.AccountTransactionRepository,
	local banking.TransactionCache,
	distributed banking.TransactionCache,
	logger *zap.Logger,
) *TransactionQueryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransactionQueryService{
		repo:        repo,
		local:       local,
		distributed: distributed,
		logger:      logger,
	}
}

// ByReferenceLocal finds both legs of a transfer through the local cache tier
func (s *TransactionQueryService) ByReferenceLocal(ctx context.Context, referenceNumber string) ([]TransactionView, error) {
	return s.byReferenceCached(ctx, referenceNumber, s.local, "local")
}

// ByReferenceDistributed finds both legs of a transfer through the Redis tier
func (s *TransactionQueryService) ByReferenceDistributed(ctx context.Context, referenceNumber string) ([]TransactionView, error) {
	return s.byReferenceCached(ctx, referenceNumber, s.distributed, "distributed")
}

func (s *TransactionQueryService) byReferenceCached(ctx context.Context, referenceNumber string, tier banking.TransactionCache, tierName string) ([]TransactionView, error) {
	cached, found, err := tier.Get(ctx, referenceNumber)
	if err != nil {
		s.logger.Warn("Cache read failed, falling back to repository",
			zap.String("tier", tierName),
			zap.String("reference_number", referenceNumber),
			zap.Error(err))
	}
	if found {
		return NewTransactionViews(cached), nil
	}

	transactions, err := s.repo.FindByReference(ctx, referenceNumber)
	if err != nil {
		return nil, err
	}

	// Empty result sets are never cached; an unknown reference stays a miss
	if len(transactions) > 0 {
		if err := tier.Set(ctx, referenceNumber, transactions); err != nil {
			s.logger.Warn("Cache write failed",
				zap.String("tier", tierName),
				zap.String("reference_number", referenceNumber),
				zap.Error(err))
		}
	}

	return NewTransactionViews(transactions), nil
}

// ByAccountID lists the full ledger of one account
func (s *TransactionQueryService) ByAccountID(ctx context.Context, accountID uuid.UUID) ([]TransactionView, error) {
	transactions, err := s.repo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return NewTransactionViews(transactions), nil
}

// ByCriteria lists transactions matching the conjunction of the present filters
func (s *TransactionQueryService) ByCriteria(ctx context.Context, req QueryTransactionsRequest) ([]TransactionView, error) {
	criteria, err := req.ToCriteria()
	if err != nil {
		return nil, err
	}

	transactions, err := s.repo.FindByCriteria(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return NewTransactionViews(transactions), nil
}

// InvalidateCache removes the key from both cache tiers. Unknown keys are a
// no-op; a failure in one tier does not stop eviction from the other.
func (s *TransactionQueryService) InvalidateCache(ctx context.Context, key string) error {
	var firstErr error
	if err := s.local.Remove(ctx, key); err != nil {
		s.logger.Warn("Local cache eviction failed", zap.String("key", key), zap.Error(err))
		firstErr = err
	}
	if err := s.distributed.Remove(ctx, key); err != nil {
		s.logger.Warn("Distributed cache eviction failed", zap.String("key", key), zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
