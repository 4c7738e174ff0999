package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bankingapp "github.com/onuroner/pk-vkf/internal/application/banking"
	"github.com/onuroner/pk-vkf/internal/interfaces/http/dto"
)

// MoneyTransferHandler handles money transfer API endpoints
type MoneyTransferHandler struct {
	BaseHandler
	transferService *bankingapp.TransferService
	queryService    *bankingapp.TransactionQueryService
}

// NewMoneyTransferHandler creates a new MoneyTransferHandler
func NewMoneyTransferHandler(
	transferService *bankingapp.TransferService,
	queryService *bankingapp.TransactionQueryService,
) *MoneyTransferHandler {
	return &MoneyTransferHandler{
		transferService: transferService,
		queryService:    queryService,
	}
}

// Create executes a transfer between two accounts. The response carries both
// ledger legs under the shared reference number.
func (h *MoneyTransferHandler) Create(c *gin.Context) {
	var req bankingapp.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.transferService.Transfer(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// GetByReference returns both legs of a transfer, served through the
// in-process cache.
func (h *MoneyTransferHandler) GetByReference(c *gin.Context) {
	var uri dto.ReferenceRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	views, err := h.queryService.ByReferenceLocal(c.Request.Context(), uri.Reference)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, views)
}

// GetByReferenceShared returns both legs of a transfer, served through the
// distributed cache so replicas share one view.
func (h *MoneyTransferHandler) GetByReferenceShared(c *gin.Context) {
	var uri dto.ReferenceRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	views, err := h.queryService.ByReferenceDistributed(c.Request.Context(), uri.Reference)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, views)
}

// ListByAccount returns all ledger entries of one account, newest first
func (h *MoneyTransferHandler) ListByAccount(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("account_id"))
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	views, err := h.queryService.ByAccountID(c.Request.Context(), accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, views)
}

// Search returns ledger entries matching the supplied filter parameters.
// All filters are optional and combined with AND; amount bounds match
// either leg of an entry.
func (h *MoneyTransferHandler) Search(c *gin.Context) {
	var req bankingapp.QueryTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	views, err := h.queryService.ByCriteria(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, views)
}

// InvalidateCache evicts one cache key from both cache tiers
func (h *MoneyTransferHandler) InvalidateCache(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		h.BadRequest(c, "Cache key is required")
		return
	}

	if err := h.queryService.InvalidateCache(c.Request.Context(), key); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
