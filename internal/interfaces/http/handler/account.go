package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bankingapp "github.com/onuroner/pk-vkf/internal/application/banking"
	"github.com/onuroner/pk-vkf/internal/interfaces/http/dto"
)

// AccountHandler handles account-related API endpoints
type AccountHandler struct {
	BaseHandler
	accountService *bankingapp.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *bankingapp.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Create opens a new account for an existing customer
func (h *AccountHandler) Create(c *gin.Context) {
	var req bankingapp.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.accountService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID returns a single account with its current balance
func (h *AccountHandler) GetByID(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.accountService.GetByID(c.Request.Context(), uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListByCustomer returns all accounts of one customer
func (h *AccountHandler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	resp, err := h.accountService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
