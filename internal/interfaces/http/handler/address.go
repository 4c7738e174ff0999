package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bankingapp "github.com/onuroner/pk-vkf/internal/application/banking"
	"github.com/onuroner/pk-vkf/internal/interfaces/http/dto"
)

// AddressHandler handles customer address API endpoints
type AddressHandler struct {
	BaseHandler
	addressService *bankingapp.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addressService *bankingapp.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// Create registers an address for an existing customer
func (h *AddressHandler) Create(c *gin.Context) {
	var req bankingapp.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.addressService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Update changes an existing address
func (h *AddressHandler) Update(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req bankingapp.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.addressService.Update(c.Request.Context(), uuid.MustParse(uri.ID), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetByID returns a single address
func (h *AddressHandler) GetByID(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.addressService.GetByID(c.Request.Context(), uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListByCustomer returns all addresses registered for one customer
func (h *AddressHandler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	resp, err := h.addressService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns all addresses
func (h *AddressHandler) List(c *gin.Context) {
	resp, err := h.addressService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes an address
func (h *AddressHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.addressService.Delete(c.Request.Context(), uuid.MustParse(uri.ID)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
