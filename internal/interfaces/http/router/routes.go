package router

import (
	"time"

	"github.com/onuroner/pk-vkf/internal/interfaces/http/handler"
	"github.com/onuroner/pk-vkf/internal/interfaces/http/middleware"
)

// BankingHandlers bundles the handlers of the banking API
type BankingHandlers struct {
	MoneyTransfer *handler.MoneyTransferHandler
	Customer      *handler.CustomerHandler
	Account       *handler.AccountHandler
	Card          *handler.CardHandler
	Address       *handler.AddressHandler
}

// MoneyTransferRoutes builds the money transfer route group.
//
// Reference lookups come in two flavors: the plain endpoint answers from the
// in-process cache, the /shared variant from the distributed cache. The
// parameterized search endpoint marks responses cacheable for clients.
func MoneyTransferRoutes(h *handler.MoneyTransferHandler, responseMaxAge time.Duration) *DomainGroup {
	g := NewDomainGroup("money-transfer", "/money-transfers")
	g.POST("", h.Create)
	g.GET("/reference/:reference", h.GetByReference)
	g.GET("/reference/:reference/shared", h.GetByReferenceShared)
	g.GET("/account/:account_id", h.ListByAccount)
	g.GET("", middleware.CacheControl(responseMaxAge), h.Search)
	g.DELETE("/cache/:key", h.InvalidateCache)
	return g
}

// CustomerRoutes builds the customer route group
func CustomerRoutes(h *handler.CustomerHandler) *DomainGroup {
	g := NewDomainGroup("customer", "/customers")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.DELETE("/:id", h.Delete)
	return g
}

// AccountRoutes builds the account route group
func AccountRoutes(accounts *handler.AccountHandler, cards *handler.CardHandler) *DomainGroup {
	g := NewDomainGroup("account", "/accounts")
	g.POST("", accounts.Create)
	g.GET("/:id", accounts.GetByID)
	g.GET("/customer/:customer_id", accounts.ListByCustomer)
	g.GET("/:id/card", cards.GetByAccount)
	return g
}

// CardRoutes builds the card route group
func CardRoutes(h *handler.CardHandler) *DomainGroup {
	g := NewDomainGroup("card", "/cards")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.GET("/customer/:customer_id", h.ListByCustomer)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return g
}

// AddressRoutes builds the customer address route group
func AddressRoutes(h *handler.AddressHandler) *DomainGroup {
	g := NewDomainGroup("address", "/addresses")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.GET("/customer/:customer_id", h.ListByCustomer)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return g
}

// SystemRoutes builds the system route group
func SystemRoutes(h *handler.SystemHandler) *DomainGroup {
	g := NewDomainGroup("system", "/system")
	g.GET("/info", h.GetSystemInfo)
	g.GET("/ping", h.Ping)
	return g
}

// Setup wires all banking route groups into the router
func Setup(r *Router, handlers BankingHandlers, responseMaxAge time.Duration) {
	r.Register(MoneyTransferRoutes(handlers.MoneyTransfer, responseMaxAge)).
		Register(CustomerRoutes(handlers.Customer)).
		Register(AccountRoutes(handlers.Account, handlers.Card)).
		Register(CardRoutes(handlers.Card)).
		Register(AddressRoutes(handlers.Address)).
		Register(SystemRoutes(handler.NewSystemHandler()))
	r.Setup()
}
