package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	bankingapp "github.com/onuroner/pk-vkf/internal/application/banking"
	"github.com/onuroner/pk-vkf/internal/domain/banking"
	"github.com/onuroner/pk-vkf/internal/domain/shared"
)

func newCustomerRouter(repo *MockCustomerRepository) *gin.Engine {
	h := NewCustomerHandler(bankingapp.NewCustomerService(repo))

	router := gin.New()
	router.POST("/customers", h.Create)
	router.GET("/customers", h.List)
	router.GET("/customers/:id", h.GetByID)
	router.DELETE("/customers/:id", h.Delete)
	return router
}

func TestCustomerHandler_Create(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*banking.Customer")).Return(nil)
	router := newCustomerRouter(repo)

	body := `{"customer_number":"CUST-001","first_name":"Ada","last_name":"Lovelace","identity_number":"12345678901","email":"ada@example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "CUST-001")
	repo.AssertExpectations(t)
}

func TestCustomerHandler_Create_MissingFields(t *testing.T) {
	router := newCustomerRouter(new(MockCustomerRepository))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(`{"first_name":"Ada"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerHandler_GetByID_NotFound(t *testing.T) {
	repo := new(MockCustomerRepository)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)
	router := newCustomerRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customers/"+id.String(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerHandler_GetByID_InvalidID(t *testing.T) {
	router := newCustomerRouter(new(MockCustomerRepository))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customers/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerHandler_List(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("FindAll", mock.Anything).Return([]*banking.Customer{}, nil)
	router := newCustomerRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customers", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCustomerHandler_Delete(t *testing.T) {
	repo := new(MockCustomerRepository)
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil)
	router := newCustomerRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/customers/"+id.String(), nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	repo.AssertExpectations(t)
}
