package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCacheControl_SetOnGet(t *testing.T) {
	router := gin.New()
	router.Use(CacheControl(100 * time.Second))
	router.GET("/transactions", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/transactions", nil))

	assert.Equal(t, "public, max-age=100", w.Header().Get("Cache-Control"))
}

func TestCacheControl_SkippedOnPost(t *testing.T) {
	router := gin.New()
	router.Use(CacheControl(100 * time.Second))
	router.POST("/transactions", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/transactions", nil))

	assert.Empty(t, w.Header().Get("Cache-Control"))
}

func TestNoStore(t *testing.T) {
	router := gin.New()
	router.Use(NoStore())
	router.GET("/transactions", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/transactions", nil))

	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}
