//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/pkg/config"
	"facility-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(cfg))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestNewCORSMiddleware(t *testing.T) {
	base := config.CORSConfig{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	t.Run("listed origin gets credentials", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"http://localhost:3000"}

		w := httptest.Do(t, newCORSRouter(cfg), httptest.Request{
			Method:  http.MethodGet,
			Path:    "/ping",
			Headers: map[string]string{"Origin": "http://localhost:3000"},
		})

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"http://localhost:3000"}

		w := httptest.Do(t, newCORSRouter(cfg), httptest.Request{
			Method:  http.MethodGet,
			Path:    "/ping",
			Headers: map[string]string{"Origin": "http://evil.example"},
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("wildcard drops credentials", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"*"}

		w := httptest.Do(t, newCORSRouter(cfg), httptest.Request{
			Method:  http.MethodGet,
			Path:    "/ping",
			Headers: map[string]string{"Origin": "http://anywhere.example"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}
