//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"facility-booking/internal/domain/user"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/pkg/cookie"
	"facility-booking/tests/common/httptest"
	commandsmock "facility-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newGuardedRouter(t *testing.T) (*gin.Engine, *commandsmock.MockTokenValidator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	validator := commandsmock.NewMockTokenValidator(ctrl)
	auth := middleware.NewAuthMiddleware(validator)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/read", auth.RequireAuth(), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": id.String()})
	})
	router.POST("/write", auth.RequireAuth(), auth.RequireWriteRole(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router, validator
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	t.Run("missing token", func(t *testing.T) {
		router, _ := newGuardedRouter(t)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/read", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("invalid token", func(t *testing.T) {
		router, validator := newGuardedRouter(t)
		validator.EXPECT().ValidateToken("expired").Return(uuid.Nil, user.Role(""), errors.New("token is expired"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/read", nil, "expired")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("bearer token", func(t *testing.T) {
		router, validator := newGuardedRouter(t)
		validator.EXPECT().ValidateToken("good").Return(userID, user.RoleViewer, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/read", nil, "good")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["userId"])
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		router, validator := newGuardedRouter(t)
		validator.EXPECT().ValidateToken("from-cookie").Return(userID, user.RoleViewer, nil)

		rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/read", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "from-cookie"}}, "from-header")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireWriteRole(t *testing.T) {
	tests := []struct {
		role user.Role
		want int
	}{
		{role: user.RoleViewer, want: http.StatusForbidden},
		{role: user.RoleOperator, want: http.StatusNoContent},
		{role: user.RoleAdmin, want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			router, validator := newGuardedRouter(t)
			validator.EXPECT().ValidateToken("token").Return(uuid.New(), tt.role, nil)

			rec := httptest.PerformRequest(t, router, http.MethodPost, "/write", nil, "token")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
