//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"facility-booking/internal/handler/dto/request"
	"facility-booking/internal/handler/dto/response"
	"facility-booking/internal/pkg/cookie"
	"facility-booking/tests/common/dbtest"
	"facility-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const loginPath = "/api/auth/login"

// Session holds what a successful login hands back.
type Session struct {
	AccessToken  string
	RefreshToken string
	Cookies      []*http.Cookie
}

func Login(t *testing.T, router *gin.Engine, email, password string) Session {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginPath,
		request.LoginRequest{Email: email, Password: password}, "")

	var res response.LoginResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.Equal(t, http.StatusOK, w.Code)

	access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, access, "login did not set the access token cookie")
	require.Equal(t, res.AccessToken, access.Value)

	return Session{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		Cookies:      w.Result().Cookies(),
	}
}

// LoginUser returns only the access token.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	return Login(t, router, email, password).AccessToken
}

// CreateAndLogin inserts the user with the fixture password and logs in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.DefaultPassword)
}
