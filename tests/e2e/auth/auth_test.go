//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"facility-booking/internal/domain/user"
	"facility-booking/internal/handler/dto/request"
	"facility-booking/internal/handler/dto/response"
	"facility-booking/tests/common/authtest"
	"facility-booking/tests/common/dbtest"
	"facility-booking/tests/common/httptest"
	"facility-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "viewer@example.com", string(user.RoleViewer))
	dbtest.CreateTestUser(s.T(), s.DB, "operator@example.com", string(user.RoleOperator))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleAdmin))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "test@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nonexistent@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "test@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: dbtest.DefaultPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "test@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var res response.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.NotEmpty(t, res.AccessToken)
			require.NotEmpty(t, res.RefreshToken)
			require.NotNil(t, res.User)
			require.Equal(t, tt.email, res.User.Email)
			require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
			require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))

			var lastLoginSet bool
			err := s.DB.QueryRow(t.Context(), "SELECT last_login IS NOT NULL FROM users WHERE email = $1", tt.email).Scan(&lastLoginSet)
			require.NoError(t, err)
			require.True(t, lastLoginSet, "last_login was not recorded")
		})
	}
}

func (s *authSuite) TestRefresh() {
	login := func() *response.LoginResponse {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: dbtest.DefaultPassword}, "")
		var res response.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		return &res
	}

	s.Run("refresh token in body", func() {
		t := s.T()
		res := login()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: res.RefreshToken}, "")

		var tokens response.TokenResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &tokens)
		require.NotEmpty(t, tokens.AccessToken)
		require.NotEmpty(t, tokens.RefreshToken)
	})

	s.Run("access token is not accepted as refresh token", func() {
		t := s.T()
		res := login()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: res.AccessToken}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired refresh token")
	})

	s.Run("invalid refresh token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired refresh token")
	})

	s.Run("missing refresh token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Refresh token required")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("valid token clears cookies", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "test@example.com", dbtest.DefaultPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		cleared := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
	})

	s.Run("invalid token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "invalid-token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name  string
		email string
		role  user.Role
	}{
		{name: "admin", email: "admin2@example.com", role: user.RoleAdmin},
		{name: "viewer", email: "viewer2@example.com", role: user.RoleViewer},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			token := authtest.CreateAndLogin(t, s.DB, s.Router, tt.email, string(tt.role))

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			body := w.Body.String()
			require.Contains(t, body, tt.email)
			require.Contains(t, body, string(tt.role))
			require.NotContains(t, body, "password")
		})
	}

	s.Run("expired token", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleAdmin))
		expired := s.jwt.CreateExpiredToken(t, userID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("token for a deactivated user", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "later-inactive@example.com", string(user.RoleViewer))
		token := s.jwt.GenerateToken(t, userID, user.RoleViewer)

		_, err := s.DB.Exec(t.Context(), "UPDATE users SET is_active = false WHERE id = $1", userID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("two sessions stay valid", func() {
		t := s.T()

		token1 := authtest.LoginUser(t, s.Router, "operator@example.com", dbtest.DefaultPassword)
		token2 := authtest.LoginUser(t, s.Router, "operator@example.com", dbtest.DefaultPassword)
		require.NotEqual(t, token1, token2)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)
		require.Equal(t, http.StatusOK, w1.Code)
		require.Equal(t, http.StatusOK, w2.Code)
	})
}
