//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"facility-booking/internal/domain/user"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens with the same secret as the app under test.
type JWTHelper struct {
	secret  string
	access  time.Duration
	refresh time.Duration
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	svc, err := jwt.NewServiceFromConfig(cfg)
	if err != nil {
		panic("authtest: " + err.Error())
	}
	return &JWTHelper{secret: cfg.Secret, access: svc.AccessTokenDuration(), refresh: svc.RefreshTokenDuration()}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()

	token, err := jwt.NewService(h.secret, h.access, h.refresh).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken returns an access token that is already past its expiry.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()

	token, err := jwt.NewService(h.secret, time.Millisecond, h.refresh).GenerateAccessToken(userID, role)
	require.NoError(t, err)

	// jwt/v5 compares expiry at second precision
	time.Sleep(1100 * time.Millisecond)
	return token
}
