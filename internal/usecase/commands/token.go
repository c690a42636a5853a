package commands

import (
	"facility-booking/internal/domain/user"
	"facility-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves an access token to the caller's identity.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	tokens TokenService
}

func NewTokenValidator(tokens TokenService) TokenValidator {
	return &tokenValidatorImpl{tokens: tokens}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.tokens.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, role, nil
}
