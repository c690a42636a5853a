package commands

import (
	"context"
	"log/slog"

	"facility-booking/internal/domain/auth"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/jwt"
	"facility-booking/internal/pkg/password"
	"facility-booking/internal/usecase/queries"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

// TokenService issues and validates the access/refresh pair.
type TokenService interface {
	GenerateAccessToken(userID uuid.UUID, role user.Role) (string, error)
	GenerateRefreshToken(userID uuid.UUID, role user.Role) (string, error)
	ValidateToken(token string) (*jwt.Claims, error)
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	tokens    TokenService
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, tokens TokenService) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		tokens:    tokens,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.Mark(ErrInvalidCredentials, ErrAuthenticationFailed)
	}

	account, err := a.authenticate(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.issuePair(account.ID, role)
	if err != nil {
		return nil, err
	}

	a.recordLogin(ctx, account.ID)

	return &LoginResult{
		UserID:    account.ID,
		Role:      role,
		TokenPair: pair,
	}, nil
}

// RefreshToken rotates both tokens. The account is looked up again so a
// deactivated user cannot keep refreshing.
func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	account, err := a.readStore.FindByID(ctx, claims.UserID)
	switch {
	case err != nil, account == nil:
		return nil, ErrUserNotFound
	case !account.IsActive:
		return nil, ErrUserInactive
	}

	return a.issuePair(claims.UserID, role)
}

// authenticate reports an unknown email the same way as a wrong password.
func (a *authCommandsImpl) authenticate(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	account, hash, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	switch {
	case err != nil:
		return nil, ErrInvalidCredentials
	case account == nil:
		return nil, ErrUserNotFound
	case !account.IsActive:
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

func (a *authCommandsImpl) issuePair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	access, err := a.tokens.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refresh, err := a.tokens.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// recordLogin is best effort: tokens are already issued when it runs.
func (a *authCommandsImpl) recordLogin(ctx context.Context, userID uuid.UUID) {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), userID)
	})
	if err != nil {
		slog.Warn("failed to update last login", "user_id", userID, "error", err.Error())
	}
}
