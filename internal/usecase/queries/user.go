package queries

import (
	"context"

	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrUserInactive    = errs.New("user inactive")
	ErrUserQueryFailed = errs.New("could not load user")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

// UserReadStore also serves login, which needs the stored password hash.
type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

// GetCurrentUser rejects inactive accounts even when their token is still valid.
func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.readStore.FindByID(ctx, userID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Classify(ErrUserNotFound, errs.ErrNotFound, err)
	case err != nil:
		return nil, errs.Classify(ErrUserQueryFailed, errs.ErrPersistence, err)
	}

	if !view.IsActive {
		return nil, errs.Mark(ErrUserInactive, errs.ErrValidation)
	}
	return view, nil
}
