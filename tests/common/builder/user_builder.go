//go:build unit || e2e

package builder

import (
	"time"

	"facility-booking/internal/domain/user"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// UserBuilder keeps Role as a raw string so tests can feed invalid roles.
type UserBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Name:         "Test Operator",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         string(user.RoleAdmin),
		IsActive:     true,
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) AsInactive() *UserBuilder {
	b.IsActive = false
	return b
}

// BuildDomain goes through the validating constructors, so it can fail.
func (b *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(b.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(b.Name, email, b.PasswordHash, role), nil
}

func (b *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
		Role:         b.Role,
		IsActive:     b.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       b.ID,
		Name:     b.Name,
		Email:    b.Email,
		Role:     b.Role,
		IsActive: b.IsActive,
	}
}
