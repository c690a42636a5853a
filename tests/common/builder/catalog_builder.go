//go:build unit || e2e

package builder

import (
	"time"

	"facility-booking/internal/domain/activity"
	"facility-booking/internal/domain/client"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/domain/space"
	reqdto "facility-booking/internal/handler/dto/request"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SpaceBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	Capacity    int32
	Active      activity.Flag
	CreatedAt   time.Time
}

func NewSpaceBuilder() *SpaceBuilder {
	return &SpaceBuilder{
		ID:          uuid.New(),
		Name:        "Auditorium",
		Description: "Main auditorium",
		Capacity:    120,
		Active:      activity.Active,
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *SpaceBuilder) With(mutate func(*SpaceBuilder)) *SpaceBuilder {
	mutate(b)
	return b
}

func (b *SpaceBuilder) AsInactive() *SpaceBuilder {
	b.Active = activity.Inactive
	return b
}

func (b *SpaceBuilder) BuildDomain() *space.Space {
	return space.ReconstructSpace(b.ID, b.Name, b.Description, b.Capacity, b.Active, b.CreatedAt, b.CreatedAt)
}

func (b *SpaceBuilder) BuildInfra() sqlc.Spaces {
	return sqlc.Spaces{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Capacity:    b.Capacity,
		IsActive:    b.Active.Int16(),
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *SpaceBuilder) BuildView() *queries.SpaceView {
	return &queries.SpaceView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Capacity:    b.Capacity,
		IsActive:    b.Active.Int16(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *SpaceBuilder) BuildCreateRequestDTO() reqdto.CreateSpaceRequest {
	return reqdto.CreateSpaceRequest{
		Name:        b.Name,
		Description: b.Description,
		Capacity:    b.Capacity,
	}
}

type ResourceBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	Quantity    int32
	Active      activity.Flag
	CreatedAt   time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:          uuid.New(),
		Name:        "Projector",
		Description: "Full HD projector",
		Quantity:    3,
		Active:      activity.Active,
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(b)
	return b
}

func (b *ResourceBuilder) WithQuantity(q int32) *ResourceBuilder {
	b.Quantity = q
	return b
}

func (b *ResourceBuilder) AsInactive() *ResourceBuilder {
	b.Active = activity.Inactive
	return b
}

func (b *ResourceBuilder) BuildDomain() *resource.Resource {
	return resource.ReconstructResource(b.ID, b.Name, b.Description, b.Quantity, b.Active, b.CreatedAt, b.CreatedAt)
}

func (b *ResourceBuilder) BuildInfra() sqlc.Resources {
	return sqlc.Resources{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Quantity:    b.Quantity,
		IsActive:    b.Active.Int16(),
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ResourceBuilder) BuildView() *queries.ResourceView {
	return &queries.ResourceView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Quantity:    b.Quantity,
		IsActive:    b.Active.Int16(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

type ClientBuilder struct {
	ID          uuid.UUID
	Name        string
	CPF         string
	Email       string
	Phone       string
	DateOfBirth time.Time
	Active      activity.Flag
	CreatedAt   time.Time
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		ID:          uuid.New(),
		Name:        "Maria Souza",
		CPF:         "123.456.789-00",
		Email:       "maria@example.com",
		Phone:       "+55 11 99999-0000",
		DateOfBirth: time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
		Active:      activity.Active,
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(b)
	return b
}

func (b *ClientBuilder) WithCPF(cpf string) *ClientBuilder {
	b.CPF = cpf
	return b
}

func (b *ClientBuilder) AsInactive() *ClientBuilder {
	b.Active = activity.Inactive
	return b
}

// BuildDomain panics on an invalid CPF, which only a broken test sets up.
func (b *ClientBuilder) BuildDomain() *client.Client {
	cpf, err := client.NewCPF(b.CPF)
	if err != nil {
		panic(err)
	}
	return client.ReconstructClient(b.ID, b.Name, cpf, b.Email, b.Phone, b.DateOfBirth, b.Active, b.CreatedAt, b.CreatedAt)
}

func (b *ClientBuilder) BuildInfra() sqlc.Clients {
	return sqlc.Clients{
		ID:          b.ID,
		Name:        b.Name,
		Cpf:         b.CPF,
		Email:       b.Email,
		Phone:       b.Phone,
		DateOfBirth: pgtype.Date{Time: b.DateOfBirth, Valid: !b.DateOfBirth.IsZero()},
		IsActive:    b.Active.Int16(),
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ClientBuilder) BuildView() *queries.ClientView {
	dob := b.DateOfBirth
	return &queries.ClientView{
		ID:          b.ID,
		Name:        b.Name,
		CPF:         b.CPF,
		Email:       b.Email,
		Phone:       b.Phone,
		DateOfBirth: &dob,
		IsActive:    b.Active.Int16(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *ClientBuilder) BuildCreateRequestDTO() reqdto.CreateClientRequest {
	return reqdto.CreateClientRequest{
		Name:        b.Name,
		CPF:         b.CPF,
		Email:       b.Email,
		Phone:       b.Phone,
		DateOfBirth: b.DateOfBirth.Format("2006-01-02"),
	}
}
