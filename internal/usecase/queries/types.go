package queries

import (
	"time"

	"github.com/google/uuid"
)

// Summary is the {id, name} projection embedded in reservation views.
type Summary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ClientSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	CPF  string    `json:"cpf"`
}

// ReservationView is the denormalized reservation returned by every engine operation
type ReservationView struct {
	ID        uuid.UUID     `json:"id"`
	Client    ClientSummary `json:"client"`
	Space     Summary       `json:"space"`
	Resource  Summary       `json:"resource"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Status    string        `json:"status"`
	ClosedAt  *time.Time    `json:"closed_at,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type SpaceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Capacity    int32     `json:"capacity"`
	IsActive    int16     `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ResourceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int32     `json:"quantity"`
	IsActive    int16     `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ClientView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	CPF         string     `json:"cpf"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	IsActive    int16      `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
