package response

import (
	"time"

	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SpaceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Capacity    int32     `json:"capacity"`
	IsActive    int16     `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ResourceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int32     `json:"quantity"`
	IsActive    int16     `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ClientResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	CPF         string     `json:"cpf"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	IsActive    int16      `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// FromView copies a catalog view into its response shape field by field.
func FromView[R any, V any](v *V) (*R, error) {
	var res R
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromViewPage[R any, V any](p *queries.Page[*V]) (PageResponse[*R], error) {
	data := make([]*R, len(p.Data))
	for i, v := range p.Data {
		r, err := FromView[R](v)
		if err != nil {
			return PageResponse[*R]{}, err
		}
		data[i] = r
	}
	return PageResponse[*R]{Data: data, Meta: p.Meta}, nil
}
