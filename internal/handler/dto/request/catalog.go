package request

import (
	"errors"
	"strings"
	"time"

	"facility-booking/internal/domain/activity"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidSpaceID     = errors.New("spaceId must be a valid UUID")
	ErrInvalidDateOfBirth = errors.New("dateOfBirth must use the YYYY-MM-DD format")
)

type CreateSpaceRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	Capacity    int32  `json:"capacity" binding:"required"`
}

func (r CreateSpaceRequest) ToInput() commands.CreateSpaceInput {
	return commands.CreateSpaceInput{
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
	}
}

type CreateResourceRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	Quantity    int32  `json:"quantity" binding:"required"`
}

func (r CreateResourceRequest) ToInput() commands.CreateResourceInput {
	return commands.CreateResourceInput{
		Name:        r.Name,
		Description: r.Description,
		Quantity:    r.Quantity,
	}
}

type CreateClientRequest struct {
	Name        string `json:"name" binding:"required"`
	CPF         string `json:"cpf" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	DateOfBirth string `json:"dateOfBirth"`
}

func (r CreateClientRequest) ToInput() (commands.CreateClientInput, error) {
	in := commands.CreateClientInput{
		Name:  r.Name,
		CPF:   r.CPF,
		Email: r.Email,
		Phone: r.Phone,
	}
	if r.DateOfBirth != "" {
		dob, err := time.Parse(dateLayout, r.DateOfBirth)
		if err != nil {
			return commands.CreateClientInput{}, ErrInvalidDateOfBirth
		}
		in.DateOfBirth = dob
	}
	return in, nil
}

type UpdateSpaceRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	Capacity    *int32  `json:"capacity"`
}

func (r UpdateSpaceRequest) ToInput() commands.UpdateSpaceInput {
	return commands.UpdateSpaceInput{
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
	}
}

// UpdateResourceRequest accepts a negative quantity, which takes the resource
// out of booking.
type UpdateResourceRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	Quantity    *int32  `json:"quantity"`
}

func (r UpdateResourceRequest) ToInput() commands.UpdateResourceInput {
	return commands.UpdateResourceInput{
		Name:        r.Name,
		Description: r.Description,
		Quantity:    r.Quantity,
	}
}

type UpdateClientRequest struct {
	Name        *string `json:"name"`
	CPF         *string `json:"cpf"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"dateOfBirth"`
}

func (r UpdateClientRequest) ToInput() (commands.UpdateClientInput, error) {
	in := commands.UpdateClientInput{
		Name:  r.Name,
		CPF:   r.CPF,
		Email: r.Email,
		Phone: r.Phone,
	}
	if r.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *r.DateOfBirth)
		if err != nil {
			return commands.UpdateClientInput{}, ErrInvalidDateOfBirth
		}
		in.DateOfBirth = &dob
	}
	return in, nil
}

type ListCatalogQuery struct {
	Page   *int32  `form:"page"`
	Limit  *int32  `form:"limit"`
	Name   *string `form:"name"`
	Active *bool   `form:"active"`
}

func (q ListCatalogQuery) ToFilter(limits queries.PageLimits) (queries.CatalogFilter, error) {
	page, err := queries.NewPageRequest(q.Page, q.Limit, limits)
	if err != nil {
		return queries.CatalogFilter{}, err
	}

	filter := queries.CatalogFilter{Page: page}
	if q.Name != nil && strings.TrimSpace(*q.Name) != "" {
		name := strings.TrimSpace(*q.Name)
		filter.Name = &name
	}
	if q.Active != nil {
		flag := activity.FromBool(*q.Active)
		filter.Active = &flag
	}
	return filter, nil
}
