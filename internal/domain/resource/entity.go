package resource

import (
	"errors"
	"strings"
	"time"

	"facility-booking/internal/domain/activity"
	"facility-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrInvalidQuantity     = errors.New("quantity must be greater than or equal to 1")
	ErrInactive            = errors.New("resource is not active")
	ErrUnavailable         = errors.New("resource is not available")
)

const (
	MaxResourceNameLength = 255
)

type Resource struct {
	id          uuid.UUID
	name        string
	description string
	quantity    int32
	active      activity.Flag
	createdAt   time.Time
	updatedAt   time.Time
}

// Changes is a partial update. Quantity is taken as given, so a negative value
// marks the resource unavailable.
type Changes struct {
	Name        *string
	Description *string
	Quantity    *int32
}

func NewResource(name, description string, quantity int32, now time.Time) (*Resource, error) {
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	return &Resource{
		id:          uuid.New(),
		name:        strings.TrimSpace(name),
		description: description,
		quantity:    quantity,
		active:      activity.Active,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructResource(
	id uuid.UUID,
	name, description string,
	quantity int32,
	active activity.Flag,
	createdAt, updatedAt time.Time,
) *Resource {
	return &Resource{
		id:          id,
		name:        name,
		description: description,
		quantity:    quantity,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Resource) EnsureActive() error {
	if !r.active.IsActive() {
		return ErrInactive
	}
	return nil
}

// EnsureAvailable rejects a negative stock, which marks the resource as unavailable.
// Zero stock is still bookable.
func (r *Resource) EnsureAvailable() error {
	if r.quantity < 0 {
		return ErrUnavailable
	}
	return nil
}

// Allocate takes one unit for a new reservation. A positive stock is decremented
// and true is returned; zero stock is left untouched.
func (r *Resource) Allocate(now time.Time) (bool, error) {
	if err := r.EnsureAvailable(); err != nil {
		return false, err
	}
	if r.quantity == 0 {
		return false, nil
	}
	r.quantity--
	r.updatedAt = now
	return true, nil
}

// Release returns one unit to stock.
func (r *Resource) Release(now time.Time) {
	r.quantity++
	r.updatedAt = now
}

// Update applies c. It reports whether the stock changed, which is persisted
// separately from the descriptive fields.
func (r *Resource) Update(c Changes, now time.Time) (bool, error) {
	name := patch.Coalesce(c.Name, r.name)
	if err := validateResourceName(name); err != nil {
		return false, err
	}

	restocked := c.Quantity != nil && *c.Quantity != r.quantity
	r.name = strings.TrimSpace(name)
	r.description = patch.Coalesce(c.Description, r.description)
	r.quantity = patch.Coalesce(c.Quantity, r.quantity)
	r.updatedAt = now
	return restocked, nil
}

func (r *Resource) Deactivate(now time.Time) {
	r.active = activity.Inactive
	r.updatedAt = now
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() uuid.UUID         { return r.id }
func (r *Resource) Name() string          { return r.name }
func (r *Resource) Description() string   { return r.description }
func (r *Resource) Quantity() int32       { return r.quantity }
func (r *Resource) Active() activity.Flag { return r.active }
func (r *Resource) CreatedAt() time.Time  { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time  { return r.updatedAt }
