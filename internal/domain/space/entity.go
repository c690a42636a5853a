package space

import (
	"errors"
	"strings"
	"time"

	"facility-booking/internal/domain/activity"
	"facility-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("space name cannot be empty")
	ErrNameTooLong     = errors.New("space name is too long (max 255 characters)")
	ErrEmptyDesc       = errors.New("space description cannot be empty")
	ErrInvalidCapacity = errors.New("capacity must be greater than or equal to 1")
	ErrInactive        = errors.New("space is not active")
)

const MaxNameLength = 255

type Space struct {
	id          uuid.UUID
	name        string
	description string
	capacity    int32
	active      activity.Flag
	createdAt   time.Time
	updatedAt   time.Time
}

// Changes is a partial update. Nil fields keep their current value.
type Changes struct {
	Name        *string
	Description *string
	Capacity    *int32
}

func NewSpace(name, description string, capacity int32, now time.Time) (*Space, error) {
	name = strings.TrimSpace(name)
	if err := validate(name, description, capacity); err != nil {
		return nil, err
	}

	return &Space{
		id:          uuid.New(),
		name:        name,
		description: description,
		capacity:    capacity,
		active:      activity.Active,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructSpace(
	id uuid.UUID,
	name, description string,
	capacity int32,
	active activity.Flag,
	createdAt, updatedAt time.Time,
) *Space {
	return &Space{
		id:          id,
		name:        name,
		description: description,
		capacity:    capacity,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// EnsureActive fails with ErrInactive for retired spaces.
func (s *Space) EnsureActive() error {
	if !s.active.IsActive() {
		return ErrInactive
	}
	return nil
}

// Update applies c with the same rules as NewSpace. Nothing changes on error.
func (s *Space) Update(c Changes, now time.Time) error {
	name := strings.TrimSpace(patch.Coalesce(c.Name, s.name))
	description := patch.Coalesce(c.Description, s.description)
	capacity := patch.Coalesce(c.Capacity, s.capacity)
	if err := validate(name, description, capacity); err != nil {
		return err
	}

	s.name = name
	s.description = description
	s.capacity = capacity
	s.updatedAt = now
	return nil
}

func (s *Space) Deactivate(now time.Time) {
	s.active = activity.Inactive
	s.updatedAt = now
}

func validate(name, description string, capacity int32) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDesc
	}
	if capacity < 1 {
		return ErrInvalidCapacity
	}
	return nil
}

func (s *Space) ID() uuid.UUID         { return s.id }
func (s *Space) Name() string          { return s.name }
func (s *Space) Description() string   { return s.description }
func (s *Space) Capacity() int32       { return s.capacity }
func (s *Space) Active() activity.Flag { return s.active }
func (s *Space) CreatedAt() time.Time  { return s.createdAt }
func (s *Space) UpdatedAt() time.Time  { return s.updatedAt }
