package client

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"facility-booking/internal/domain/activity"
	"facility-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("client name cannot be empty")
	ErrInvalidCPF   = errors.New("CPF must be in the format 000.000.000-00")
	ErrInvalidEmail = errors.New("invalid email format")
	ErrEmptyPhone   = errors.New("client phone cannot be empty")
	ErrInactive     = errors.New("client is not active")
)

var (
	cpfRegex   = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

type CPF struct {
	value string
}

func NewCPF(s string) (CPF, error) {
	s = strings.TrimSpace(s)
	if !cpfRegex.MatchString(s) {
		return CPF{}, ErrInvalidCPF
	}
	return CPF{value: s}, nil
}

func (c CPF) String() string {
	return c.value
}

type Client struct {
	id          uuid.UUID
	name        string
	cpf         CPF
	email       string
	phone       string
	dateOfBirth time.Time
	active      activity.Flag
	createdAt   time.Time
	updatedAt   time.Time
}

type Profile struct {
	Name        string
	CPF         string
	Email       string
	Phone       string
	DateOfBirth time.Time
}

// ProfileChanges is a partial update. Nil fields keep their current value.
type ProfileChanges struct {
	Name        *string
	CPF         *string
	Email       *string
	Phone       *string
	DateOfBirth *time.Time
}

func NewClient(p Profile, now time.Time) (*Client, error) {
	c := &Client{
		id:        uuid.New(),
		active:    activity.Active,
		createdAt: now,
		updatedAt: now,
	}
	if err := c.setProfile(p); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructClient(
	id uuid.UUID,
	name string,
	cpf CPF,
	email, phone string,
	dateOfBirth time.Time,
	active activity.Flag,
	createdAt, updatedAt time.Time,
) *Client {
	return &Client{
		id:          id,
		name:        name,
		cpf:         cpf,
		email:       email,
		phone:       phone,
		dateOfBirth: dateOfBirth,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Client) EnsureActive() error {
	if !c.active.IsActive() {
		return ErrInactive
	}
	return nil
}

// UpdateProfile validates the merged profile like NewClient. Nothing changes on error.
func (c *Client) UpdateProfile(p ProfileChanges, now time.Time) error {
	merged := Profile{
		Name:        patch.Coalesce(p.Name, c.name),
		CPF:         patch.Coalesce(p.CPF, c.cpf.String()),
		Email:       patch.Coalesce(p.Email, c.email),
		Phone:       patch.Coalesce(p.Phone, c.phone),
		DateOfBirth: patch.Coalesce(p.DateOfBirth, c.dateOfBirth),
	}

	next := *c
	if err := next.setProfile(merged); err != nil {
		return err
	}
	next.updatedAt = now
	*c = next
	return nil
}

func (c *Client) setProfile(p Profile) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ErrEmptyName
	}
	cpf, err := NewCPF(p.CPF)
	if err != nil {
		return err
	}
	email := strings.TrimSpace(p.Email)
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	phone := strings.TrimSpace(p.Phone)
	if phone == "" {
		return ErrEmptyPhone
	}

	c.name = name
	c.cpf = cpf
	c.email = email
	c.phone = phone
	c.dateOfBirth = p.DateOfBirth
	return nil
}

func (c *Client) Deactivate(now time.Time) {
	c.active = activity.Inactive
	c.updatedAt = now
}

func (c *Client) ID() uuid.UUID          { return c.id }
func (c *Client) Name() string           { return c.name }
func (c *Client) CPF() CPF               { return c.cpf }
func (c *Client) Email() string          { return c.email }
func (c *Client) Phone() string          { return c.phone }
func (c *Client) DateOfBirth() time.Time { return c.dateOfBirth }
func (c *Client) Active() activity.Flag  { return c.active }
func (c *Client) CreatedAt() time.Time   { return c.createdAt }
func (c *Client) UpdatedAt() time.Time   { return c.updatedAt }
