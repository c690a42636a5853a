package commands

import (
	"context"
	"time"

	"facility-booking/internal/domain/client"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/domain/space"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/queries"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSpaceNameTaken    = errs.New("a space with this name already exists")
	ErrResourceNameTaken = errs.New("a resource with this name already exists")
	ErrClientCPFTaken    = errs.New("a client with this cpf already exists")

	ErrSaveCatalogFailed = errs.New("could not save catalog entry")
)

type CreateSpaceInput struct {
	Name        string
	Description string
	Capacity    int32
}

type CreateResourceInput struct {
	Name        string
	Description string
	Quantity    int32
}

type CreateClientInput struct {
	Name        string
	CPF         string
	Email       string
	Phone       string
	DateOfBirth time.Time
}

// The update inputs are partial. Nil fields are left unchanged.
type UpdateSpaceInput struct {
	Name        *string
	Description *string
	Capacity    *int32
}

// UpdateResourceInput.Quantity replaces the stock as given. A negative value
// marks the resource unavailable for new bookings.
type UpdateResourceInput struct {
	Name        *string
	Description *string
	Quantity    *int32
}

type UpdateClientInput struct {
	Name        *string
	CPF         *string
	Email       *string
	Phone       *string
	DateOfBirth *time.Time
}

type CatalogCommands interface {
	CreateSpace(ctx context.Context, in CreateSpaceInput) (*queries.SpaceView, error)
	UpdateSpace(ctx context.Context, id uuid.UUID, in UpdateSpaceInput) (*queries.SpaceView, error)
	DeactivateSpace(ctx context.Context, id uuid.UUID) error
	CreateResource(ctx context.Context, in CreateResourceInput) (*queries.ResourceView, error)
	UpdateResource(ctx context.Context, id uuid.UUID, in UpdateResourceInput) (*queries.ResourceView, error)
	DeactivateResource(ctx context.Context, id uuid.UUID) error
	CreateClient(ctx context.Context, in CreateClientInput) (*queries.ClientView, error)
	UpdateClient(ctx context.Context, id uuid.UUID, in UpdateClientInput) (*queries.ClientView, error)
	DeactivateClient(ctx context.Context, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, clock clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (c *catalogCommandsImpl) CreateSpace(ctx context.Context, in CreateSpaceInput) (*queries.SpaceView, error) {
	sp, err := space.NewSpace(in.Name, in.Description, in.Capacity, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Spaces().Create(ctx, tx.DB(), sp)
	})
	if err != nil {
		return nil, saveFailure(err, ErrSpaceNameTaken)
	}

	return toSpaceView(sp), nil
}

func (c *catalogCommandsImpl) UpdateSpace(ctx context.Context, id uuid.UUID, in UpdateSpaceInput) (*queries.SpaceView, error) {
	var sp *space.Space

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		sp, err = tx.Spaces().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return lookupFailure(err, queries.ErrSpaceNotFound, ErrSaveCatalogFailed)
		}

		changes := space.Changes{Name: in.Name, Description: in.Description, Capacity: in.Capacity}
		if err := sp.Update(changes, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}

		if err := tx.Spaces().Update(ctx, tx.DB(), sp); err != nil {
			return saveFailure(err, ErrSpaceNameTaken)
		}
		return nil
	})
	if err != nil {
		return nil, txFailure(err, ErrSaveCatalogFailed)
	}

	return toSpaceView(sp), nil
}

func (c *catalogCommandsImpl) DeactivateSpace(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sp, err := tx.Spaces().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return lookupFailure(err, queries.ErrSpaceNotFound, ErrSaveCatalogFailed)
		}

		sp.Deactivate(c.clock.Now())
		if err := tx.Spaces().UpdateActive(ctx, tx.DB(), sp); err != nil {
			return persistenceFailure(err, ErrSaveCatalogFailed)
		}
		return nil
	})
}

func (c *catalogCommandsImpl) CreateResource(ctx context.Context, in CreateResourceInput) (*queries.ResourceView, error) {
	rs, err := resource.NewResource(in.Name, in.Description, in.Quantity, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Resources().Create(ctx, tx.DB(), rs)
	})
	if err != nil {
		return nil, saveFailure(err, ErrResourceNameTaken)
	}

	return toResourceView(rs), nil
}

// UpdateResource locks the row, since bookings change the same stock.
func (c *catalogCommandsImpl) UpdateResource(ctx context.Context, id uuid.UUID, in UpdateResourceInput) (*queries.ResourceView, error) {
	var rs *resource.Resource

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		rs, err = tx.Resources().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return lookupFailure(err, queries.ErrResourceNotFound, ErrSaveCatalogFailed)
		}

		changes := resource.Changes{Name: in.Name, Description: in.Description, Quantity: in.Quantity}
		restocked, err := rs.Update(changes, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}

		if err := tx.Resources().Update(ctx, tx.DB(), rs); err != nil {
			return saveFailure(err, ErrResourceNameTaken)
		}
		if restocked {
			if err := tx.Resources().UpdateQuantity(ctx, tx.DB(), rs); err != nil {
				return persistenceFailure(err, ErrSaveCatalogFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, txFailure(err, ErrSaveCatalogFailed)
	}

	return toResourceView(rs), nil
}

func (c *catalogCommandsImpl) DeactivateResource(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rs, err := tx.Resources().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return lookupFailure(err, queries.ErrResourceNotFound, ErrSaveCatalogFailed)
		}

		rs.Deactivate(c.clock.Now())
		if err := tx.Resources().UpdateActive(ctx, tx.DB(), rs); err != nil {
			return persistenceFailure(err, ErrSaveCatalogFailed)
		}
		return nil
	})
}

func (c *catalogCommandsImpl) CreateClient(ctx context.Context, in CreateClientInput) (*queries.ClientView, error) {
	cl, err := client.NewClient(client.Profile{
		Name:        in.Name,
		CPF:         in.CPF,
		Email:       in.Email,
		Phone:       in.Phone,
		DateOfBirth: in.DateOfBirth,
	}, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Clients().Create(ctx, tx.DB(), cl)
	})
	if err != nil {
		return nil, saveFailure(err, ErrClientCPFTaken)
	}

	return toClientView(cl), nil
}

func (c *catalogCommandsImpl) UpdateClient(ctx context.Context, id uuid.UUID, in UpdateClientInput) (*queries.ClientView, error) {
	var cl *client.Client

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		cl, err = tx.Clients().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return lookupFailure(err, queries.ErrClientNotFound, ErrSaveCatalogFailed)
		}

		err = cl.UpdateProfile(client.ProfileChanges{
			Name:        in.Name,
			CPF:         in.CPF,
			Email:       in.Email,
			Phone:       in.Phone,
			DateOfBirth: in.DateOfBirth,
		}, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}

		if err := tx.Clients().Update(ctx, tx.DB(), cl); err != nil {
			return saveFailure(err, ErrClientCPFTaken)
		}
		return nil
	})
	if err != nil {
		return nil, txFailure(err, ErrSaveCatalogFailed)
	}

	return toClientView(cl), nil
}

func (c *catalogCommandsImpl) DeactivateClient(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cl, err := tx.Clients().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return lookupFailure(err, queries.ErrClientNotFound, ErrSaveCatalogFailed)
		}

		cl.Deactivate(c.clock.Now())
		if err := tx.Clients().UpdateActive(ctx, tx.DB(), cl); err != nil {
			return persistenceFailure(err, ErrSaveCatalogFailed)
		}
		return nil
	})
}

func saveFailure(err, taken error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Classify(taken, errs.ErrConflict, err)
	}
	return persistenceFailure(err, ErrSaveCatalogFailed)
}

func toSpaceView(sp *space.Space) *queries.SpaceView {
	return &queries.SpaceView{
		ID:          sp.ID(),
		Name:        sp.Name(),
		Description: sp.Description(),
		Capacity:    sp.Capacity(),
		IsActive:    sp.Active().Int16(),
		CreatedAt:   sp.CreatedAt(),
		UpdatedAt:   sp.UpdatedAt(),
	}
}

func toResourceView(rs *resource.Resource) *queries.ResourceView {
	return &queries.ResourceView{
		ID:          rs.ID(),
		Name:        rs.Name(),
		Description: rs.Description(),
		Quantity:    rs.Quantity(),
		IsActive:    rs.Active().Int16(),
		CreatedAt:   rs.CreatedAt(),
		UpdatedAt:   rs.UpdatedAt(),
	}
}

func toClientView(cl *client.Client) *queries.ClientView {
	view := &queries.ClientView{
		ID:        cl.ID(),
		Name:      cl.Name(),
		CPF:       cl.CPF().String(),
		Email:     cl.Email(),
		Phone:     cl.Phone(),
		IsActive:  cl.Active().Int16(),
		CreatedAt: cl.CreatedAt(),
		UpdatedAt: cl.UpdatedAt(),
	}
	if dob := cl.DateOfBirth(); !dob.IsZero() {
		view.DateOfBirth = &dob
	}
	return view
}
