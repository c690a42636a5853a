package repository

import (
	"context"

	"facility-booking/internal/domain/client"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/repository/converter"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ClientWriteQueries interface {
	GetClientByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Clients, error)
	InsertClient(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertClientParams) error
	UpdateClient(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateClientParams) (int64, error)
	UpdateClientActive(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateClientActiveParams) (int64, error)
}

type ClientRepository struct {
	queries ClientWriteQueries
}

func NewClientRepository(queries ClientWriteQueries) *ClientRepository {
	return &ClientRepository{queries: queries}
}

func (r *ClientRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*client.Client, error) {
	row, err := r.queries.GetClientByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by ID", err)
	}

	cl, err := converter.ClientFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map client row", err, infra.KindDBFailure)
	}
	return cl, nil
}

func (r *ClientRepository) Create(ctx context.Context, tx sqlc.DBTX, cl *client.Client) error {
	if err := r.queries.InsertClient(ctx, tx, converter.ClientToInsertParams(cl)); err != nil {
		return infra.WrapRepoErr("failed to create client", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, tx sqlc.DBTX, cl *client.Client) error {
	affected, err := r.queries.UpdateClient(ctx, tx, sqlc.UpdateClientParams{
		ID:          cl.ID(),
		Name:        cl.Name(),
		Cpf:         cl.CPF().String(),
		Email:       cl.Email(),
		Phone:       cl.Phone(),
		DateOfBirth: pgconv.DateToPgtype(cl.DateOfBirth()),
		UpdatedAt:   pgconv.TimeToPgtype(cl.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update client", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ClientRepository) UpdateActive(ctx context.Context, tx sqlc.DBTX, cl *client.Client) error {
	affected, err := r.queries.UpdateClientActive(ctx, tx, sqlc.UpdateClientActiveParams{
		ID:        cl.ID(),
		IsActive:  cl.Active().Int16(),
		UpdatedAt: pgconv.TimeToPgtype(cl.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update client active flag", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return nil
}
