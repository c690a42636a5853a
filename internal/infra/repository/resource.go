package repository

import (
	"context"

	"facility-booking/internal/domain/resource"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/repository/converter"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ResourceWriteQueries interface {
	GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	GetResourceByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	InsertResource(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertResourceParams) error
	UpdateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateResourceParams) (int64, error)
	UpdateResourceQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateResourceQuantityParams) error
	UpdateResourceActive(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateResourceActiveParams) (int64, error)
}

type ResourceRepository struct {
	queries ResourceWriteQueries
}

func NewResourceRepository(queries ResourceWriteQueries) *ResourceRepository {
	return &ResourceRepository{queries: queries}
}

func (r *ResourceRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.GetResourceByID(ctx, tx, id)
	return r.toDomain(row, err)
}

// FindByIDForUpdate locks the resource row until the surrounding transaction ends.
func (r *ResourceRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.GetResourceByIDForUpdate(ctx, tx, id)
	return r.toDomain(row, err)
}

func (r *ResourceRepository) toDomain(row sqlc.Resources, err error) (*resource.Resource, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}

	rs, err := converter.ResourceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map resource row", err, infra.KindDBFailure)
	}
	return rs, nil
}

// Update writes name and description. Stock goes through UpdateQuantity.
func (r *ResourceRepository) Update(ctx context.Context, tx sqlc.DBTX, rs *resource.Resource) error {
	affected, err := r.queries.UpdateResource(ctx, tx, sqlc.UpdateResourceParams{
		ID:          rs.ID(),
		Name:        rs.Name(),
		Description: rs.Description(),
		UpdatedAt:   pgconv.TimeToPgtype(rs.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update resource", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ResourceRepository) UpdateQuantity(ctx context.Context, tx sqlc.DBTX, rs *resource.Resource) error {
	err := r.queries.UpdateResourceQuantity(ctx, tx, sqlc.UpdateResourceQuantityParams{
		ID:        rs.ID(),
		Quantity:  rs.Quantity(),
		UpdatedAt: pgconv.TimeToPgtype(rs.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update resource quantity", err)
	}
	return nil
}

func (r *ResourceRepository) Create(ctx context.Context, tx sqlc.DBTX, rs *resource.Resource) error {
	if err := r.queries.InsertResource(ctx, tx, converter.ResourceToInsertParams(rs)); err != nil {
		return infra.WrapRepoErr("failed to create resource", err)
	}
	return nil
}

func (r *ResourceRepository) UpdateActive(ctx context.Context, tx sqlc.DBTX, rs *resource.Resource) error {
	affected, err := r.queries.UpdateResourceActive(ctx, tx, sqlc.UpdateResourceActiveParams{
		ID:        rs.ID(),
		IsActive:  rs.Active().Int16(),
		UpdatedAt: pgconv.TimeToPgtype(rs.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update resource active flag", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return nil
}
