package repository

import (
	"context"

	"facility-booking/internal/domain/space"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/repository/converter"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SpaceWriteQueries interface {
	GetSpaceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Spaces, error)
	InsertSpace(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSpaceParams) error
	UpdateSpace(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSpaceParams) (int64, error)
	UpdateSpaceActive(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSpaceActiveParams) (int64, error)
}

type SpaceRepository struct {
	queries SpaceWriteQueries
}

func NewSpaceRepository(queries SpaceWriteQueries) *SpaceRepository {
	return &SpaceRepository{queries: queries}
}

func (r *SpaceRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*space.Space, error) {
	row, err := r.queries.GetSpaceByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("space not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find space by ID", err)
	}

	sp, err := converter.SpaceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map space row", err, infra.KindDBFailure)
	}
	return sp, nil
}

func (r *SpaceRepository) Create(ctx context.Context, tx sqlc.DBTX, sp *space.Space) error {
	if err := r.queries.InsertSpace(ctx, tx, converter.SpaceToInsertParams(sp)); err != nil {
		return infra.WrapRepoErr("failed to create space", err)
	}
	return nil
}

func (r *SpaceRepository) Update(ctx context.Context, tx sqlc.DBTX, sp *space.Space) error {
	affected, err := r.queries.UpdateSpace(ctx, tx, sqlc.UpdateSpaceParams{
		ID:          sp.ID(),
		Name:        sp.Name(),
		Description: sp.Description(),
		Capacity:    sp.Capacity(),
		UpdatedAt:   pgconv.TimeToPgtype(sp.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update space", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("space not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpaceRepository) UpdateActive(ctx context.Context, tx sqlc.DBTX, sp *space.Space) error {
	affected, err := r.queries.UpdateSpaceActive(ctx, tx, sqlc.UpdateSpaceActiveParams{
		ID:        sp.ID(),
		IsActive:  sp.Active().Int16(),
		UpdatedAt: pgconv.TimeToPgtype(sp.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update space active flag", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("space not found", nil, infra.KindNotFound)
	}
	return nil
}
