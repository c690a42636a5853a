package readstore

import (
	"context"

	"facility-booking/internal/infra"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogViewQueries interface {
	GetSpaceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Spaces, error)
	ListSpaces(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSpacesParams) ([]sqlc.Spaces, error)
	CountSpaces(ctx context.Context, db sqlc.DBTX, arg sqlc.CountSpacesParams) (int64, error)

	GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	ListResources(ctx context.Context, db sqlc.DBTX, arg sqlc.ListResourcesParams) ([]sqlc.Resources, error)
	CountResources(ctx context.Context, db sqlc.DBTX, arg sqlc.CountResourcesParams) (int64, error)

	GetClientByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Clients, error)
	ListClients(ctx context.Context, db sqlc.DBTX, arg sqlc.ListClientsParams) ([]sqlc.Clients, error)
	CountClients(ctx context.Context, db sqlc.DBTX, arg sqlc.CountClientsParams) (int64, error)
}

func catalogFilterParams(filter queries.CatalogFilter) (pgtype.Text, pgtype.Int2) {
	var active pgtype.Int2
	if filter.Active != nil {
		active = pgtype.Int2{Int16: filter.Active.Int16(), Valid: true}
	}
	return pgconv.StringPtrToPgtype(filter.Name), active
}

func findError(entity string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to find "+entity+" by ID", err)
}

type SpaceReadStore struct {
	queries CatalogViewQueries
	db      sqlc.DBTX
}

func NewSpaceReadStore(queries CatalogViewQueries, db sqlc.DBTX) *SpaceReadStore {
	return &SpaceReadStore{queries: queries, db: db}
}

func (r *SpaceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SpaceView, error) {
	row, err := r.queries.GetSpaceByID(ctx, r.db, id)
	if err != nil {
		return nil, findError("space", err)
	}
	return toSpaceView(row), nil
}

func (r *SpaceReadStore) List(ctx context.Context, filter queries.CatalogFilter) ([]*queries.SpaceView, error) {
	name, active := catalogFilterParams(filter)
	rows, err := r.queries.ListSpaces(ctx, r.db, sqlc.ListSpacesParams{
		Name:       name,
		IsActive:   active,
		PageLimit:  filter.Page.Limit,
		PageOffset: filter.Page.Offset(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spaces", err)
	}

	result := make([]*queries.SpaceView, len(rows))
	for i, row := range rows {
		result[i] = toSpaceView(row)
	}
	return result, nil
}

func (r *SpaceReadStore) Count(ctx context.Context, filter queries.CatalogFilter) (int64, error) {
	name, active := catalogFilterParams(filter)
	total, err := r.queries.CountSpaces(ctx, r.db, sqlc.CountSpacesParams{Name: name, IsActive: active})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count spaces", err)
	}
	return total, nil
}

func toSpaceView(row sqlc.Spaces) *queries.SpaceView {
	return &queries.SpaceView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Capacity:    row.Capacity,
		IsActive:    row.IsActive,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

type ResourceReadStore struct {
	queries CatalogViewQueries
	db      sqlc.DBTX
}

func NewResourceReadStore(queries CatalogViewQueries, db sqlc.DBTX) *ResourceReadStore {
	return &ResourceReadStore{queries: queries, db: db}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	row, err := r.queries.GetResourceByID(ctx, r.db, id)
	if err != nil {
		return nil, findError("resource", err)
	}
	return toResourceView(row), nil
}

func (r *ResourceReadStore) List(ctx context.Context, filter queries.CatalogFilter) ([]*queries.ResourceView, error) {
	name, active := catalogFilterParams(filter)
	rows, err := r.queries.ListResources(ctx, r.db, sqlc.ListResourcesParams{
		Name:       name,
		IsActive:   active,
		PageLimit:  filter.Page.Limit,
		PageOffset: filter.Page.Offset(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources", err)
	}

	result := make([]*queries.ResourceView, len(rows))
	for i, row := range rows {
		result[i] = toResourceView(row)
	}
	return result, nil
}

func (r *ResourceReadStore) Count(ctx context.Context, filter queries.CatalogFilter) (int64, error) {
	name, active := catalogFilterParams(filter)
	total, err := r.queries.CountResources(ctx, r.db, sqlc.CountResourcesParams{Name: name, IsActive: active})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count resources", err)
	}
	return total, nil
}

func toResourceView(row sqlc.Resources) *queries.ResourceView {
	return &queries.ResourceView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Quantity:    row.Quantity,
		IsActive:    row.IsActive,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

type ClientReadStore struct {
	queries CatalogViewQueries
	db      sqlc.DBTX
}

func NewClientReadStore(queries CatalogViewQueries, db sqlc.DBTX) *ClientReadStore {
	return &ClientReadStore{queries: queries, db: db}
}

func (r *ClientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClientView, error) {
	row, err := r.queries.GetClientByID(ctx, r.db, id)
	if err != nil {
		return nil, findError("client", err)
	}
	return toClientView(row), nil
}

func (r *ClientReadStore) List(ctx context.Context, filter queries.CatalogFilter) ([]*queries.ClientView, error) {
	name, active := catalogFilterParams(filter)
	rows, err := r.queries.ListClients(ctx, r.db, sqlc.ListClientsParams{
		Name:       name,
		IsActive:   active,
		PageLimit:  filter.Page.Limit,
		PageOffset: filter.Page.Offset(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}

	result := make([]*queries.ClientView, len(rows))
	for i, row := range rows {
		result[i] = toClientView(row)
	}
	return result, nil
}

func (r *ClientReadStore) Count(ctx context.Context, filter queries.CatalogFilter) (int64, error) {
	name, active := catalogFilterParams(filter)
	total, err := r.queries.CountClients(ctx, r.db, sqlc.CountClientsParams{Name: name, IsActive: active})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count clients", err)
	}
	return total, nil
}

func toClientView(row sqlc.Clients) *queries.ClientView {
	view := &queries.ClientView{
		ID:        row.ID,
		Name:      row.Name,
		CPF:       row.Cpf,
		Email:     row.Email,
		Phone:     row.Phone,
		IsActive:  row.IsActive,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.DateOfBirth.Valid {
		dob := row.DateOfBirth.Time
		view.DateOfBirth = &dob
	}
	return view
}
