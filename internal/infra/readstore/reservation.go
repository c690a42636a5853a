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

type ReservationViewQueries interface {
	GetReservationView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewRow, error)
	ListReservationViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationViewsParams) ([]sqlc.ListReservationViewsRow, error)
	CountReservationViews(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationViewsParams) (int64, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return toReservationView(reservationViewRow(row)), nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	status, cpf, spaceID := reservationFilterParams(filter)
	rows, err := r.queries.ListReservationViews(ctx, r.db, sqlc.ListReservationViewsParams{
		Status:     status,
		Cpf:        cpf,
		SpaceID:    spaceID,
		PageLimit:  filter.Page.Limit,
		PageOffset: filter.Page.Offset(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(reservationViewRow(row))
	}
	return result, nil
}

func (r *ReservationReadStore) Count(ctx context.Context, filter queries.ReservationFilter) (int64, error) {
	status, cpf, spaceID := reservationFilterParams(filter)
	total, err := r.queries.CountReservationViews(ctx, r.db, sqlc.CountReservationViewsParams{
		Status:  status,
		Cpf:     cpf,
		SpaceID: spaceID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return total, nil
}

func reservationFilterParams(filter queries.ReservationFilter) (pgtype.Text, pgtype.Text, pgtype.UUID) {
	var status pgtype.Text
	if filter.Status != nil {
		status = pgtype.Text{String: filter.Status.String(), Valid: true}
	}
	return status, pgconv.StringPtrToPgtype(filter.CPF), pgconv.UUIDPtrToPgtype(filter.SpaceID)
}

// reservationViewRow unifies the single-row and list query results, which sqlc
// emits as distinct types with identical fields.
type reservationViewRow sqlc.GetReservationViewRow

func toReservationView(row reservationViewRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID: row.ID,
		Client: queries.ClientSummary{
			ID:   row.ClientID,
			Name: row.ClientName,
			CPF:  row.ClientCpf,
		},
		Space: queries.Summary{
			ID:   row.SpaceID,
			Name: row.SpaceName,
		},
		Resource: queries.Summary{
			ID:   row.ResourceID,
			Name: row.ResourceName,
		},
		StartDate: pgconv.TimeFromPgtype(row.StartDate),
		EndDate:   pgconv.TimeFromPgtype(row.EndDate),
		Status:    row.Status,
		ClosedAt:  pgconv.TimePtrFromPgtype(row.ClosedAt),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
