package repository

import (
	"context"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/repository/converter"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// allocationQuantity is the number of resource units one reservation holds.
const allocationQuantity = 1

type ReservationWriteQueries interface {
	LockSpaceForBooking(ctx context.Context, db sqlc.DBTX, spaceID uuid.UUID) error
	HasOverlappingReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.HasOverlappingReservationParams) (bool, error)
	InsertReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertReservationParams) error
	InsertReservationResource(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertReservationResourceParams) error
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) error
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
	}
}

func (r *ReservationRepository) LockSpace(ctx context.Context, tx sqlc.DBTX, spaceID uuid.UUID) error {
	if err := r.queries.LockSpaceForBooking(ctx, tx, spaceID); err != nil {
		return infra.WrapRepoErr("failed to lock space for booking", err)
	}
	return nil
}

func (r *ReservationRepository) HasOverlap(ctx context.Context, tx sqlc.DBTX, q shared.OverlapQuery) (bool, error) {
	overlapping, err := r.queries.HasOverlappingReservation(ctx, tx, sqlc.HasOverlappingReservationParams{
		SpaceID:        q.SpaceID,
		StartDate:      pgconv.TimeToPgtype(q.Slot.Start()),
		EndDate:        pgconv.TimeToPgtype(q.Slot.End()),
		ExcludeID:      pgconv.UUIDPtrToPgtype(q.ExcludeID),
		IgnoreTerminal: q.IgnoreTerminal,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}
	return overlapping, nil
}

// Create inserts the reservation and its single allocation line.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.InsertReservation(ctx, tx, converter.ReservationToInsertParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	err := r.queries.InsertReservationResource(ctx, tx, sqlc.InsertReservationResourceParams{
		ReservationID: res.ID(),
		ResourceID:    res.ResourceID(),
		Quantity:      allocationQuantity,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation allocation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation for update", err)
	}

	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map reservation row", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.UpdateReservation(ctx, tx, converter.ReservationToUpdateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	return nil
}
