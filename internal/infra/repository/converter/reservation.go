package converter

import (
	"fmt"

	"facility-booking/internal/domain/reservation"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"
)

func ReservationToInsertParams(res *reservation.Reservation) sqlc.InsertReservationParams {
	slot := res.TimeSlot()
	return sqlc.InsertReservationParams{
		ID:         res.ID(),
		ClientID:   res.ClientID(),
		SpaceID:    res.SpaceID(),
		ResourceID: res.ResourceID(),
		StartDate:  pgconv.TimeToPgtype(slot.Start()),
		EndDate:    pgconv.TimeToPgtype(slot.End()),
		Status:     res.Status().String(),
		ClosedAt:   pgconv.TimePtrToPgtype(res.ClosedAt()),
		CreatedAt:  pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationParams {
	slot := res.TimeSlot()
	return sqlc.UpdateReservationParams{
		ID:        res.ID(),
		StartDate: pgconv.TimeToPgtype(slot.Start()),
		EndDate:   pgconv.TimeToPgtype(slot.End()),
		Status:    res.Status().String(),
		ClosedAt:  pgconv.TimePtrToPgtype(res.ClosedAt()),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

// ReservationFromRow rebuilds the aggregate. The table constraints make the
// error paths unreachable unless the row was written outside the application.
func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(pgconv.TimeFromPgtype(row.StartDate), pgconv.TimeFromPgtype(row.EndDate))
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}

	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.ClientID,
		row.SpaceID,
		row.ResourceID,
		slot,
		status,
		pgconv.TimePtrFromPgtype(row.ClosedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
