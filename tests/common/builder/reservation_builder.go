//go:build unit || e2e

package builder

import (
	"time"

	"facility-booking/internal/domain/reservation"
	reqdto "facility-booking/internal/handler/dto/request"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	SpaceID    uuid.UUID
	ResourceID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Status     reservation.Status
	ClosedAt   *time.Time
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:         uuid.New(),
		ClientID:   uuid.New(),
		SpaceID:    uuid.New(),
		ResourceID: uuid.New(),
		StartDate:  start,
		EndDate:    start.Add(2 * time.Hour),
		Status:     reservation.StatusOpen,
		CreatedAt:  start.Add(-24 * time.Hour),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithSlot(start, end time.Time) *ReservationBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

// ForParties points the reservation at the given space, resource and client ids.
func (b *ReservationBuilder) ForParties(spaceID, resourceID, clientID uuid.UUID) *ReservationBuilder {
	b.SpaceID = spaceID
	b.ResourceID = resourceID
	b.ClientID = clientID
	return b
}

// BuildDomain panics on an invalid slot, which only a broken test sets up.
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	slot, err := reservation.NewTimeSlot(b.StartDate, b.EndDate)
	if err != nil {
		panic(err)
	}
	return reservation.ReconstructReservation(
		b.ID, b.ClientID, b.SpaceID, b.ResourceID,
		slot, b.Status, b.ClosedAt, b.CreatedAt, b.CreatedAt,
	)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:        b.ID,
		Client:    queries.ClientSummary{ID: b.ClientID, Name: "Maria Souza", CPF: "123.456.789-00"},
		Space:     queries.Summary{ID: b.SpaceID, Name: "Auditorium"},
		Resource:  queries.Summary{ID: b.ResourceID, Name: "Projector"},
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Status:    b.Status.String(),
		ClosedAt:  b.ClosedAt,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ClientID:   b.ClientID,
		SpaceID:    b.SpaceID,
		ResourceID: b.ResourceID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ClientID:   b.ClientID,
		SpaceID:    b.SpaceID,
		ResourceID: b.ResourceID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
	}
}
