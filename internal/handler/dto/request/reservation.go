package request

import (
	"strings"
	"time"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ClientID   uuid.UUID `json:"clientId" binding:"required"`
	SpaceID    uuid.UUID `json:"spaceId" binding:"required"`
	ResourceID uuid.UUID `json:"resourceId" binding:"required"`
	StartDate  time.Time `json:"startDate" binding:"required"`
	EndDate    time.Time `json:"endDate" binding:"required"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ClientID:   r.ClientID,
		SpaceID:    r.SpaceID,
		ResourceID: r.ResourceID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
}

// AmendReservationRequest is a partial update; omitted fields keep their stored value.
type AmendReservationRequest struct {
	Status    *string    `json:"status"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	ClosedAt  *time.Time `json:"closedAt"`
}

func (r AmendReservationRequest) ToInput() commands.AmendReservationInput {
	return commands.AmendReservationInput{
		Status:    r.Status,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		ClosedAt:  r.ClosedAt,
	}
}

type ListReservationsQuery struct {
	Page    *int32  `form:"page"`
	Limit   *int32  `form:"limit"`
	Status  *string `form:"status"`
	CPF     *string `form:"cpf"`
	SpaceID *string `form:"spaceId"`
}

func (q ListReservationsQuery) ToFilter(limits queries.PageLimits) (queries.ReservationFilter, error) {
	page, err := queries.NewPageRequest(q.Page, q.Limit, limits)
	if err != nil {
		return queries.ReservationFilter{}, err
	}

	filter := queries.ReservationFilter{Page: page}

	if q.Status != nil && strings.TrimSpace(*q.Status) != "" {
		status, err := reservation.ParseStatus(strings.TrimSpace(*q.Status))
		if err != nil {
			return queries.ReservationFilter{}, err
		}
		filter.Status = &status
	}
	if q.CPF != nil && strings.TrimSpace(*q.CPF) != "" {
		cpf := strings.TrimSpace(*q.CPF)
		filter.CPF = &cpf
	}
	if q.SpaceID != nil && *q.SpaceID != "" {
		id, err := uuid.Parse(*q.SpaceID)
		if err != nil {
			return queries.ReservationFilter{}, ErrInvalidSpaceID
		}
		filter.SpaceID = &id
	}

	return filter, nil
}
