package response

import (
	"time"

	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SummaryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ClientSummaryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	CPF  string    `json:"cpf"`
}

type ReservationResponse struct {
	ID        uuid.UUID             `json:"id"`
	Client    ClientSummaryResponse `json:"client"`
	Space     SummaryResponse       `json:"space"`
	Resource  SummaryResponse       `json:"resource"`
	StartDate time.Time             `json:"startDate"`
	EndDate   time.Time             `json:"endDate"`
	Status    string                `json:"status"`
	ClosedAt  *time.Time            `json:"closedAt,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

type PageResponse[T any] struct {
	Data []T              `json:"data"`
	Meta queries.PageMeta `json:"meta"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID: v.ID,
		Client: ClientSummaryResponse{
			ID:   v.Client.ID,
			Name: v.Client.Name,
			CPF:  v.Client.CPF,
		},
		Space: SummaryResponse{
			ID:   v.Space.ID,
			Name: v.Space.Name,
		},
		Resource: SummaryResponse{
			ID:   v.Resource.ID,
			Name: v.Resource.Name,
		},
		StartDate: v.StartDate,
		EndDate:   v.EndDate,
		Status:    v.Status,
		ClosedAt:  v.ClosedAt,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromReservationPage(p *queries.ReservationPage) PageResponse[*ReservationResponse] {
	data := make([]*ReservationResponse, len(p.Data))
	for i, v := range p.Data {
		data[i] = FromReservationView(v)
	}
	return PageResponse[*ReservationResponse]{Data: data, Meta: p.Meta}
}
