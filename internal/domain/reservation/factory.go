package reservation

import (
	"time"

	"facility-booking/internal/domain/client"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/domain/space"
	"facility-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// Parties are the resolved entities a booking refers to.
type Parties struct {
	Space    *space.Space
	Resource *resource.Resource
	Client   *client.Client
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// NewReservation runs the admission checks that need no store access, in order:
// slot, space active, resource active, client active, stock not negative.
// Overlap and allocation are left to the caller since they need the store.
func (f *Factory) NewReservation(p Parties, start, end time.Time) (*Reservation, error) {
	slot, err := NewTimeSlot(start, end)
	if err != nil {
		return nil, err
	}
	if err := p.Space.EnsureActive(); err != nil {
		return nil, err
	}
	if err := p.Resource.EnsureActive(); err != nil {
		return nil, err
	}
	if err := p.Client.EnsureActive(); err != nil {
		return nil, err
	}
	if err := p.Resource.EnsureAvailable(); err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	return &Reservation{
		id:         uuid.New(),
		clientID:   p.Client.ID(),
		spaceID:    p.Space.ID(),
		resourceID: p.Resource.ID(),
		timeSlot:   slot,
		status:     StatusOpen,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}
