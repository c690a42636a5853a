package reservation

import (
	"errors"
	"time"

	"facility-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot       = errors.New("start date must be before end date")
	ErrInvalidStatus         = errors.New("invalid reservation status")
	ErrCancelThroughAmend    = errors.New("reservations cannot be canceled through amend")
	ErrApproveRequiresOpen   = errors.New("only open reservations can be approved")
	ErrCloseRequiresApproved = errors.New("only approved reservations can be closed")
	ErrCancelRequiresOpen    = errors.New("only open reservations can be canceled")
	ErrReopenNotAllowed      = errors.New("reservations cannot be reopened")
	ErrClosedAtNotClosed     = errors.New("closed at can only be set on closed reservations")
	ErrOverlap               = errors.New("reservation overlaps with another reservation for this space")
)

type Reservation struct {
	id         uuid.UUID
	clientID   uuid.UUID
	spaceID    uuid.UUID
	resourceID uuid.UUID
	timeSlot   TimeSlot
	status     Status
	closedAt   *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func ReconstructReservation(
	id, clientID, spaceID, resourceID uuid.UUID,
	timeSlot TimeSlot,
	status Status,
	closedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		clientID:   clientID,
		spaceID:    spaceID,
		resourceID: resourceID,
		timeSlot:   timeSlot,
		status:     status,
		closedAt:   closedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Amendment is a partial update. Nil fields are left unchanged.
type Amendment struct {
	Status    *Status
	StartDate *time.Time
	EndDate   *time.Time
	ClosedAt  *time.Time
}

func (a Amendment) changesSlot() bool {
	return a.StartDate != nil || a.EndDate != nil
}

// Amend applies a partial update. The rules are checked in this order: cancel is
// refused, approve needs OPEN, the merged slot must be valid, close needs APPROVED
// and stamps closedAt with now. A supplied closedAt is only accepted on a
// reservation that is or becomes CLOSED.
func (r *Reservation) Amend(a Amendment, now time.Time) error {
	target := r.status
	if a.Status != nil {
		target = *a.Status
		if !target.IsValid() {
			return ErrInvalidStatus
		}
	}

	if a.Status != nil && target == StatusCanceled {
		return ErrCancelThroughAmend
	}
	if a.Status != nil && target == StatusApproved && r.status != StatusOpen {
		return ErrApproveRequiresOpen
	}

	slot := r.timeSlot
	if a.changesSlot() {
		merged, err := NewTimeSlot(
			patch.Coalesce(a.StartDate, r.timeSlot.start),
			patch.Coalesce(a.EndDate, r.timeSlot.end),
		)
		if err != nil {
			return err
		}
		slot = merged
	}

	if a.Status != nil && target == StatusClosed {
		if r.status != StatusApproved {
			return ErrCloseRequiresApproved
		}
		closedAt := now
		r.timeSlot = slot
		r.status = StatusClosed
		r.closedAt = &closedAt
		r.updatedAt = now
		return nil
	}

	if a.Status != nil && target == StatusOpen && r.status != StatusOpen {
		return ErrReopenNotAllowed
	}
	if a.ClosedAt != nil && target != StatusClosed {
		return ErrClosedAtNotClosed
	}

	r.timeSlot = slot
	r.status = target
	r.closedAt = patch.CoalesceTimePtr(a.ClosedAt, r.closedAt)
	r.updatedAt = now
	return nil
}

func (r *Reservation) Approve(now time.Time) error {
	s := StatusApproved
	return r.Amend(Amendment{Status: &s}, now)
}

func (r *Reservation) Close(now time.Time) error {
	s := StatusClosed
	return r.Amend(Amendment{Status: &s}, now)
}

// Cancel is the only path into CANCELED.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status != StatusOpen {
		return ErrCancelRequiresOpen
	}
	r.status = StatusCanceled
	r.updatedAt = now
	return nil
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) ClientID() uuid.UUID   { return r.clientID }
func (r *Reservation) SpaceID() uuid.UUID    { return r.spaceID }
func (r *Reservation) ResourceID() uuid.UUID { return r.resourceID }
func (r *Reservation) TimeSlot() TimeSlot    { return r.timeSlot }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) ClosedAt() *time.Time  { return r.closedAt }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
