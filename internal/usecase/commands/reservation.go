package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"facility-booking/internal/domain/client"
	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/domain/space"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/queries"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCreateReservationFailed = errs.New("could not create reservation")
	ErrUpdateReservationFailed = errs.New("could not update reservation")
	ErrCancelReservationFailed = errs.New("could not cancel reservation")
)

// BookingPolicy holds the switches for the two behaviours the engine leaves open.
type BookingPolicy struct {
	// OverlapIgnoresTerminal excludes CANCELED and CLOSED reservations from the overlap check.
	OverlapIgnoresTerminal bool
	// RestoreInventoryOnRelease returns one unit to the resource on cancel or close.
	RestoreInventoryOnRelease bool
}

type CreateReservationInput struct {
	ClientID   uuid.UUID
	SpaceID    uuid.UUID
	ResourceID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
}

// AmendReservationInput is a partial update. Nil fields are left unchanged.
type AmendReservationInput struct {
	Status    *string
	StartDate *time.Time
	EndDate   *time.Time
	ClosedAt  *time.Time
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput) (*queries.ReservationView, error)
	Amend(ctx context.Context, id uuid.UUID, in AmendReservationInput) (*queries.ReservationView, error)
	Cancel(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	cache   queries.ReservationViewCache
	policy  BookingPolicy
	clock   clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	cache queries.ReservationViewCache,
	policy BookingPolicy,
	clock clock.Clock,
) ReservationCommands {
	if cache == nil {
		cache = queries.NopReservationViewCache{}
	}
	return &reservationCommandsImpl{
		uow:     uow,
		factory: factory,
		cache:   cache,
		policy:  policy,
		clock:   clock,
	}
}

func (r *reservationCommandsImpl) Create(ctx context.Context, in CreateReservationInput) (*queries.ReservationView, error) {
	var view *queries.ReservationView

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		parties, err := r.resolveParties(ctx, tx, in)
		if err != nil {
			return err
		}

		res, err := r.factory.NewReservation(parties, in.StartDate, in.EndDate)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}

		if err := r.ensureNoOverlap(ctx, tx, res.SpaceID(), res.TimeSlot(), nil, ErrCreateReservationFailed); err != nil {
			return err
		}

		allocated, err := parties.Resource.Allocate(r.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if allocated {
			if err := tx.Resources().UpdateQuantity(ctx, tx.DB(), parties.Resource); err != nil {
				return persistenceFailure(err, ErrCreateReservationFailed)
			}
		}

		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return persistenceFailure(err, ErrCreateReservationFailed)
		}

		view, err = tx.Reads().ReservationView(ctx, res.ID())
		if err != nil {
			return persistenceFailure(err, ErrCreateReservationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, txFailure(err, ErrCreateReservationFailed)
	}

	slog.Info("reservation created",
		"reservation_id", view.ID,
		"space_id", view.Space.ID,
		"resource_id", view.Resource.ID)
	return view, nil
}

func (r *reservationCommandsImpl) Amend(ctx context.Context, id uuid.UUID, in AmendReservationInput) (*queries.ReservationView, error) {
	var view *queries.ReservationView

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := r.lockReservation(ctx, tx, id, ErrUpdateReservationFailed)
		if err != nil {
			return err
		}

		amendment, err := toAmendment(in)
		if err != nil {
			return err
		}

		previousStatus := res.Status()
		previousSlot := res.TimeSlot()
		if err := res.Amend(amendment, r.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}

		// The resource is locked before the space, as Create does.
		var released *resource.Resource
		if previousStatus != reservation.StatusClosed && res.Status() == reservation.StatusClosed {
			released, err = r.lockForRelease(ctx, tx, res.ResourceID(), ErrUpdateReservationFailed)
			if err != nil {
				return err
			}
		}

		if !res.TimeSlot().Equal(previousSlot) {
			self := res.ID()
			if err := r.ensureNoOverlap(ctx, tx, res.SpaceID(), res.TimeSlot(), &self, ErrUpdateReservationFailed); err != nil {
				return err
			}
		}

		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return persistenceFailure(err, ErrUpdateReservationFailed)
		}

		if err := r.restock(ctx, tx, released, ErrUpdateReservationFailed); err != nil {
			return err
		}

		view, err = tx.Reads().ReservationView(ctx, res.ID())
		if err != nil {
			return persistenceFailure(err, ErrUpdateReservationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, txFailure(err, ErrUpdateReservationFailed)
	}

	r.refreshCache(ctx, view)
	return view, nil
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var view *queries.ReservationView

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := r.lockReservation(ctx, tx, id, ErrCancelReservationFailed)
		if err != nil {
			return err
		}

		if err := res.Cancel(r.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}

		released, err := r.lockForRelease(ctx, tx, res.ResourceID(), ErrCancelReservationFailed)
		if err != nil {
			return err
		}

		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return persistenceFailure(err, ErrCancelReservationFailed)
		}

		if err := r.restock(ctx, tx, released, ErrCancelReservationFailed); err != nil {
			return err
		}

		view, err = tx.Reads().ReservationView(ctx, res.ID())
		if err != nil {
			return persistenceFailure(err, ErrCancelReservationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, txFailure(err, ErrCancelReservationFailed)
	}

	r.refreshCache(ctx, view)
	return view, nil
}

// resolveParties looks up space, resource and client in that order. The
// resource row stays locked until the transaction ends.
func (r *reservationCommandsImpl) resolveParties(ctx context.Context, tx shared.Tx, in CreateReservationInput) (reservation.Parties, error) {
	var (
		sp  *space.Space
		rs  *resource.Resource
		cl  *client.Client
		err error
	)

	sp, err = tx.Spaces().FindByID(ctx, tx.DB(), in.SpaceID)
	if err != nil {
		return reservation.Parties{}, lookupFailure(err, queries.ErrSpaceNotFound, ErrCreateReservationFailed)
	}

	rs, err = tx.Resources().FindByIDForUpdate(ctx, tx.DB(), in.ResourceID)
	if err != nil {
		return reservation.Parties{}, lookupFailure(err, queries.ErrResourceNotFound, ErrCreateReservationFailed)
	}

	cl, err = tx.Clients().FindByID(ctx, tx.DB(), in.ClientID)
	if err != nil {
		return reservation.Parties{}, lookupFailure(err, queries.ErrClientNotFound, ErrCreateReservationFailed)
	}

	return reservation.Parties{Space: sp, Resource: rs, Client: cl}, nil
}

func (r *reservationCommandsImpl) lockReservation(ctx context.Context, tx shared.Tx, id uuid.UUID, op error) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), id)
	if err != nil {
		return nil, lookupFailure(err, queries.ErrReservationNotFound, op)
	}
	return res, nil
}

// ensureNoOverlap takes the space lock before asking for overlaps, so a
// concurrent booking on the same space waits until this transaction ends.
func (r *reservationCommandsImpl) ensureNoOverlap(
	ctx context.Context,
	tx shared.Tx,
	spaceID uuid.UUID,
	slot reservation.TimeSlot,
	excludeID *uuid.UUID,
	op error,
) error {
	if err := tx.Reservations().LockSpace(ctx, tx.DB(), spaceID); err != nil {
		return persistenceFailure(err, op)
	}

	overlapping, err := tx.Reservations().HasOverlap(ctx, tx.DB(), shared.OverlapQuery{
		SpaceID:        spaceID,
		Slot:           slot,
		ExcludeID:      excludeID,
		IgnoreTerminal: r.policy.OverlapIgnoresTerminal,
	})
	if err != nil {
		return persistenceFailure(err, op)
	}
	if overlapping {
		return errs.Mark(reservation.ErrOverlap, errs.ErrValidation)
	}
	return nil
}

// lockForRelease locks the resource that gets its unit back. It returns nil
// when the policy keeps inventory consumed.
func (r *reservationCommandsImpl) lockForRelease(ctx context.Context, tx shared.Tx, resourceID uuid.UUID, op error) (*resource.Resource, error) {
	if !r.policy.RestoreInventoryOnRelease {
		return nil, nil
	}

	rs, err := tx.Resources().FindByIDForUpdate(ctx, tx.DB(), resourceID)
	if err != nil {
		return nil, persistenceFailure(err, op)
	}
	return rs, nil
}

func (r *reservationCommandsImpl) restock(ctx context.Context, tx shared.Tx, rs *resource.Resource, op error) error {
	if rs == nil {
		return nil
	}

	rs.Release(r.clock.Now())
	if err := tx.Resources().UpdateQuantity(ctx, tx.DB(), rs); err != nil {
		return persistenceFailure(err, op)
	}
	return nil
}

// refreshCache stores the committed view. A failed write drops the entry
// instead so readers fall back to the store.
func (r *reservationCommandsImpl) refreshCache(ctx context.Context, view *queries.ReservationView) {
	err := r.cache.Set(ctx, view)
	if err == nil {
		return
	}
	slog.Warn("reservation cache write failed", "reservation_id", view.ID, "error", err.Error())

	if err := r.cache.Invalidate(ctx, view.ID); err != nil {
		slog.Warn("reservation cache invalidation failed", "reservation_id", view.ID, "error", err.Error())
	}
}

func toAmendment(in AmendReservationInput) (reservation.Amendment, error) {
	a := reservation.Amendment{
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		ClosedAt:  in.ClosedAt,
	}
	if in.Status != nil {
		status, err := reservation.ParseStatus(strings.TrimSpace(*in.Status))
		if err != nil {
			return reservation.Amendment{}, errs.Mark(err, errs.ErrValidation)
		}
		a.Status = &status
	}
	return a, nil
}

// lookupFailure turns a repository error into NotFound for a missing row and
// into a persistence failure of op otherwise.
func lookupFailure(err, notFound, op error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Classify(notFound, errs.ErrNotFound, err)
	}
	return persistenceFailure(err, op)
}

// persistenceFailure reports err under the generic message of op.
func persistenceFailure(err, op error) error {
	return errs.Classify(op, errs.ErrPersistence, err)
}

// txFailure classifies what Within returns. Errors raised inside the
// transaction already carry a class; begin and commit failures do not.
func txFailure(err, op error) error {
	for _, class := range []error{errs.ErrValidation, errs.ErrNotFound, errs.ErrConflict, errs.ErrPersistence} {
		if errs.Is(err, class) {
			return err
		}
	}
	return persistenceFailure(err, op)
}
