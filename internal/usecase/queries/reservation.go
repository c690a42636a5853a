package queries

import (
	"context"
	"log/slog"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

var (
	ErrReservationNotFound    = errs.New("reservation not found")
	ErrReservationQueryFailed = errs.New("could not load reservations")
)

type ReservationFilter struct {
	Status  *reservation.Status
	CPF     *string
	SpaceID *uuid.UUID
	Page    PageRequest
}

type ReservationPage = Page[*ReservationView]

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	Count(ctx context.Context, filter ReservationFilter) (int64, error)
}

// ReservationViewCache holds denormalized views keyed by reservation id.
// Get returns (nil, nil) on a miss.
type ReservationViewCache interface {
	Get(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	Set(ctx context.Context, view *ReservationView) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

type ReservationQueries interface {
	FindAll(ctx context.Context, filter ReservationFilter) (*ReservationPage, error)
	FindOne(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
	cache     ReservationViewCache
	group     singleflight.Group
}

func NewReservationQueries(readStore ReservationReadStore, cache ReservationViewCache) ReservationQueries {
	if cache == nil {
		cache = NopReservationViewCache{}
	}
	return &reservationQueriesImpl{
		readStore: readStore,
		cache:     cache,
	}
}

func (q *reservationQueriesImpl) FindAll(ctx context.Context, filter ReservationFilter) (*ReservationPage, error) {
	views, err := q.readStore.List(ctx, filter)
	if err != nil {
		return nil, errs.Classify(ErrReservationQueryFailed, errs.ErrPersistence, err)
	}

	total, err := q.readStore.Count(ctx, filter)
	if err != nil {
		return nil, errs.Classify(ErrReservationQueryFailed, errs.ErrPersistence, err)
	}

	page := NewPage(views, filter.Page, total)
	return &page, nil
}

// FindOne reads through the view cache. Concurrent misses for the same id
// share one store lookup.
func (q *reservationQueriesImpl) FindOne(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	cached, err := q.cache.Get(ctx, id)
	if err != nil {
		slog.Warn("reservation cache read failed", "reservation_id", id, "error", err.Error())
	}
	if cached != nil {
		return cached, nil
	}

	v, err, _ := q.group.Do(id.String(), func() (any, error) {
		view, findErr := q.readStore.FindByID(ctx, id)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return nil, errs.Classify(ErrReservationNotFound, errs.ErrNotFound, findErr)
			}
			return nil, errs.Classify(ErrReservationQueryFailed, errs.ErrPersistence, findErr)
		}

		if setErr := q.cache.Set(ctx, view); setErr != nil {
			slog.Warn("reservation cache write failed", "reservation_id", id, "error", setErr.Error())
		}
		return view, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*ReservationView), nil
}

// NopReservationViewCache is used when caching is disabled.
type NopReservationViewCache struct{}

func (NopReservationViewCache) Get(context.Context, uuid.UUID) (*ReservationView, error) {
	return nil, nil
}

func (NopReservationViewCache) Set(context.Context, *ReservationView) error {
	return nil
}

func (NopReservationViewCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}
