package queries

import (
	"context"

	"facility-booking/internal/domain/activity"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSpaceNotFound      = errs.New("space not found")
	ErrResourceNotFound   = errs.New("resource not found")
	ErrClientNotFound     = errs.New("client not found")
	ErrCatalogQueryFailed = errs.New("could not load catalog entries")
)

// CatalogFilter narrows space, resource and client listings.
type CatalogFilter struct {
	Name   *string
	Active *activity.Flag
	Page   PageRequest
}

type SpaceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SpaceView, error)
	List(ctx context.Context, filter CatalogFilter) ([]*SpaceView, error)
	Count(ctx context.Context, filter CatalogFilter) (int64, error)
}

type ResourceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	List(ctx context.Context, filter CatalogFilter) ([]*ResourceView, error)
	Count(ctx context.Context, filter CatalogFilter) (int64, error)
}

type ClientReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClientView, error)
	List(ctx context.Context, filter CatalogFilter) ([]*ClientView, error)
	Count(ctx context.Context, filter CatalogFilter) (int64, error)
}

type SpaceQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*SpaceView, error)
	List(ctx context.Context, filter CatalogFilter) (*Page[*SpaceView], error)
}

type ResourceQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	List(ctx context.Context, filter CatalogFilter) (*Page[*ResourceView], error)
}

type ClientQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*ClientView, error)
	List(ctx context.Context, filter CatalogFilter) (*Page[*ClientView], error)
}

func NewSpaceQueries(store SpaceReadStore) SpaceQueries {
	return &catalogQueries[SpaceView]{store: store, notFound: ErrSpaceNotFound}
}

func NewResourceQueries(store ResourceReadStore) ResourceQueries {
	return &catalogQueries[ResourceView]{store: store, notFound: ErrResourceNotFound}
}

func NewClientQueries(store ClientReadStore) ClientQueries {
	return &catalogQueries[ClientView]{store: store, notFound: ErrClientNotFound}
}

type catalogReadStore[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context, filter CatalogFilter) ([]*T, error)
	Count(ctx context.Context, filter CatalogFilter) (int64, error)
}

type catalogQueries[T any] struct {
	store    catalogReadStore[T]
	notFound error
}

func (q *catalogQueries[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Classify(q.notFound, errs.ErrNotFound, err)
		}
		return nil, errs.Classify(ErrCatalogQueryFailed, errs.ErrPersistence, err)
	}
	return view, nil
}

func (q *catalogQueries[T]) List(ctx context.Context, filter CatalogFilter) (*Page[*T], error) {
	views, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, errs.Classify(ErrCatalogQueryFailed, errs.ErrPersistence, err)
	}

	total, err := q.store.Count(ctx, filter)
	if err != nil {
		return nil, errs.Classify(ErrCatalogQueryFailed, errs.ErrPersistence, err)
	}

	page := NewPage(views, filter.Page, total)
	return &page, nil
}
