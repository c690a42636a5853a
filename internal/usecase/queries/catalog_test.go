//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/queries"
	queriesmock "facility-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSpaceQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSpaceReadStore(ctrl)
		view := &queries.SpaceView{ID: uuid.New(), Name: "Auditorium", Capacity: 10, IsActive: 1}
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := queries.NewSpaceQueries(store).Get(ctx, view.ID)

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("get unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSpaceReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("space not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := queries.NewSpaceQueries(store).Get(ctx, id)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.Equal(t, "space not found", err.Error())
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSpaceReadStore(ctrl)
		filter := queries.CatalogFilter{Page: queries.PageRequest{Page: 1, Limit: 10}}
		store.EXPECT().List(gomock.Any(), filter).Return([]*queries.SpaceView{{Name: "A"}}, nil)
		store.EXPECT().Count(gomock.Any(), filter).Return(int64(1), nil)

		page, err := queries.NewSpaceQueries(store).List(ctx, filter)

		require.NoError(t, err)
		assert.Len(t, page.Data, 1)
		assert.Equal(t, int32(1), page.Meta.TotalPages)
	})
}

func TestResourceQueries_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockResourceReadStore(ctrl)
	filter := queries.CatalogFilter{Page: queries.PageRequest{Page: 1, Limit: 10}}
	store.EXPECT().List(gomock.Any(), filter).Return(nil, errors.New("boom"))

	_, err := queries.NewResourceQueries(store).List(context.Background(), filter)

	assert.True(t, errs.Is(err, errs.ErrPersistence))
	assert.True(t, errs.Is(err, queries.ErrCatalogQueryFailed))
}

func TestClientQueries_GetUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockClientReadStore(ctrl)
	id := uuid.New()
	store.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("client not found", pgx.ErrNoRows, infra.KindNotFound))

	_, err := queries.NewClientQueries(store).Get(context.Background(), id)

	assert.True(t, errs.Is(err, queries.ErrClientNotFound))
}
