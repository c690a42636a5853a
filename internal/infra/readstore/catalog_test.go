//go:build unit

package readstore

import (
	"context"
	"testing"

	"facility-booking/internal/domain/activity"
	"facility-booking/internal/infra"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/ptr"
	"facility-booking/internal/usecase/queries"
	"facility-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogViewQueries struct {
	mock.Mock
}

func (m *MockCatalogViewQueries) GetSpaceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Spaces, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Spaces), args.Error(1)
}

func (m *MockCatalogViewQueries) ListSpaces(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSpacesParams) ([]sqlc.Spaces, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.Spaces)
	return rows, args.Error(1)
}

func (m *MockCatalogViewQueries) CountSpaces(ctx context.Context, db sqlc.DBTX, arg sqlc.CountSpacesParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogViewQueries) GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Resources), args.Error(1)
}

func (m *MockCatalogViewQueries) ListResources(ctx context.Context, db sqlc.DBTX, arg sqlc.ListResourcesParams) ([]sqlc.Resources, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.Resources)
	return rows, args.Error(1)
}

func (m *MockCatalogViewQueries) CountResources(ctx context.Context, db sqlc.DBTX, arg sqlc.CountResourcesParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogViewQueries) GetClientByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Clients, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Clients), args.Error(1)
}

func (m *MockCatalogViewQueries) ListClients(ctx context.Context, db sqlc.DBTX, arg sqlc.ListClientsParams) ([]sqlc.Clients, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.Clients)
	return rows, args.Error(1)
}

func (m *MockCatalogViewQueries) CountClients(ctx context.Context, db sqlc.DBTX, arg sqlc.CountClientsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestSpaceReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	row := builder.NewSpaceBuilder().BuildInfra()

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockCatalogViewQueries)
		mockQueries.On("GetSpaceByID", ctx, nil, row.ID).Return(row, nil)

		view, err := NewSpaceReadStore(mockQueries, nil).FindByID(ctx, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.Name, view.Name)
		assert.Equal(t, row.Capacity, view.Capacity)
		assert.Equal(t, int16(1), view.IsActive)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockCatalogViewQueries)
		mockQueries.On("GetSpaceByID", ctx, nil, row.ID).Return(sqlc.Spaces{}, pgx.ErrNoRows)

		view, err := NewSpaceReadStore(mockQueries, nil).FindByID(ctx, row.ID)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestSpaceReadStore_ListAppliesFilters(t *testing.T) {
	ctx := context.Background()
	rows := []sqlc.Spaces{
		builder.NewSpaceBuilder().BuildInfra(),
		builder.NewSpaceBuilder().With(func(b *builder.SpaceBuilder) { b.Name = "Auditorium B" }).BuildInfra(),
	}
	inactive := activity.Inactive

	mockQueries := new(MockCatalogViewQueries)
	mockQueries.On("ListSpaces", ctx, nil, sqlc.ListSpacesParams{
		Name:       pgtype.Text{String: "audi", Valid: true},
		IsActive:   pgtype.Int2{Int16: 0, Valid: true},
		PageLimit:  10,
		PageOffset: 0,
	}).Return(rows, nil)

	views, err := NewSpaceReadStore(mockQueries, nil).List(ctx, queries.CatalogFilter{
		Name:   ptr.Of("audi"),
		Active: &inactive,
		Page:   queries.PageRequest{Page: 1, Limit: 10},
	})

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Auditorium B", views[1].Name)
	mockQueries.AssertExpectations(t)
}

func TestResourceReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	row := builder.NewResourceBuilder().WithQuantity(0).BuildInfra()

	mockQueries := new(MockCatalogViewQueries)
	mockQueries.On("GetResourceByID", ctx, nil, row.ID).Return(row, nil)

	view, err := NewResourceReadStore(mockQueries, nil).FindByID(ctx, row.ID)

	require.NoError(t, err)
	assert.Equal(t, int32(0), view.Quantity)
}

func TestResourceReadStore_Count(t *testing.T) {
	ctx := context.Background()

	mockQueries := new(MockCatalogViewQueries)
	mockQueries.On("CountResources", ctx, nil, sqlc.CountResourcesParams{}).Return(int64(4), nil)

	total, err := NewResourceReadStore(mockQueries, nil).Count(ctx, queries.CatalogFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}

func TestClientReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("date of birth is carried over", func(t *testing.T) {
		row := builder.NewClientBuilder().BuildInfra()
		mockQueries := new(MockCatalogViewQueries)
		mockQueries.On("GetClientByID", ctx, nil, row.ID).Return(row, nil)

		view, err := NewClientReadStore(mockQueries, nil).FindByID(ctx, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.Cpf, view.CPF)
		require.NotNil(t, view.DateOfBirth)
		assert.True(t, row.DateOfBirth.Time.Equal(*view.DateOfBirth))
	})

	t.Run("missing date of birth stays nil", func(t *testing.T) {
		row := builder.NewClientBuilder().BuildInfra()
		row.DateOfBirth = pgtype.Date{}
		mockQueries := new(MockCatalogViewQueries)
		mockQueries.On("GetClientByID", ctx, nil, row.ID).Return(row, nil)

		view, err := NewClientReadStore(mockQueries, nil).FindByID(ctx, row.ID)

		require.NoError(t, err)
		assert.Nil(t, view.DateOfBirth)
	})
}
