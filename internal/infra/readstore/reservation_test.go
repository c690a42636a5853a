//go:build unit

package readstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/infra"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/ptr"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationViewQueries struct {
	mock.Mock
}

func (m *MockReservationViewQueries) GetReservationView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetReservationViewRow), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationViewsParams) ([]sqlc.ListReservationViewsRow, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.ListReservationViewsRow)
	return rows, args.Error(1)
}

func (m *MockReservationViewQueries) CountReservationViews(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationViewsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func reservationViewFixture() sqlc.GetReservationViewRow {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return sqlc.GetReservationViewRow{
		ID:           uuid.New(),
		ClientID:     uuid.New(),
		ClientName:   "Maria Souza",
		ClientCpf:    "123.456.789-00",
		SpaceID:      uuid.New(),
		SpaceName:    "Auditorium",
		ResourceID:   uuid.New(),
		ResourceName: "Projector",
		StartDate:    pgtype.Timestamptz{Time: start, Valid: true},
		EndDate:      pgtype.Timestamptz{Time: start.Add(2 * time.Hour), Valid: true},
		Status:       "OPEN",
		CreatedAt:    pgtype.Timestamptz{Time: start.Add(-time.Hour), Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: start.Add(-time.Hour), Valid: true},
	}
}

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	row := reservationViewFixture()

	tests := []struct {
		name      string
		mockRow   sqlc.GetReservationViewRow
		mockError error
		wantKind  infra.RepositoryErrorKind
		wantError bool
	}{
		{
			name:    "success",
			mockRow: row,
		},
		{
			name:      "not found",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
			wantError: true,
		},
		{
			name:      "database error",
			mockError: errors.New("connection reset"),
			wantKind:  infra.KindDBFailure,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationViewQueries)
			mockQueries.On("GetReservationView", ctx, nil, row.ID).Return(tt.mockRow, tt.mockError)

			store := NewReservationReadStore(mockQueries, nil)
			view, err := store.FindByID(ctx, row.ID)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, row.ID, view.ID)
				assert.Equal(t, row.ClientCpf, view.Client.CPF)
				assert.Equal(t, row.SpaceName, view.Space.Name)
				assert.Equal(t, row.ResourceName, view.Resource.Name)
				assert.Equal(t, "OPEN", view.Status)
				assert.Nil(t, view.ClosedAt)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestReservationReadStore_List(t *testing.T) {
	ctx := context.Background()
	row := reservationViewFixture()
	spaceID := uuid.New()
	closed := reservation.StatusClosed

	filter := queries.ReservationFilter{
		Status:  &closed,
		CPF:     ptr.Of("123.456.789-00"),
		SpaceID: &spaceID,
		Page:    queries.PageRequest{Page: 3, Limit: 20},
	}

	mockQueries := new(MockReservationViewQueries)
	mockQueries.On("ListReservationViews", ctx, nil, sqlc.ListReservationViewsParams{
		Status:     pgtype.Text{String: "CLOSED", Valid: true},
		Cpf:        pgtype.Text{String: "123.456.789-00", Valid: true},
		SpaceID:    pgtype.UUID{Bytes: spaceID, Valid: true},
		PageLimit:  20,
		PageOffset: 40,
	}).Return([]sqlc.ListReservationViewsRow{sqlc.ListReservationViewsRow(row)}, nil)

	store := NewReservationReadStore(mockQueries, nil)
	views, err := store.List(ctx, filter)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, row.ID, views[0].ID)
	mockQueries.AssertExpectations(t)
}

func TestReservationReadStore_Count(t *testing.T) {
	ctx := context.Background()

	t.Run("no filters", func(t *testing.T) {
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("CountReservationViews", ctx, nil, sqlc.CountReservationViewsParams{}).Return(int64(7), nil)

		store := NewReservationReadStore(mockQueries, nil)
		total, err := store.Count(ctx, queries.ReservationFilter{})

		require.NoError(t, err)
		assert.Equal(t, int64(7), total)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("CountReservationViews", ctx, nil, sqlc.CountReservationViewsParams{}).Return(int64(0), errors.New("timeout"))

		store := NewReservationReadStore(mockQueries, nil)
		_, err := store.Count(ctx, queries.ReservationFilter{})

		assert.Error(t, err)
	})
}
