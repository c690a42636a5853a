//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/infra"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationWriteQueries struct {
	mock.Mock
}

func (m *MockReservationWriteQueries) LockSpaceForBooking(ctx context.Context, db sqlc.DBTX, spaceID uuid.UUID) error {
	args := m.Called(ctx, db, spaceID)
	return args.Error(0)
}

func (m *MockReservationWriteQueries) HasOverlappingReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.HasOverlappingReservationParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationWriteQueries) InsertReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertReservationParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockReservationWriteQueries) InsertReservationResource(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertReservationResourceParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockReservationWriteQueries) GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Reservations), args.Error(1)
}

func (m *MockReservationWriteQueries) UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

type nopDBTX struct{}

func (nopDBTX) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (nopDBTX) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (nopDBTX) QueryRow(context.Context, string, ...interface{}) pgx.Row {
	return nil
}

func newTestReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	slot, err := reservation.NewTimeSlot(start, start.Add(2*time.Hour))
	require.NoError(t, err)
	return reservation.ReconstructReservation(
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		slot, reservation.StatusOpen, nil, start.Add(-time.Hour), start.Add(-time.Hour),
	)
}

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := nopDBTX{}

	t.Run("inserts reservation and one allocation line", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		res := newTestReservation(t)

		q.On("InsertReservation", ctx, db, mock.MatchedBy(func(p sqlc.InsertReservationParams) bool {
			return p.ID == res.ID() && p.Status == "OPEN" && !p.ClosedAt.Valid &&
				p.StartDate.Time.Equal(res.TimeSlot().Start())
		})).Return(nil)
		q.On("InsertReservationResource", ctx, db, sqlc.InsertReservationResourceParams{
			ReservationID: res.ID(),
			ResourceID:    res.ResourceID(),
			Quantity:      1,
		}).Return(nil)

		err := NewReservationRepository(q).Create(ctx, db, res)

		require.NoError(t, err)
		q.AssertExpectations(t)
	})

	t.Run("foreign key violation is classified", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		res := newTestReservation(t)

		q.On("InsertReservation", ctx, db, mock.Anything).Return(&pgconn.PgError{Code: "23503"})

		err := NewReservationRepository(q).Create(ctx, db, res)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
		q.AssertNotCalled(t, "InsertReservationResource", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReservationRepository_HasOverlap(t *testing.T) {
	ctx := context.Background()
	db := nopDBTX{}
	res := newTestReservation(t)
	self := res.ID()

	tests := []struct {
		name      string
		query     shared.OverlapQuery
		mockValue bool
		mockErr   error
		want      bool
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:      "overlap found",
			query:     shared.OverlapQuery{SpaceID: res.SpaceID(), Slot: res.TimeSlot()},
			mockValue: true,
			want:      true,
		},
		{
			name:  "excluding self with terminal statuses ignored",
			query: shared.OverlapQuery{SpaceID: res.SpaceID(), Slot: res.TimeSlot(), ExcludeID: &self, IgnoreTerminal: true},
		},
		{
			name:     "database error",
			query:    shared.OverlapQuery{SpaceID: res.SpaceID(), Slot: res.TimeSlot()},
			mockErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockReservationWriteQueries)
			q.On("HasOverlappingReservation", ctx, db, sqlc.HasOverlappingReservationParams{
				SpaceID:        tt.query.SpaceID,
				StartDate:      pgconv.TimeToPgtype(tt.query.Slot.Start()),
				EndDate:        pgconv.TimeToPgtype(tt.query.Slot.End()),
				ExcludeID:      pgconv.UUIDPtrToPgtype(tt.query.ExcludeID),
				IgnoreTerminal: tt.query.IgnoreTerminal,
			}).Return(tt.mockValue, tt.mockErr)

			got, err := NewReservationRepository(q).HasOverlap(ctx, db, tt.query)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			q.AssertExpectations(t)
		})
	}
}

func TestReservationRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()
	db := nopDBTX{}
	id := uuid.New()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("maps row to aggregate", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("GetReservationForUpdate", ctx, db, id).Return(sqlc.Reservations{
			ID:         id,
			ClientID:   uuid.New(),
			SpaceID:    uuid.New(),
			ResourceID: uuid.New(),
			StartDate:  pgconv.TimeToPgtype(start),
			EndDate:    pgconv.TimeToPgtype(start.Add(time.Hour)),
			Status:     "APPROVED",
			CreatedAt:  pgconv.TimeToPgtype(start),
			UpdatedAt:  pgconv.TimeToPgtype(start),
		}, nil)

		res, err := NewReservationRepository(q).FindByIDForUpdate(ctx, db, id)

		require.NoError(t, err)
		assert.Equal(t, id, res.ID())
		assert.Equal(t, reservation.StatusApproved, res.Status())
		assert.Nil(t, res.ClosedAt())
		assert.True(t, res.TimeSlot().Start().Equal(start))
	})

	t.Run("missing row is not found", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("GetReservationForUpdate", ctx, db, id).Return(sqlc.Reservations{}, pgx.ErrNoRows)

		_, err := NewReservationRepository(q).FindByIDForUpdate(ctx, db, id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
