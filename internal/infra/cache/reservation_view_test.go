//go:build unit

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/queries"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testView() *queries.ReservationView {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &queries.ReservationView{
		ID:        uuid.MustParse("7b1e3c62-6f0a-4a55-9c57-0f1e2d3c4b5a"),
		Client:    queries.ClientSummary{ID: uuid.New(), Name: "Maria Souza", CPF: "123.456.789-00"},
		Space:     queries.Summary{ID: uuid.New(), Name: "Auditorium"},
		Resource:  queries.Summary{ID: uuid.New(), Name: "Projector"},
		StartDate: start,
		EndDate:   start.Add(2 * time.Hour),
		Status:    "OPEN",
		CreatedAt: start.Add(-time.Hour),
		UpdatedAt: start.Add(-time.Hour),
	}
}

func TestReservationViewCache_Get(t *testing.T) {
	ctx := context.Background()
	view := testView()
	key := reservationViewKey(view.ID)

	t.Run("hit decodes the stored view", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := NewReservationViewCache(db, time.Minute)

		data, err := json.Marshal(view)
		require.NoError(t, err)
		mock.ExpectHGet(key, fieldView).SetVal(string(data))

		got, err := c.Get(ctx, view.ID)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, view.ID, got.ID)
		assert.Equal(t, view.Space.Name, got.Space.Name)
		assert.True(t, view.StartDate.Equal(got.StartDate))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss returns nil without error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := NewReservationViewCache(db, time.Minute)

		mock.ExpectHGet(key, fieldView).RedisNil()

		got, err := c.Get(ctx, view.ID)

		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure is reported", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := NewReservationViewCache(db, time.Minute)

		mock.ExpectHGet(key, fieldView).SetErr(errors.New("connection refused"))

		got, err := c.Get(ctx, view.ID)

		assert.Nil(t, got)
		assert.True(t, errs.Is(err, errCacheRead))
	})

	t.Run("corrupt payload is reported", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := NewReservationViewCache(db, time.Minute)

		mock.ExpectHGet(key, fieldView).SetVal("{not json")

		got, err := c.Get(ctx, view.ID)

		assert.Nil(t, got)
		assert.True(t, errs.Is(err, errCacheRead))
	})
}

func TestReservationViewCache_Set(t *testing.T) {
	ctx := context.Background()
	view := testView()
	data, err := json.Marshal(view)
	require.NoError(t, err)

	key := reservationViewKey(view.ID)
	version := strconv.FormatInt(view.UpdatedAt.UnixMicro(), 10)

	t.Run("sends the view with its version and ttl", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := NewReservationViewCache(db, 5*time.Minute)

		mock.ExpectEvalSha(storeIfNewer.Hash(), []string{key}, string(data), version, "300000").SetVal(int64(1))

		assert.NoError(t, c.Set(ctx, view))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a newer cached version is kept without error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := NewReservationViewCache(db, 5*time.Minute)

		mock.ExpectEvalSha(storeIfNewer.Hash(), []string{key}, string(data), version, "300000").SetVal(int64(0))

		assert.NoError(t, c.Set(ctx, view))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure is reported", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := NewReservationViewCache(db, 5*time.Minute)

		mock.ExpectEvalSha(storeIfNewer.Hash(), []string{key}, string(data), version, "300000").
			SetErr(errors.New("connection refused"))

		err := c.Set(ctx, view)
		assert.True(t, errs.Is(err, errCacheWrite))
	})
}

func TestViewVersion(t *testing.T) {
	older := testView()
	newer := testView()
	newer.UpdatedAt = older.UpdatedAt.Add(time.Microsecond)

	o, err := strconv.ParseInt(viewVersion(older), 10, 64)
	require.NoError(t, err)
	n, err := strconv.ParseInt(viewVersion(newer), 10, 64)
	require.NoError(t, err)

	assert.Greater(t, n, o)
}

func TestReservationViewCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("deletes the key", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := NewReservationViewCache(db, time.Minute)

		mock.ExpectDel(reservationViewKey(id)).SetVal(1)

		assert.NoError(t, c.Invalidate(ctx, id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure is reported", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := NewReservationViewCache(db, time.Minute)

		mock.ExpectDel(reservationViewKey(id)).SetErr(errors.New("timeout"))

		err := c.Invalidate(ctx, id)
		assert.True(t, errs.Is(err, errCacheWrite))
	})
}
